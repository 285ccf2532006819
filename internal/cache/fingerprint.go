package cache

import (
	"hash/fnv"
	"strconv"

	"github.com/anthropics/codenav/internal/graph"
)

// Fingerprint computes a deterministic hash of (numNodes, edges), used
// solely as a cache lookup key. It never affects any computed value: two
// graphs with the same fingerprint always produce the same kernel output,
// but the fingerprint itself carries no semantics of its own.
func Fingerprint(numNodes int, edges []graph.Edge) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strconv.Itoa(numNodes)))
	_, _ = h.Write([]byte{0})
	for _, e := range edges {
		_, _ = h.Write([]byte(strconv.Itoa(e.Src)))
		_, _ = h.Write([]byte{','})
		_, _ = h.Write([]byte(strconv.Itoa(e.Tgt)))
		_, _ = h.Write([]byte{';'})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
