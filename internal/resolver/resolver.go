// Package resolver maps free-form import strings discovered during
// parsing to the concrete file paths they name, via a fixed cascade of
// matching strategies.
package resolver

import (
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// indexStems is the fixed, ordered list of directory-index file stems
// probed by strategy 3. Order matters: "index" is tried before
// "__init__" for every configured extension.
var indexStems = []string{"index", "__init__"}

// Resolver maps normalized import strings to actual file paths. It is
// built once from a file index and is safe for concurrent read-only use
// by multiple goroutines after construction — nothing past New mutates
// its state, which is what makes ResolveBatch's parallel fan-out legal.
type Resolver struct {
	// fileIndex maps normalized path -> actual file path, as supplied by
	// the caller. Consumed (not copied defensively) at construction.
	fileIndex map[string]string
	// extensions is the ordered probe list for strategies 2-3.
	extensions []string
	// normalizedIndex maps lowercased-extensionless-key -> ordered list
	// of candidate actual paths, the derived lookup used by strategy 4.
	normalizedIndex map[string][]string
}

// New builds a Resolver from a file index (normalized path -> actual file
// path) and an ordered extension list. The normalized lookup index is
// built once here, not lazily, since Resolver is meant to be constructed
// once per request and reused across every import in the batch.
func New(fileIndex map[string]string, extensions []string) *Resolver {
	r := &Resolver{
		fileIndex:       fileIndex,
		extensions:      extensions,
		normalizedIndex: make(map[string][]string),
	}

	for normPath, actualPath := range fileIndex {
		withoutExt := removeExtension(normPath)
		key := strings.ToLower(withoutExt)
		r.normalizedIndex[key] = append(r.normalizedIndex[key], actualPath)

		if basename, ok := lastSegment(normPath); ok {
			basenameKey := strings.ToLower(removeExtension(basename))
			r.normalizedIndex[basenameKey] = append(r.normalizedIndex[basenameKey], actualPath)
		}
	}

	return r
}

// Normalize reduces an import string to its canonical matching form: trim
// whitespace, backslashes become slashes, every "../" and "./" occurrence
// is stripped (in that order, so "../lib/utils" doesn't leave a stray
// leading dot behind), and leading slashes are removed. This is lossy by
// design — "../x/./y" and "x/y" normalize identically — callers that need
// relative-parent semantics must resolve that before calling Resolve.
func Normalize(importString string) string {
	s := strings.TrimSpace(importString)
	s = strings.ReplaceAll(s, "\\", "/")
	s = strings.ReplaceAll(s, "../", "")
	s = strings.ReplaceAll(s, "./", "")
	s = strings.TrimLeft(s, "/")
	return s
}

// Resolve applies the six-step resolution cascade to a single import
// string, returning the actual file path and true on the first strategy
// that hits, or ("", false) if none do. The cascade's ordering is part of
// the contract: later strategies can mask earlier, more precise matches
// with the wrong file, so implementations must not reorder it.
func (r *Resolver) Resolve(importString string) (string, bool) {
	normalized := Normalize(importString)

	// 1. Exact match.
	if path, ok := r.fileIndex[normalized]; ok {
		return path, true
	}

	// 2. Extension probe, in configured order.
	for _, ext := range r.extensions {
		if path, ok := r.fileIndex[normalized+ext]; ok {
			return path, true
		}
	}

	// 3. Directory index probe: outer loop over index stem, inner loop
	// over extension, per the fixed contract order.
	for _, stem := range indexStems {
		for _, ext := range r.extensions {
			candidate := normalized + "/" + stem + ext
			if path, ok := r.fileIndex[candidate]; ok {
				return path, true
			}
		}
	}

	// 4. Normalized lookup: exact single candidate wins outright;
	// multiple candidates resolve to the shortest actual path, ties
	// broken by first-inserted order (the order normalizedIndex's slice
	// was built in). That order is fixed for a given Resolver, but New
	// builds it by ranging over the fileIndex map, so two Resolvers built
	// from the same index can break a tie differently.
	normalizedLower := strings.ToLower(normalized)
	if candidates, ok := r.normalizedIndex[normalizedLower]; ok && len(candidates) > 0 {
		if len(candidates) == 1 {
			return candidates[0], true
		}
		best := candidates[0]
		for _, c := range candidates[1:] {
			if len(c) < len(best) {
				best = c
			}
		}
		return best, true
	}

	// 5. Suffix match over the raw file index: exactly one match wins,
	// zero or multiple fall through to unresolved.
	var suffixMatch string
	matches := 0
	slashNormalized := "/" + normalized
	for key, path := range r.fileIndex {
		if strings.HasSuffix(key, normalized) || strings.HasSuffix(key, slashNormalized) {
			suffixMatch = path
			matches++
			if matches > 1 {
				break
			}
		}
	}
	if matches == 1 {
		return suffixMatch, true
	}

	// 6. Unresolved.
	return "", false
}

// Resolution pairs an input import string with its resolved path, if any.
type Resolution struct {
	Input    string `json:"input" yaml:"input"`
	Resolved string `json:"resolved" yaml:"resolved"`
	Found    bool   `json:"found" yaml:"found"`
}

// minChunk mirrors the pagerank/hub crossover: below 2x this many imports
// in total, ResolveBatch runs sequentially in the calling goroutine.
const minChunk = 64

// ResolveBatch resolves every import independently, preserving input
// order in the returned slice. Each element is evaluated independently of
// the others, which is what permits splitting the batch across a bounded
// worker pool without synchronization beyond the final join.
func (r *Resolver) ResolveBatch(imports []string) []Resolution {
	n := len(imports)
	results := make([]Resolution, n)

	fill := func(i int) {
		path, ok := r.Resolve(imports[i])
		results[i] = Resolution{Input: imports[i], Resolved: path, Found: ok}
	}

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}

	if n < minChunk*2 || workers == 1 {
		for i := 0; i < n; i++ {
			fill(i)
		}
		return results
	}

	chunk := (n + workers - 1) / workers
	var eg errgroup.Group
	for start := 0; start < n; start += chunk {
		start := start
		end := start + chunk
		if end > n {
			end = n
		}
		eg.Go(func() error {
			for i := start; i < end; i++ {
				fill(i)
			}
			return nil
		})
	}
	_ = eg.Wait()

	return results
}

// Stats summarizes a batch resolution run.
type Stats struct {
	Total          int     `json:"total" yaml:"total"`
	Resolved       int     `json:"resolved" yaml:"resolved"`
	Unresolved     int     `json:"unresolved" yaml:"unresolved"`
	ResolutionRate float64 `json:"resolution_rate" yaml:"resolution_rate"`
}

// GetResolutionStats resolves the batch and reports summary counts. The
// resolution rate is 0.0 for an empty batch rather than NaN.
func (r *Resolver) GetResolutionStats(imports []string) Stats {
	results := r.ResolveBatch(imports)

	resolved := 0
	for _, res := range results {
		if res.Found {
			resolved++
		}
	}

	stats := Stats{
		Total:      len(imports),
		Resolved:   resolved,
		Unresolved: len(imports) - resolved,
	}
	if len(imports) > 0 {
		stats.ResolutionRate = float64(resolved) / float64(len(imports))
	}
	return stats
}

// removeExtension strips the final "."-delimited extension from path,
// only when the dot appears after the last slash (so "a.b/c" is
// untouched but "a.b/c.d" becomes "a.b/c").
func removeExtension(path string) string {
	dot := strings.LastIndexByte(path, '.')
	if dot == -1 {
		return path
	}
	slash := strings.LastIndexByte(path, '/')
	if dot > slash {
		return path[:dot]
	}
	return path
}

// lastSegment returns the last "/"-delimited segment of path (the
// basename), and false if path has no content.
func lastSegment(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	idx := strings.LastIndexByte(path, '/')
	if idx == -1 {
		return path, true
	}
	return path[idx+1:], true
}
