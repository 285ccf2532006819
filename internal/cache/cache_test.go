package cache

import (
	"reflect"
	"testing"

	"github.com/anthropics/codenav/internal/graph"
	"github.com/anthropics/codenav/internal/kernel"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestFastPageRankCached_ColdAndWarmMatchUncached(t *testing.T) {
	c := openTestCache(t)
	edges := []graph.Edge{{0, 1}, {1, 2}, {2, 0}, {0, 2}}

	uncached := kernel.FastPageRank(3, edges, 0.85, 100, 1e-6)

	cold, err := c.FastPageRankCached(3, edges, 0.85, 100, 1e-6)
	if err != nil {
		t.Fatalf("cold FastPageRankCached: %v", err)
	}
	if !reflect.DeepEqual(cold, uncached) {
		t.Errorf("cold cache result differs from uncached: %v vs %v", cold, uncached)
	}

	warm, err := c.FastPageRankCached(3, edges, 0.85, 100, 1e-6)
	if err != nil {
		t.Fatalf("warm FastPageRankCached: %v", err)
	}
	if !reflect.DeepEqual(warm, uncached) {
		t.Errorf("warm cache result differs from uncached: %v vs %v", warm, uncached)
	}
}

func TestGetCriticalNodesCached_ColdAndWarmMatchUncached(t *testing.T) {
	c := openTestCache(t)
	edges := []graph.Edge{{0, 3}, {1, 3}, {2, 3}, {0, 1}}

	uncached := kernel.GetCriticalNodes(4, edges, 2, 0.85)

	cold, err := c.GetCriticalNodesCached(4, edges, 2, 0.85)
	if err != nil {
		t.Fatalf("cold GetCriticalNodesCached: %v", err)
	}
	if !reflect.DeepEqual(cold, uncached) {
		t.Errorf("cold cache result differs: %v vs %v", cold, uncached)
	}

	warm, err := c.GetCriticalNodesCached(4, edges, 2, 0.85)
	if err != nil {
		t.Fatalf("warm GetCriticalNodesCached: %v", err)
	}
	if !reflect.DeepEqual(warm, uncached) {
		t.Errorf("warm cache result differs: %v vs %v", warm, uncached)
	}
}

func TestFingerprint_DeterministicAndOrderSensitive(t *testing.T) {
	a := Fingerprint(3, []graph.Edge{{0, 1}, {1, 2}})
	b := Fingerprint(3, []graph.Edge{{0, 1}, {1, 2}})
	if a != b {
		t.Errorf("expected identical fingerprints for identical input, got %s vs %s", a, b)
	}

	c := Fingerprint(3, []graph.Edge{{1, 2}, {0, 1}})
	if a == c {
		t.Errorf("expected different fingerprints for reordered edges, got same %s", a)
	}
}

func TestClear_RemovesEntries(t *testing.T) {
	c := openTestCache(t)
	edges := []graph.Edge{{0, 1}}

	if _, err := c.FastPageRankCached(2, edges, 0.85, 100, 1e-6); err != nil {
		t.Fatalf("seed cache: %v", err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	var count int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM pagerank_cache").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty cache after Clear, got %d rows", count)
	}
}
