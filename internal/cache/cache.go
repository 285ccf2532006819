// Package cache provides SQLite-backed memoization of PageRank and
// critical-node computations, keyed by a graph fingerprint. It never
// participates in correctness: a cache miss always falls back to the
// identical fresh computation the kernel package would perform on its
// own, so attaching or omitting a cache never changes a result.
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/anthropics/codenav/internal/graph"
	"github.com/anthropics/codenav/internal/kernel"
)

// Cache manages the <dir>/cache.db SQLite database for memoizing kernel
// computations.
type Cache struct {
	db     *sql.DB
	dbPath string
}

// Open opens or creates the cache database at the specified directory
// (typically .codenav/). Initializes the schema if the database is new.
func Open(dir string) (*Cache, error) {
	dbPath := filepath.Join(dir, "cache.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &Cache{db: db, dbPath: dbPath}

	if err := c.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return c, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Path returns the database file path.
func (c *Cache) Path() string {
	return c.dbPath
}

// Clear removes all cached entries from both tables.
func (c *Cache) Clear() error {
	_, err := c.db.Exec("DELETE FROM pagerank_cache; DELETE FROM critical_nodes_cache;")
	if err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// FastPageRankCached returns fast_pagerank's result for (numNodes, edges,
// damping, maxIterations, tolerance), serving a hit from the cache when
// the fingerprint and damping match a prior call and falling back to
// pagerank.Compute (via kernel.FastPageRank) on a miss. Only the
// fingerprint and damping form the cache key: maxIterations and tolerance
// are not part of it and are not checked on a hit, so a hit returns the
// scores stored for that key whatever maxIterations and tolerance
// produced them.
func (c *Cache) FastPageRankCached(numNodes int, edges []graph.Edge, damping float64, maxIterations int, tolerance float64) ([]float64, error) {
	fp := Fingerprint(numNodes, edges)

	var scoresJSON string
	err := c.db.QueryRow(
		"SELECT scores_json FROM pagerank_cache WHERE fingerprint = ? AND damping = ?",
		fp, damping,
	).Scan(&scoresJSON)

	if err == nil {
		var scores []float64
		if jsonErr := json.Unmarshal([]byte(scoresJSON), &scores); jsonErr == nil {
			return scores, nil
		}
		// Corrupt cache entry: fall through and recompute.
	} else if err != sql.ErrNoRows {
		return nil, fmt.Errorf("query pagerank cache: %w", err)
	}

	scores := kernel.FastPageRank(numNodes, edges, damping, maxIterations, tolerance)

	encoded, err := json.Marshal(scores)
	if err != nil {
		return scores, fmt.Errorf("encode pagerank result: %w", err)
	}
	_, err = c.db.Exec(
		`INSERT OR REPLACE INTO pagerank_cache (fingerprint, damping, scores_json, computed_at) VALUES (?, ?, ?, ?)`,
		fp, damping, string(encoded), time.Now().Unix(),
	)
	if err != nil {
		return scores, fmt.Errorf("store pagerank cache entry: %w", err)
	}

	return scores, nil
}

// GetCriticalNodesCached mirrors FastPageRankCached for
// kernel.GetCriticalNodes, keyed on fingerprint + topN + damping.
func (c *Cache) GetCriticalNodesCached(numNodes int, edges []graph.Edge, topN int, damping float64) ([]kernel.CriticalNode, error) {
	fp := Fingerprint(numNodes, edges)

	var resultJSON string
	err := c.db.QueryRow(
		"SELECT result_json FROM critical_nodes_cache WHERE fingerprint = ? AND top_n = ? AND damping = ?",
		fp, topN, damping,
	).Scan(&resultJSON)

	if err == nil {
		var nodes []kernel.CriticalNode
		if jsonErr := json.Unmarshal([]byte(resultJSON), &nodes); jsonErr == nil {
			return nodes, nil
		}
	} else if err != sql.ErrNoRows {
		return nil, fmt.Errorf("query critical nodes cache: %w", err)
	}

	nodes := kernel.GetCriticalNodes(numNodes, edges, topN, damping)

	encoded, err := json.Marshal(nodes)
	if err != nil {
		return nodes, fmt.Errorf("encode critical nodes result: %w", err)
	}
	_, err = c.db.Exec(
		`INSERT OR REPLACE INTO critical_nodes_cache (fingerprint, top_n, damping, result_json, computed_at) VALUES (?, ?, ?, ?, ?)`,
		fp, topN, damping, string(encoded), time.Now().Unix(),
	)
	if err != nil {
		return nodes, fmt.Errorf("store critical nodes cache entry: %w", err)
	}

	return nodes, nil
}
