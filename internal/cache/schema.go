package cache

// schemaSQL defines the SQLite schema for the cache database. Tables:
//   - pagerank_cache: memoizes fast_pagerank results keyed by graph fingerprint + damping
//   - critical_nodes_cache: memoizes get_critical_nodes results keyed by fingerprint + top_n + damping
const schemaSQL = `
CREATE TABLE IF NOT EXISTS pagerank_cache (
    fingerprint TEXT NOT NULL,
    damping REAL NOT NULL,
    scores_json TEXT NOT NULL,
    computed_at INTEGER NOT NULL,
    PRIMARY KEY (fingerprint, damping)
);

CREATE TABLE IF NOT EXISTS critical_nodes_cache (
    fingerprint TEXT NOT NULL,
    top_n INTEGER NOT NULL,
    damping REAL NOT NULL,
    result_json TEXT NOT NULL,
    computed_at INTEGER NOT NULL,
    PRIMARY KEY (fingerprint, top_n, damping)
);
`

// initSchema creates the database tables if they don't exist.
func (c *Cache) initSchema() error {
	_, err := c.db.Exec(schemaSQL)
	return err
}
