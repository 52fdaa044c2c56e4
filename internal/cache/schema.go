package cache

// SQL schemas for cache tables.
// All cache tables use "cache_key" as the primary key column for consistency.

// AvailabilityCacheSchema defines the schema for the per-ISBN availability cache
const AvailabilityCacheSchema = `
CREATE TABLE IF NOT EXISTS availability_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_availability_cached_at ON availability_cache(cached_at);
`

// AllCacheSchemas lists every schema created at startup
var AllCacheSchemas = []string{
	AvailabilityCacheSchema,
}

// ValidCacheTableNames whitelists table names used in dynamic SQL
var ValidCacheTableNames = map[string]bool{
	"availability_cache": true,
}
