package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) {
	t.Helper()

	viper.Reset()
	viper.Set("cache.dbfile", filepath.Join(t.TempDir(), "test-cache.db"))
	viper.Set("cache.ttl", "24h")

	require.NoError(t, ResetGlobalCache())
	t.Cleanup(func() {
		_ = ResetGlobalCache()
		viper.Reset()
	})
}

func TestGetMissOnEmptyCache(t *testing.T) {
	setupTestCache(t)

	_, found := Get("availability_cache", "9780140328721")
	assert.False(t, found)
}

func TestPutGetRoundtrip(t *testing.T) {
	setupTestCache(t)

	Put("availability_cache", "9780140328721", `{"preview_url":"https://archive.org/details/abc"}`)

	data, found := Get("availability_cache", "9780140328721")
	require.True(t, found)
	assert.Equal(t, `{"preview_url":"https://archive.org/details/abc"}`, data)

	// Other keys stay misses.
	_, found = Get("availability_cache", "9780000000000")
	assert.False(t, found)
}

func TestPutReplacesExistingEntry(t *testing.T) {
	setupTestCache(t)

	Put("availability_cache", "123", `{"old":true}`)
	Put("availability_cache", "123", `{"new":true}`)

	data, found := Get("availability_cache", "123")
	require.True(t, found)
	assert.Equal(t, `{"new":true}`, data)
}

func TestExpiredEntryReadsAsMiss(t *testing.T) {
	setupTestCache(t)
	viper.Set("cache.ttl", "1ms")

	Put("availability_cache", "123", `{}`)
	time.Sleep(5 * time.Millisecond)

	_, found := Get("availability_cache", "123")
	assert.False(t, found)
}

func TestDisabledCacheReadsAsMiss(t *testing.T) {
	viper.Reset()
	require.NoError(t, ResetGlobalCache())
	t.Cleanup(func() {
		_ = ResetGlobalCache()
		viper.Reset()
	})

	assert.False(t, Enabled())

	Put("availability_cache", "123", `{}`)
	_, found := Get("availability_cache", "123")
	assert.False(t, found)
}

func TestInvalidTableNameRejected(t *testing.T) {
	setupTestCache(t)

	cacheDB, err := GetGlobalCache()
	require.NoError(t, err)
	require.NotNil(t, cacheDB)

	_, _, err = cacheDB.Get("sqlite_master", "x", time.Hour)
	assert.Error(t, err)

	err = cacheDB.Set("availability_cache; DROP TABLE", "x", "y")
	assert.Error(t, err)
}

func TestClearExpired(t *testing.T) {
	setupTestCache(t)

	cacheDB, err := GetGlobalCache()
	require.NoError(t, err)
	require.NotNil(t, cacheDB)

	require.NoError(t, cacheDB.Set("availability_cache", "123", `{}`))

	// Nothing older than an hour, entry survives.
	require.NoError(t, cacheDB.ClearExpired("availability_cache", time.Hour))
	_, found, err := cacheDB.Get("availability_cache", "123", time.Hour)
	require.NoError(t, err)
	assert.True(t, found)

	// Zero TTL treats everything as expired.
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, cacheDB.ClearExpired("availability_cache", 0))
	_, found, err = cacheDB.Get("availability_cache", "123", time.Hour)
	require.NoError(t, err)
	assert.False(t, found)
}
