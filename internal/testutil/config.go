// Package testutil provides shared helpers for configuring tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/jkorri/openshelf/internal/cache"
	"github.com/jkorri/openshelf/internal/config"
	"github.com/spf13/viper"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	OverwriteFiles bool
	DownloadCovers bool
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		OverwriteFiles: config.OverwriteFiles,
		DownloadCovers: config.DownloadCovers,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.OverwriteFiles = state.OverwriteFiles
	config.DownloadCovers = state.DownloadCovers
}

// ResetConfig saves the current config state and schedules restoration
// when the test completes. It also resets viper.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetViperValue sets a viper configuration value and schedules cleanup.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
		// viper has no Unset, so a previously unset key stays set; tests
		// that care should pair this with ResetConfig.
	})
}

// SetupTestCache points the availability cache at a temporary database and
// schedules a reset of the cache singleton when the test completes.
func SetupTestCache(t *testing.T) string {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test-cache.db")
	viper.Set("cache.dbfile", dbPath)
	viper.Set("cache.ttl", "24h")

	if err := cache.ResetGlobalCache(); err != nil {
		t.Fatalf("failed to reset cache: %v", err)
	}
	t.Cleanup(func() {
		_ = cache.ResetGlobalCache()
	})

	return dbPath
}
