// Package config mirrors the viper configuration into package-level values.
package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// OverwriteFiles controls whether existing export files should be overwritten
	OverwriteFiles bool
	// DownloadCovers controls whether cover images are fetched for search results
	DownloadCovers bool
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("OverwriteFiles", false)
	viper.SetDefault("search.limit", 20)

	// Get values from viper
	OverwriteFiles = viper.GetBool("OverwriteFiles")
	DownloadCovers = viper.GetBool("DownloadCovers")
}

// SetOverwriteFiles sets the OverwriteFiles flag
func SetOverwriteFiles(overwrite bool) {
	OverwriteFiles = overwrite
}

// SetDownloadCovers sets the DownloadCovers flag
func SetDownloadCovers(download bool) {
	DownloadCovers = download
}
