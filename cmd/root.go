package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/jkorri/openshelf/cmd/search"
	"github.com/jkorri/openshelf/internal/catalog"
	"github.com/jkorri/openshelf/internal/config"
)

// Stubbed in tests.
var runSearch = search.RunWithParams

// CLI represents the complete command structure for the openshelf application
type CLI struct {
	// Global flags
	Overwrite      bool `help:"Overwrite existing markdown files when exporting"`
	DownloadCovers bool `help:"Download cover images for exported notes"`

	// Cache flags
	CacheDBFile string `help:"Path to cache SQLite database file" default:"./cache.db"`
	CacheTTL    string `help:"Cache time-to-live duration (e.g., 168h for 7 days)" default:"168h"`

	Search SearchCmd `cmd:"" help:"Search the Open Library catalog"`
	Embed  EmbedCmd  `cmd:"" help:"Convert a preview URL into an embeddable URL"`
}

// SearchCmd represents the search command
type SearchCmd struct {
	Query        string `arg:"" optional:"" help:"Free-text search query"`
	Author       string `help:"Filter by author name"`
	Subject      string `help:"Filter by subject"`
	Year         string `help:"Filter by publish year"`
	Availability string `help:"Keep only results with this availability" enum:"all,preview,fulltext" default:"all"`
	Limit        int    `help:"Maximum number of results to fetch" default:"20"`
	JSON         bool   `help:"Write results to JSON format"`
	JSONOutput   string `help:"Path to JSON output file (defaults to json/search.json)"`
	Markdown     bool   `help:"Write results as markdown notes"`
	Output       string `short:"o" help:"Subdirectory under markdown output directory for search results"`
	Interactive  bool   `short:"i" help:"Pick a result interactively and print its embeddable preview URL"`
}

// EmbedCmd represents the embed command
type EmbedCmd struct {
	URL string `arg:"" help:"Preview URL to convert"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("openshelf"),
		kong.Description("Search the Open Library catalog and export readable books."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	if err := ctx.Run(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("OverwriteFiles", false)

	// Cache defaults
	viper.SetDefault("cache.dbfile", "./cache.db")
	viper.SetDefault("cache.ttl", "168h") // 7 days

	// Search defaults
	viper.SetDefault("search.limit", 20)

	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Info("Config file not found, writing default config file...")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Error("Error writing config file", "error", err)
			}
			os.Exit(0)
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	config.SetOverwriteFiles(cli.Overwrite)
	config.SetDownloadCovers(cli.DownloadCovers)

	viper.Set("cache.dbfile", cli.CacheDBFile)
	viper.Set("cache.ttl", cli.CacheTTL)
}

func (s *SearchCmd) Run() error {
	limit := s.Limit
	if limit <= 0 {
		limit = viper.GetInt("search.limit")
	}

	return runSearch(context.Background(), search.Params{
		Query:        s.Query,
		Author:       s.Author,
		Subject:      s.Subject,
		Year:         s.Year,
		Availability: s.Availability,
		Limit:        limit,
		Output:       s.Output,
		WriteJSON:    s.JSON,
		JSONOutput:   s.JSONOutput,
		Markdown:     s.Markdown,
		Interactive:  s.Interactive,
	})
}

func (e *EmbedCmd) Run() error {
	fmt.Println(catalog.ResolveEmbedURL(e.URL))
	return nil
}

func initLogging() {
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	slog.SetDefault(slog.New(handler))
}
