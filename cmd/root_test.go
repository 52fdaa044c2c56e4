package cmd

import (
	"context"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkorri/openshelf/cmd/search"
	"github.com/jkorri/openshelf/internal/config"
)

func resetCmdState(t *testing.T) {
	t.Helper()

	origOverwrite := config.OverwriteFiles
	origDownload := config.DownloadCovers

	t.Cleanup(func() {
		config.OverwriteFiles = origOverwrite
		config.DownloadCovers = origDownload
		viper.Reset()
	})

	viper.Reset()
}

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("openshelf"),
		kong.Description("Search the Open Library catalog and export readable books."),
		kong.Exit(func(code int) {
			t.Fatalf("unexpected Kong exit %d", code)
		}),
	)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return cli, ctx
}

func TestUpdateGlobalConfig(t *testing.T) {
	resetCmdState(t)

	cli := &CLI{
		Overwrite:      true,
		DownloadCovers: true,
		CacheDBFile:    "/tmp/openshelf-cache.db",
		CacheTTL:       "12h",
	}
	updateGlobalConfig(cli)

	assert.True(t, config.OverwriteFiles)
	assert.True(t, config.DownloadCovers)
	assert.Equal(t, "/tmp/openshelf-cache.db", viper.GetString("cache.dbfile"))
	assert.Equal(t, "12h", viper.GetString("cache.ttl"))
}

func TestSearchCmdPassesParams(t *testing.T) {
	resetCmdState(t)

	original := runSearch
	t.Cleanup(func() { runSearch = original })

	var got search.Params
	runSearch = func(ctx context.Context, params search.Params) error {
		got = params
		return nil
	}

	_, ctx := parseCLI(t, "search", "the hobbit",
		"--author", "tolkien",
		"--availability", "preview",
		"--limit", "5",
		"--json",
		"--markdown",
		"--interactive")
	require.NoError(t, ctx.Run())

	assert.Equal(t, "the hobbit", got.Query)
	assert.Equal(t, "tolkien", got.Author)
	assert.Equal(t, "preview", got.Availability)
	assert.Equal(t, 5, got.Limit)
	assert.True(t, got.WriteJSON)
	assert.True(t, got.Markdown)
	assert.True(t, got.Interactive)
}

func TestSearchCmdLimitFallsBackToConfig(t *testing.T) {
	resetCmdState(t)
	viper.Set("search.limit", 7)

	original := runSearch
	t.Cleanup(func() { runSearch = original })

	var got search.Params
	runSearch = func(ctx context.Context, params search.Params) error {
		got = params
		return nil
	}

	cmd := &SearchCmd{Query: "dune", Availability: "all", Limit: 0}
	require.NoError(t, cmd.Run())
	assert.Equal(t, 7, got.Limit)
}

func TestSearchCmdRejectsUnknownAvailability(t *testing.T) {
	resetCmdState(t)

	cli := &CLI{}
	parser, err := kong.New(cli, kong.Name("openshelf"))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"search", "dune", "--availability", "borrowable"})
	require.Error(t, err)
}

func TestEmbedCmdRun(t *testing.T) {
	cmd := &EmbedCmd{URL: "https://archive.org/details/hobbit00tolk"}
	require.NoError(t, cmd.Run())
}
