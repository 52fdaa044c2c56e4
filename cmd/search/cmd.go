// Package search implements the search command: it runs a catalog search,
// renders the results and optionally exports them or opens an interactive
// picker.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/jkorri/openshelf/internal/catalog"
	"github.com/jkorri/openshelf/internal/cmdutil"
	"github.com/jkorri/openshelf/internal/openlibrary"
	"github.com/jkorri/openshelf/internal/tui"
)

// Stubbed in tests.
var selectBook = tui.SelectBook

// Params holds everything one search invocation needs.
type Params struct {
	Query        string
	Author       string
	Subject      string
	Year         string
	Availability string
	Limit        int
	Output       string
	WriteJSON    bool
	JSONOutput   string
	Markdown     bool
	Interactive  bool
}

// RunWithParams executes a search with the given parameters.
func RunWithParams(ctx context.Context, params Params) error {
	availability, err := parseAvailability(params.Availability)
	if err != nil {
		return err
	}

	filters := catalog.Filters{
		Author:       params.Author,
		Subject:      params.Subject,
		Year:         params.Year,
		Availability: availability,
	}

	if catalog.IsNoOp(params.Query, filters) {
		fmt.Println("Nothing to search for, provide a query or a filter.")
		return nil
	}

	client := newClient()
	orchestrator := catalog.NewOrchestrator(client, params.Limit)

	snapshot, err := orchestrator.Search(ctx, params.Query, filters)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	renderResults(os.Stdout, client, snapshot)

	if len(snapshot.Books) > 0 {
		if err := exportResults(ctx, client, snapshot.Books, params); err != nil {
			return err
		}
	}

	if params.Interactive && len(snapshot.Books) > 0 {
		return pickAndPrintEmbedURL(params.Query, snapshot.Books)
	}

	return nil
}

func exportResults(ctx context.Context, client *openlibrary.Client, books []*openlibrary.Book, params Params) error {
	if !params.WriteJSON && !params.Markdown {
		return nil
	}

	cfg := &cmdutil.ExportConfig{
		OutputDir:  params.Output,
		ConfigKey:  "search",
		JSONOutput: params.JSONOutput,
		WriteJSON:  params.WriteJSON,
	}
	if err := cmdutil.SetupExportDirs(cfg); err != nil {
		return err
	}

	if params.WriteJSON {
		writeBooksToJSONIfEnabled(books, cfg.JSONOutput)
	}

	if params.Markdown {
		for _, book := range books {
			coverPath, err := downloadCoverIfEnabled(ctx, client, book, cfg.OutputDir)
			if err != nil {
				slog.Warn("Cover download failed", "title", book.Title, "error", err)
			}
			if err := writeBookToMarkdown(client, book, cfg.OutputDir, coverPath); err != nil {
				return fmt.Errorf("failed to write markdown for %q: %w", book.Title, err)
			}
		}
		slog.Info("Wrote markdown notes", "count", len(books), "directory", cfg.OutputDir)
	}

	return nil
}

func pickAndPrintEmbedURL(query string, books []*openlibrary.Book) error {
	result, err := selectBook(query, books)
	if err != nil {
		return err
	}
	if result.Action != tui.ActionSelected {
		return nil
	}

	embedURL, ok := catalog.EmbedURL(result.Selection)
	if !ok {
		fmt.Printf("No preview available for %q.\n", result.Selection.Title)
		return nil
	}
	fmt.Println(embedURL)
	return nil
}

func newClient() *openlibrary.Client {
	var opts []openlibrary.Option
	if base := viper.GetString("openlibrary.baseurl"); base != "" {
		opts = append(opts, openlibrary.WithBaseURL(base))
	}
	if base := viper.GetString("openlibrary.coversbaseurl"); base != "" {
		opts = append(opts, openlibrary.WithCoversBaseURL(base))
	}
	if base := viper.GetString("openlibrary.archivebaseurl"); base != "" {
		opts = append(opts, openlibrary.WithArchiveBaseURL(base))
	}
	return openlibrary.NewClient(opts...)
}

func parseAvailability(value string) (catalog.Availability, error) {
	switch catalog.Availability(value) {
	case "", catalog.AvailabilityAll:
		return catalog.AvailabilityAll, nil
	case catalog.AvailabilityPreview:
		return catalog.AvailabilityPreview, nil
	case catalog.AvailabilityFulltext:
		return catalog.AvailabilityFulltext, nil
	default:
		return "", fmt.Errorf("unknown availability %q (valid: all, preview, fulltext)", value)
	}
}
