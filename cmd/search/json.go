package search

import (
	"log/slog"

	"github.com/jkorri/openshelf/internal/fileutil"
	"github.com/jkorri/openshelf/internal/openlibrary"
)

func writeBooksToJSONIfEnabled(books []*openlibrary.Book, jsonOutput string) {
	if err := fileutil.WriteJSONFile(jsonOutput, books); err != nil {
		slog.Error("Error writing books to JSON", "error", err)
		return
	}
	slog.Info("Wrote JSON export", "file", jsonOutput, "count", len(books))
}
