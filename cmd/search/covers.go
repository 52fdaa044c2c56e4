package search

import (
	"context"

	"github.com/jkorri/openshelf/internal/config"
	"github.com/jkorri/openshelf/internal/fileutil"
	"github.com/jkorri/openshelf/internal/openlibrary"
)

const coverMaxWidth = 500

// downloadCoverIfEnabled fetches the book cover into the output directory's
// attachments folder and returns the note-relative path, or "" when cover
// downloads are disabled or the record has no cover.
func downloadCoverIfEnabled(ctx context.Context, client *openlibrary.Client, book *openlibrary.Book, outputDir string) (string, error) {
	if !config.DownloadCovers || !book.HasCover() {
		return "", nil
	}

	result, err := fileutil.DownloadCover(ctx, fileutil.CoverDownloadOptions{
		URL:       client.CoverURL(book.CoverID, openlibrary.CoverLarge),
		OutputDir: outputDir,
		Filename:  fileutil.BuildCoverFilename(book.Title),
		MaxWidth:  coverMaxWidth,
		Overwrite: config.OverwriteFiles,
	})
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", nil
	}
	return result.RelativePath, nil
}
