package search

import (
	"log/slog"
	"os"

	"github.com/jkorri/openshelf/internal/catalog"
	"github.com/jkorri/openshelf/internal/config"
	"github.com/jkorri/openshelf/internal/fileutil"
	"github.com/jkorri/openshelf/internal/frontmatter"
	"github.com/jkorri/openshelf/internal/openlibrary"
)

func writeBookToMarkdown(client *openlibrary.Client, book *openlibrary.Book, directory string, coverPath string) error {
	filePath := fileutil.GetMarkdownFilePath(book.Title, directory)

	if !config.OverwriteFiles && noteExistsForBook(filePath, book) {
		slog.Debug("Note already exists, skipping", "title", book.Title)
		return nil
	}

	mb := fileutil.NewMarkdownBuilder().
		AddTitle(book.Title).
		AddType("book").
		AddField("catalog_id", book.ID).
		AddField("author", book.Author)

	if book.Year > 0 {
		mb.AddYear(book.Year)
	}
	if book.Publisher != openlibrary.UnknownPublisher {
		mb.AddField("publisher", book.Publisher)
	}
	if book.ISBN != "" {
		mb.AddField("isbn", book.ISBN)
	}
	mb.AddStringArray("languages", book.Languages)
	mb.AddField("has_fulltext", book.HasFulltext)

	if book.PreviewURL != "" {
		mb.AddField("preview_url", book.PreviewURL)
	}
	if book.ReadURL != "" {
		mb.AddField("read_url", book.ReadURL)
	}
	if embedURL, ok := catalog.EmbedURL(book); ok {
		mb.AddField("embed_url", embedURL)
	}

	if coverPath != "" {
		mb.AddImage(book.Title, coverPath)
	}
	if book.ID != "" {
		mb.AddParagraph("[View on Open Library](" + client.DetailURL(book.ID) + ")")
	}

	written, err := fileutil.WriteFileWithOverwrite(
		filePath, []byte(mb.Build()), 0644, config.OverwriteFiles)
	if err != nil {
		return err
	}
	if !written {
		slog.Debug("Note already exists, skipping", "title", book.Title)
	}
	return nil
}

// noteExistsForBook reports whether the markdown file already describes this
// exact catalog record. A note for a different record with the same title is
// left alone too, the overwrite flag is the only way to replace it.
func noteExistsForBook(filePath string, book *openlibrary.Book) bool {
	if !fileutil.FileExists(filePath) {
		return false
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return true
	}
	note, err := frontmatter.ParseMarkdown(content)
	if err != nil {
		return true
	}
	if id := note.StringField("catalog_id"); id != "" && id != book.ID {
		slog.Warn("Existing note describes a different record",
			"file", filePath, "existing", id, "new", book.ID)
	}
	return true
}
