package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkorri/openshelf/internal/config"
	"github.com/jkorri/openshelf/internal/openlibrary"
	"github.com/jkorri/openshelf/internal/testutil"
)

func fullBook() *openlibrary.Book {
	yes := true
	return &openlibrary.Book{
		ID:               "/works/OL1W",
		Title:            "The Hobbit",
		Author:           "J.R.R. Tolkien",
		Publisher:        "Allen & Unwin",
		Year:             1937,
		Languages:        []string{"English"},
		ISBN:             "9780261103283",
		HasFulltext:      true,
		PreviewAvailable: &yes,
		PreviewURL:       "https://archive.org/details/hobbit00tolk",
		ReadURL:          "https://openlibrary.org/books/OL1M/borrow",
	}
}

func TestWriteBookToMarkdown(t *testing.T) {
	testutil.ResetConfig(t)
	dir := t.TempDir()

	require.NoError(t, writeBookToMarkdown(openlibrary.NewClient(), fullBook(), dir, "attachments/The Hobbit - cover.jpg"))

	content, err := os.ReadFile(filepath.Join(dir, "The Hobbit.md"))
	require.NoError(t, err)
	note := string(content)

	assert.Contains(t, note, "title: \"The Hobbit\"")
	assert.Contains(t, note, "type: book")
	assert.Contains(t, note, "catalog_id: \"/works/OL1W\"")
	assert.Contains(t, note, "author: \"J.R.R. Tolkien\"")
	assert.Contains(t, note, "year: 1937")
	assert.Contains(t, note, "isbn: \"9780261103283\"")
	assert.Contains(t, note, "has_fulltext: true")
	assert.Contains(t, note, "preview_url: \"https://archive.org/details/hobbit00tolk\"")
	assert.Contains(t, note, "embed_url: \"https://archive.org/embed/hobbit00tolk\"")
	assert.Contains(t, note, "attachments/The Hobbit - cover.jpg")
	assert.Contains(t, note, "[View on Open Library](https://openlibrary.org/works/OL1W)")
}

func TestWriteBookToMarkdownSkipsSentinelPublisher(t *testing.T) {
	testutil.ResetConfig(t)
	dir := t.TempDir()

	book := fullBook()
	book.Publisher = openlibrary.UnknownPublisher
	require.NoError(t, writeBookToMarkdown(openlibrary.NewClient(), book, dir, ""))

	content, err := os.ReadFile(filepath.Join(dir, "The Hobbit.md"))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "publisher:")
}

func TestWriteBookToMarkdownSkipsExistingNote(t *testing.T) {
	testutil.ResetConfig(t)
	dir := t.TempDir()
	client := openlibrary.NewClient()

	require.NoError(t, writeBookToMarkdown(client, fullBook(), dir, ""))

	filePath := filepath.Join(dir, "The Hobbit.md")
	original, err := os.ReadFile(filePath)
	require.NoError(t, err)

	updated := fullBook()
	updated.Publisher = "HarperCollins"
	require.NoError(t, writeBookToMarkdown(client, updated, dir, ""))

	unchanged, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, string(original), string(unchanged))
}

func TestWriteBookToMarkdownOverwrites(t *testing.T) {
	testutil.ResetConfig(t)
	dir := t.TempDir()
	client := openlibrary.NewClient()

	require.NoError(t, writeBookToMarkdown(client, fullBook(), dir, ""))

	config.SetOverwriteFiles(true)
	updated := fullBook()
	updated.Publisher = "HarperCollins"
	require.NoError(t, writeBookToMarkdown(client, updated, dir, ""))

	content, err := os.ReadFile(filepath.Join(dir, "The Hobbit.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "HarperCollins")
}
