package openlibrary

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestCoverURL(t *testing.T) {
	client := NewClient()

	assert.Equal(t, "https://covers.openlibrary.org/b/id/9255566-S.jpg", client.CoverURL(9255566, CoverSmall))
	assert.Equal(t, "https://covers.openlibrary.org/b/id/9255566-M.jpg", client.CoverURL(9255566, CoverMedium))
	assert.Equal(t, "https://covers.openlibrary.org/b/id/9255566-L.jpg", client.CoverURL(9255566, CoverLarge))
	assert.Equal(t, "", client.CoverURL(0, CoverMedium))
	assert.Equal(t, "", client.CoverURL(-1, CoverSmall))
}

func TestCatalogURLs(t *testing.T) {
	client := NewClient()

	assert.Equal(t, "https://openlibrary.org/works/OL45883W", client.DetailURL("/works/OL45883W"))
	assert.Equal(t, "https://openlibrary.org/books/OL7353617M/borrow", client.BorrowURL("/books/OL7353617M"))
	assert.Equal(t, "", client.DetailURL(""))
	assert.Equal(t, "", client.BorrowURL(""))
}

func TestArchiveDetailURL(t *testing.T) {
	client := NewClient(WithArchiveBaseURL("https://archive.example/"))

	assert.Equal(t, "https://archive.example/details/abc123", client.ArchiveDetailURL("abc123"))
	assert.Equal(t, "", client.ArchiveDetailURL(""))
}
