package openlibrary

import "fmt"

// CoverSize selects the cover image resolution.
type CoverSize string

const (
	// CoverSmall suits list thumbnails.
	CoverSmall CoverSize = "S"
	// CoverMedium suits detail views.
	CoverMedium CoverSize = "M"
	// CoverLarge suits downloads and full-size rendering.
	CoverLarge CoverSize = "L"
)

// CoverURL builds the cover image URL for a cover handle.
// Returns an empty string when the book carries no cover.
func (c *Client) CoverURL(coverID int, size CoverSize) string {
	if coverID <= 0 {
		return ""
	}
	return fmt.Sprintf("%s/b/id/%d-%s.jpg", c.coversBaseURL, coverID, size)
}

// DetailURL builds the catalog detail page URL for a book.
// Book IDs come back from the search endpoint with a leading slash
// (e.g. "/works/OL45883W").
func (c *Client) DetailURL(id string) string {
	if id == "" {
		return ""
	}
	return c.baseURL + id
}

// BorrowURL builds the catalog full-text borrow URL for a book.
func (c *Client) BorrowURL(id string) string {
	if id == "" {
		return ""
	}
	return c.baseURL + id + "/borrow"
}

// ArchiveDetailURL builds the archival detail URL for an archive identifier.
func (c *Client) ArchiveDetailURL(iaIdentifier string) string {
	if iaIdentifier == "" {
		return ""
	}
	return c.archiveBaseURL + "/details/" + iaIdentifier
}
