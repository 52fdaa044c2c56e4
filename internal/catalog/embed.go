package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jkorri/openshelf/internal/openlibrary"
)

// provider identifies which host a preview URL points at. Dispatching on a
// tagged variant keeps adding providers cheap.
type provider int

const (
	providerUnknown provider = iota
	providerArchive
	providerCatalog
	providerGoogleBooks
)

func providerOf(rawURL string) provider {
	switch {
	case strings.Contains(rawURL, "archive.org"):
		return providerArchive
	case strings.Contains(rawURL, "openlibrary.org"):
		return providerCatalog
	case strings.Contains(rawURL, "books.google"):
		return providerGoogleBooks
	default:
		return providerUnknown
	}
}

// EmbedURL derives a directly embeddable form of a book's preview URL.
// Returns false when the book carries no preview URL; the caller renders a
// neutral placeholder in that case.
func EmbedURL(book *openlibrary.Book) (string, bool) {
	if book == nil || book.PreviewURL == "" {
		return "", false
	}
	return ResolveEmbedURL(book.PreviewURL), true
}

// ResolveEmbedURL rewrites a preview URL into its provider-specific
// embeddable form. URLs from unrecognized providers pass through unchanged.
func ResolveEmbedURL(previewURL string) string {
	switch providerOf(previewURL) {
	case providerArchive:
		return strings.Replace(previewURL, "/details/", "/embed/", 1)
	case providerGoogleBooks:
		if embed, ok := googleBooksEmbedURL(previewURL); ok {
			return embed
		}
	}
	return previewURL
}

// googleBooksEmbedURL normalizes a scanned-book URL to the embed template.
// Returns false when the URL carries no id parameter.
func googleBooksEmbedURL(rawURL string) (string, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	id := parsed.Query().Get("id")
	if id == "" {
		return "", false
	}
	return fmt.Sprintf("%s://%s/books/edition/_/%s?hl=en&gbpv=0&gboembed=true", parsed.Scheme, parsed.Host, id), true
}
