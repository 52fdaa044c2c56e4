package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jkorri/openshelf/internal/cache"
	apperrors "github.com/jkorri/openshelf/internal/errors"
)

const availabilityCacheTable = "availability_cache"

// ResolveAvailability fills preview and borrow information on books that
// carry an ISBN through batched viewapi lookups, then applies the archival
// fallback to books that still lack a confirmed preview but reference an
// Internet Archive scan.
//
// A failed or malformed batch lookup is non-fatal: the affected books keep
// their unresolved availability and the failure is logged.
func (c *Client) ResolveAvailability(ctx context.Context, books []*Book) {
	var withISBN []*Book
	for _, book := range books {
		if book.ISBN != "" {
			withISBN = append(withISBN, book)
		}
	}

	for start := 0; start < len(withISBN); start += bibkeyBatchSize {
		end := start + bibkeyBatchSize
		if end > len(withISBN) {
			end = len(withISBN)
		}
		if err := c.resolveBatch(ctx, withISBN[start:end]); err != nil {
			slog.Warn("Availability lookup failed, leaving batch unresolved", "error", err)
		}
	}

	for _, book := range books {
		c.applyArchiveFallback(book)
	}
}

// resolveBatch resolves availability for at most bibkeyBatchSize books.
// Cached entries are applied even when the fetch for the remaining books
// fails; books whose bibkey is absent from the response stay untouched,
// meaning "lookup inconclusive" rather than "confirmed unavailable".
func (c *Client) resolveBatch(ctx context.Context, batch []*Book) error {
	entries := make(map[string]viewAPIEntry, len(batch))
	var missing []*Book
	for _, book := range batch {
		if entry, ok := cachedEntry(book.ISBN); ok {
			entries[bibkey(book.ISBN)] = entry
		} else {
			missing = append(missing, book)
		}
	}

	var fetchErr error
	if len(missing) > 0 {
		fetched, err := c.fetchViewAPI(ctx, missing)
		if err != nil {
			fetchErr = apperrors.NewAvailabilityError(len(missing), err)
		} else {
			for key, entry := range fetched {
				entries[key] = entry
			}
			storeEntries(missing, fetched)
		}
	}

	for _, book := range batch {
		entry, ok := entries[bibkey(book.ISBN)]
		if !ok {
			continue
		}
		applyViewAPI(book, entry)
	}

	return fetchErr
}

func (c *Client) fetchViewAPI(ctx context.Context, books []*Book) (map[string]viewAPIEntry, error) {
	keys := make([]string, 0, len(books))
	for _, book := range books {
		keys = append(keys, bibkey(book.ISBN))
	}

	params := url.Values{}
	params.Set("bibkeys", strings.Join(keys, ","))
	params.Set("format", "json")
	params.Set("jscmd", "viewapi")

	endpoint := fmt.Sprintf("%s/api/books?%s", c.baseURL, params.Encode())

	var result map[string]viewAPIEntry
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// applyViewAPI marks availability as confirmed, positively or negatively,
// based on one response entry. The read URL prefers the borrow URL and falls
// back to the preview URL.
func applyViewAPI(book *Book, entry viewAPIEntry) {
	hasPreview := entry.PreviewURL != ""
	readable := entry.BorrowURL != ""
	book.PreviewAvailable = &hasPreview
	book.Readable = &readable
	book.PreviewURL = entry.PreviewURL
	switch {
	case entry.BorrowURL != "":
		book.ReadURL = entry.BorrowURL
	case entry.PreviewURL != "":
		book.ReadURL = entry.PreviewURL
	}
}

// applyArchiveFallback synthesizes a preview from the book's archival
// identifier. A preview confirmed by the bibkey lookup is never overwritten.
func (c *Client) applyArchiveFallback(book *Book) {
	if book.HasPreview() || book.IAIdentifier == "" {
		return
	}
	available := true
	book.PreviewAvailable = &available
	book.PreviewURL = c.ArchiveDetailURL(book.IAIdentifier)
	book.ReadURL = book.PreviewURL
}

func bibkey(isbn string) string {
	return "ISBN:" + isbn
}

func cachedEntry(isbn string) (viewAPIEntry, bool) {
	var entry viewAPIEntry
	data, found := cache.Get(availabilityCacheTable, isbn)
	if !found {
		return entry, false
	}
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		slog.Warn("Failed to unmarshal cached availability, will refetch", "isbn", isbn, "error", err)
		return entry, false
	}
	return entry, true
}

func storeEntries(books []*Book, fetched map[string]viewAPIEntry) {
	for _, book := range books {
		entry, ok := fetched[bibkey(book.ISBN)]
		if !ok {
			// Absent keys are inconclusive and deliberately not cached.
			continue
		}
		data, err := json.Marshal(entry)
		if err != nil {
			continue
		}
		cache.Put(availabilityCacheTable, book.ISBN, string(data))
	}
}
