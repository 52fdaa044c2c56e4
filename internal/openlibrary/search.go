package openlibrary

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	apperrors "github.com/jkorri/openshelf/internal/errors"
)

// Search issues one catalog search request and maps the raw records to
// normalized books. Availability fields are left unresolved; callers enrich
// them with ResolveAvailability. When fulltextOnly is set the request asserts
// the full-text constraint server-side.
//
// Any transport or decode failure surfaces as a single fatal SearchError;
// no partial results are returned.
func (c *Client) Search(ctx context.Context, query string, fulltextOnly bool, limit int) (*SearchPage, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	if fulltextOnly {
		params.Set("has_fulltext", "true")
	}

	endpoint := fmt.Sprintf("%s/search.json?%s", c.baseURL, params.Encode())

	var response searchResponse
	// A failed primary search requires the user to resubmit, so no retries.
	if err := c.doJSONRequest(ctx, endpoint, &response); err != nil {
		return nil, apperrors.NewSearchError(err)
	}

	books := make([]*Book, 0, len(response.Docs))
	for _, doc := range response.Docs {
		books = append(books, doc.toBook())
	}

	return &SearchPage{
		NumFound: response.NumFound,
		Books:    books,
	}, nil
}
