package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jkorri/openshelf/internal/errors"
	"github.com/jkorri/openshelf/internal/openlibrary"
	"github.com/jkorri/openshelf/internal/testutil"
	"github.com/jkorri/openshelf/internal/tui"
)

const searchBody = `{
	"numFound": 2,
	"docs": [
		{
			"key": "/works/OL1W",
			"title": "The Hobbit",
			"author_name": ["J.R.R. Tolkien"],
			"first_publish_year": 1937,
			"publisher": ["Allen & Unwin"],
			"language": ["eng"],
			"has_fulltext": true,
			"ia": ["hobbit00tolk"]
		},
		{
			"key": "/works/OL2W",
			"title": "The Silmarillion",
			"author_name": ["J.R.R. Tolkien"],
			"first_publish_year": 1977,
			"language": ["eng"],
			"has_fulltext": false
		}
	]
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	testutil.SetViperValue(t, "openlibrary.baseurl", server.URL)
	testutil.SetViperValue(t, "openlibrary.archivebaseurl", server.URL)
	return server
}

func searchHandler(t *testing.T, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search.json":
			_, _ = w.Write([]byte(body))
		default:
			t.Errorf("unexpected request path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestRunWithParamsNoOpDoesNothing(t *testing.T) {
	testutil.ResetConfig(t)

	calls := 0
	newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	err := RunWithParams(context.Background(), Params{Availability: "all"})
	require.NoError(t, err)
	assert.Equal(t, 0, calls)
}

func TestRunWithParamsInvalidAvailability(t *testing.T) {
	testutil.ResetConfig(t)

	err := RunWithParams(context.Background(), Params{Query: "hobbit", Availability: "borrowable"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown availability")
}

func TestRunWithParamsExportsResults(t *testing.T) {
	testutil.ResetConfig(t)
	newTestServer(t, searchHandler(t, searchBody))

	tempDir := t.TempDir()
	testutil.SetViperValue(t, "markdownoutputdir", filepath.Join(tempDir, "md"))

	err := RunWithParams(context.Background(), Params{
		Query:      "tolkien",
		Limit:      20,
		WriteJSON:  true,
		JSONOutput: filepath.Join(tempDir, "books.json"),
		Markdown:   true,
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(tempDir, "books.json"))
	assert.FileExists(t, filepath.Join(tempDir, "md", "search", "The Hobbit.md"))
	assert.FileExists(t, filepath.Join(tempDir, "md", "search", "The Silmarillion.md"))
}

func TestRunWithParamsSearchFailureIsFatal(t *testing.T) {
	testutil.ResetConfig(t)
	newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := RunWithParams(context.Background(), Params{Query: "tolkien"})
	require.Error(t, err)
	assert.True(t, apperrors.IsSearchError(err))
}

func TestRunWithParamsInteractivePick(t *testing.T) {
	testutil.ResetConfig(t)
	newTestServer(t, searchHandler(t, searchBody))

	originalSelect := selectBook
	t.Cleanup(func() { selectBook = originalSelect })

	var offered []*openlibrary.Book
	selectBook = func(title string, books []*openlibrary.Book) (tui.SelectionResult, error) {
		offered = books
		return tui.SelectionResult{Action: tui.ActionSelected, Selection: books[0]}, nil
	}

	err := RunWithParams(context.Background(), Params{Query: "tolkien", Interactive: true})
	require.NoError(t, err)
	require.Len(t, offered, 2)
	assert.Equal(t, "The Hobbit", offered[0].Title)
}

func TestParseAvailability(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"", "all", false},
		{"all", "all", false},
		{"preview", "preview", false},
		{"fulltext", "fulltext", false},
		{"borrowable", "", true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, err := parseAvailability(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
