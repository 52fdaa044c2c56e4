package openlibrary

import "strconv"

// Sentinel display values for records that omit a field.
const (
	UnknownAuthor    = "Unknown Author"
	UnknownPublisher = "Unknown Publisher"
	UnknownYear      = "Unknown Year"
	UnknownLanguage  = "Unknown"
)

// Book is the normalized catalog entity produced by Search and enriched in
// place by ResolveAvailability. Availability uses pointer booleans so an
// inconclusive lookup (nil) stays distinguishable from a confirmed negative.
type Book struct {
	ID           string
	Title        string
	Author       string
	Publisher    string
	Year         int
	CoverID      int
	Languages    []string
	ISBN         string
	IAIdentifier string
	HasFulltext  bool

	PreviewAvailable *bool
	Readable         *bool
	PreviewURL       string
	ReadURL          string
}

// YearString renders the publish year, falling back to the sentinel when the
// record carried none.
func (b *Book) YearString() string {
	if b.Year <= 0 {
		return UnknownYear
	}
	return strconv.Itoa(b.Year)
}

// HasPreview reports whether a preview was confirmed for this book.
func (b *Book) HasPreview() bool {
	return b.PreviewAvailable != nil && *b.PreviewAvailable
}

// HasCover reports whether the record carries a cover image handle.
func (b *Book) HasCover() bool {
	return b.CoverID > 0
}

// SearchPage is one page of catalog search results.
type SearchPage struct {
	// NumFound is the server-reported total match count, which may exceed
	// the number of books returned.
	NumFound int
	Books    []*Book
}

type searchResponse struct {
	NumFound int         `json:"numFound"`
	Docs     []searchDoc `json:"docs"`
}

type searchDoc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear int      `json:"first_publish_year"`
	CoverI           int      `json:"cover_i"`
	Publisher        []string `json:"publisher"`
	Language         []string `json:"language"`
	ISBN             []string `json:"isbn"`
	HasFulltext      bool     `json:"has_fulltext"`
	IA               []string `json:"ia"`
}

// viewAPIEntry is one value of the availability lookup response, keyed by bibkey.
type viewAPIEntry struct {
	PreviewURL string `json:"preview_url"`
	BorrowURL  string `json:"borrow_url"`
}

func (d searchDoc) toBook() *Book {
	book := &Book{
		ID:          d.Key,
		Title:       d.Title,
		Author:      UnknownAuthor,
		Publisher:   UnknownPublisher,
		Year:        d.FirstPublishYear,
		CoverID:     d.CoverI,
		Languages:   languageNames(d.Language),
		HasFulltext: d.HasFulltext,
	}
	if len(d.AuthorName) > 0 {
		book.Author = d.AuthorName[0]
	}
	if len(d.Publisher) > 0 {
		book.Publisher = d.Publisher[0]
	}
	if len(d.ISBN) > 0 {
		book.ISBN = d.ISBN[0]
	}
	if len(d.IA) > 0 {
		book.IAIdentifier = d.IA[0]
	}
	return book
}

// knownLanguages maps MARC language codes used by the catalog to display names.
var knownLanguages = map[string]string{
	"eng": "English",
	"fre": "French",
	"ger": "German",
	"spa": "Spanish",
	"ita": "Italian",
	"por": "Portuguese",
	"dut": "Dutch",
	"rus": "Russian",
	"jpn": "Japanese",
	"chi": "Chinese",
	"ara": "Arabic",
	"lat": "Latin",
	"grc": "Ancient Greek",
	"fin": "Finnish",
	"swe": "Swedish",
	"nor": "Norwegian",
	"dan": "Danish",
	"pol": "Polish",
	"cze": "Czech",
	"hun": "Hungarian",
	"tur": "Turkish",
	"heb": "Hebrew",
	"kor": "Korean",
	"hin": "Hindi",
	"und": "Undetermined",
}

// languageNames maps language codes to human-readable names. Unmapped codes
// pass through verbatim; an empty list reads as a single unknown entry.
func languageNames(codes []string) []string {
	if len(codes) == 0 {
		return []string{UnknownLanguage}
	}
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		if name, ok := knownLanguages[code]; ok {
			names = append(names, name)
			continue
		}
		names = append(names, code)
	}
	return names
}
