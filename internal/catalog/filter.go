package catalog

import "github.com/jkorri/openshelf/internal/openlibrary"

// FilterByAvailability applies the availability post-filter to an enriched
// result list. Books are consumed read-only.
func FilterByAvailability(books []*openlibrary.Book, availability Availability) []*openlibrary.Book {
	switch availability {
	case AvailabilityPreview:
		kept := make([]*openlibrary.Book, 0, len(books))
		for _, book := range books {
			if book.HasPreview() {
				kept = append(kept, book)
			}
		}
		return kept
	case AvailabilityFulltext:
		kept := make([]*openlibrary.Book, 0, len(books))
		for _, book := range books {
			if book.HasFulltext {
				kept = append(kept, book)
			}
		}
		return kept
	default:
		return books
	}
}

// TotalCount derives the reported total match count. The server total is not
// filter-aware, so for preview and fulltext the filtered length is reported
// instead.
func TotalCount(filtered []*openlibrary.Book, numFound int, availability Availability) int {
	if availability == AvailabilityPreview || availability == AvailabilityFulltext {
		return len(filtered)
	}
	return numFound
}
