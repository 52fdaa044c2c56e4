// Package catalog implements the search pipeline: query composition,
// availability filtering, embed URL resolution and the orchestrator that
// sequences one search invocation end to end.
package catalog

// Availability selects which results a search keeps.
type Availability string

const (
	// AvailabilityAll keeps every result.
	AvailabilityAll Availability = "all"
	// AvailabilityPreview keeps results with a confirmed preview.
	AvailabilityPreview Availability = "preview"
	// AvailabilityFulltext keeps results the catalog marks full-text searchable.
	AvailabilityFulltext Availability = "fulltext"
)

// Filters are the structured constraints of one search invocation.
// Immutable input: changing filters defines the next invocation, it never
// invalidates published results.
type Filters struct {
	Author       string
	Subject      string
	Year         string
	Availability Availability
}

// BuildQuery composes the catalog query string from free text and filters.
// Structured constraints append as field-qualified terms; escaping is left
// to the transport layer, which encodes the whole string.
func BuildQuery(text string, filters Filters) string {
	query := text
	if filters.Author != "" {
		query += " author:" + filters.Author
	}
	if filters.Subject != "" {
		query += " subject:" + filters.Subject
	}
	if filters.Year != "" {
		query += " publishdate:" + filters.Year
	}
	return query
}

// IsNoOp reports whether the pair describes an empty search. An empty search
// is not executed and is not an error.
func IsNoOp(text string, filters Filters) bool {
	if text != "" || filters.Author != "" || filters.Subject != "" || filters.Year != "" {
		return false
	}
	return filters.Availability == "" || filters.Availability == AvailabilityAll
}
