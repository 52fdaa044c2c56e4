package search

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jkorri/openshelf/internal/catalog"
	"github.com/jkorri/openshelf/internal/openlibrary"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254"))

	metadataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("247"))

	fulltextStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("40"))

	previewStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110"))

	unavailableStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Faint(true)
)

func renderResults(w io.Writer, client *openlibrary.Client, snapshot catalog.Snapshot) {
	fmt.Fprintln(w, headerStyle.Render(
		fmt.Sprintf("Found %d books, showing %d", snapshot.Total, len(snapshot.Books))))
	fmt.Fprintln(w)

	for i, book := range snapshot.Books {
		fmt.Fprintf(w, "%2d. %s %s\n", i+1,
			titleStyle.Render(fmt.Sprintf("%s (%s)", book.Title, book.YearString())),
			availabilityLabel(book))
		fmt.Fprintf(w, "    %s\n", metadataStyle.Render(bookMetadata(book)))
		if url := readableURL(book); url != "" {
			fmt.Fprintf(w, "    %s\n", metadataStyle.Render(url))
		} else if book.ID != "" {
			fmt.Fprintf(w, "    %s\n", metadataStyle.Render(client.DetailURL(book.ID)))
		}
	}
}

func bookMetadata(book *openlibrary.Book) string {
	parts := []string{book.Author, book.Publisher}
	if len(book.Languages) > 0 {
		parts = append(parts, strings.Join(book.Languages, ", "))
	}
	return strings.Join(parts, " | ")
}

// readableURL prefers the read URL over the preview URL.
func readableURL(book *openlibrary.Book) string {
	if book.ReadURL != "" {
		return book.ReadURL
	}
	return book.PreviewURL
}

func availabilityLabel(book *openlibrary.Book) string {
	switch {
	case book.HasFulltext:
		return fulltextStyle.Render("[full text]")
	case book.HasPreview():
		return previewStyle.Render("[preview]")
	case book.PreviewAvailable == nil:
		return unavailableStyle.Render("[availability unknown]")
	default:
		return unavailableStyle.Render("[no preview]")
	}
}
