package fileutil

import (
	"fmt"
	"strings"
)

// MarkdownBuilder helps construct markdown documents with frontmatter
type MarkdownBuilder struct {
	frontmatter strings.Builder
	content     strings.Builder
}

// NewMarkdownBuilder creates a new markdown builder
func NewMarkdownBuilder() *MarkdownBuilder {
	mb := &MarkdownBuilder{}
	mb.frontmatter.WriteString("---\n")
	return mb
}

// AddTitle adds a title field to the frontmatter
func (mb *MarkdownBuilder) AddTitle(title string) *MarkdownBuilder {
	fmt.Fprintf(&mb.frontmatter, "title: \"%s\"\n", title)
	return mb
}

// AddType adds a type field to the frontmatter
func (mb *MarkdownBuilder) AddType(noteType string) *MarkdownBuilder {
	fmt.Fprintf(&mb.frontmatter, "type: %s\n", noteType)
	return mb
}

// AddYear adds a year field to the frontmatter when it is known
func (mb *MarkdownBuilder) AddYear(year int) *MarkdownBuilder {
	if year > 0 {
		fmt.Fprintf(&mb.frontmatter, "year: %d\n", year)
	}
	return mb
}

// AddField adds a simple key-value field to the frontmatter.
// Empty strings and zero ints are skipped; booleans always render.
func (mb *MarkdownBuilder) AddField(key string, value any) *MarkdownBuilder {
	switch v := value.(type) {
	case string:
		if v != "" {
			fmt.Fprintf(&mb.frontmatter, "%s: \"%s\"\n", key, v)
		}
	case int:
		if v != 0 {
			fmt.Fprintf(&mb.frontmatter, "%s: %d\n", key, v)
		}
	case bool:
		fmt.Fprintf(&mb.frontmatter, "%s: %t\n", key, v)
	}
	return mb
}

// AddStringArray adds an array of strings to the frontmatter
func (mb *MarkdownBuilder) AddStringArray(key string, values []string) *MarkdownBuilder {
	if len(values) == 0 {
		return mb
	}

	mb.frontmatter.WriteString(key + ":\n")
	for _, value := range values {
		if value != "" {
			fmt.Fprintf(&mb.frontmatter, "  - \"%s\"\n", strings.TrimSpace(value))
		}
	}
	return mb
}

// AddParagraph appends a paragraph to the document body
func (mb *MarkdownBuilder) AddParagraph(text string) *MarkdownBuilder {
	if text != "" {
		mb.content.WriteString(text)
		mb.content.WriteString("\n\n")
	}
	return mb
}

// AddImage appends an image reference to the document body
func (mb *MarkdownBuilder) AddImage(altText, path string) *MarkdownBuilder {
	if path != "" {
		fmt.Fprintf(&mb.content, "![%s](%s)\n\n", altText, path)
	}
	return mb
}

// Build returns the complete markdown document
func (mb *MarkdownBuilder) Build() string {
	var doc strings.Builder
	doc.WriteString(mb.frontmatter.String())
	doc.WriteString("---\n\n")
	doc.WriteString(mb.content.String())
	return doc.String()
}
