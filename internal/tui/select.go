// Package tui provides interactive terminal UI components.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jkorri/openshelf/internal/openlibrary"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 20
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

// SelectionAction represents the user's action in the selection UI.
type SelectionAction int

const (
	// ActionNone indicates no action was taken.
	ActionNone SelectionAction = iota
	// ActionSelected indicates the user selected a book.
	ActionSelected
	// ActionSkipped indicates the user dismissed the picker.
	ActionSkipped
)

// SelectionResult holds the result of a TUI selection.
type SelectionResult struct {
	Action    SelectionAction
	Selection *openlibrary.Book
}

type bookItem struct {
	book *openlibrary.Book
}

func (i bookItem) Title() string {
	return fmt.Sprintf("%s (%s)", i.book.Title, i.book.YearString())
}

func (i bookItem) Description() string {
	return i.book.Author
}

func (i bookItem) FilterValue() string {
	return i.book.Title
}

type itemStyles struct {
	normal        lipgloss.Style
	selected      lipgloss.Style
	titleStyle    lipgloss.Style
	badgeStyle    lipgloss.Style
	metadataStyle lipgloss.Style
}

func newItemStyles() itemStyles {
	asciiBorder := lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	container := lipgloss.NewStyle().
		Border(asciiBorder).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Foreground(lipgloss.Color("252"))

	selected := container.Copy().
		BorderForeground(lipgloss.Color("214")).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("237"))

	return itemStyles{
		normal:   container,
		selected: selected,
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254")),
		badgeStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110")),
		metadataStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			Faint(true),
	}
}

type bookDelegate struct {
	styles itemStyles
}

func newDelegate() bookDelegate {
	return bookDelegate{styles: newItemStyles()}
}

func (d bookDelegate) Height() int                         { return 4 }
func (d bookDelegate) Spacing() int                        { return 1 }
func (d bookDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d bookDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	entry, ok := item.(bookItem)
	if !ok {
		return
	}
	book := entry.book

	badgeLine := d.styles.badgeStyle.Render(availabilityBadge(book))
	titleLine := d.styles.titleStyle.Render(fmt.Sprintf("%s (%s)", book.Title, book.YearString()))
	metadataLine := d.styles.metadataStyle.Render(
		fmt.Sprintf("%s | %s | %s", book.Author, book.Publisher, strings.Join(book.Languages, ", ")))

	content := lipgloss.JoinVertical(lipgloss.Left, badgeLine, titleLine, metadataLine)

	container := d.styles.normal
	if idx == m.Index() {
		container = d.styles.selected
	}
	_, _ = fmt.Fprint(w, container.Render(content))
}

func availabilityBadge(book *openlibrary.Book) string {
	switch {
	case book.HasFulltext:
		return "[FULL TEXT]"
	case book.HasPreview():
		return "[PREVIEW]"
	case book.PreviewAvailable == nil:
		return "[AVAILABILITY UNKNOWN]"
	default:
		return "[NO PREVIEW]"
	}
}

type model struct {
	list        list.Model
	searchTitle string
	result      SelectionResult
}

func newModel(title string, books []*openlibrary.Book) *model {
	listItems := make([]list.Item, len(books))
	for i, book := range books {
		listItems[i] = bookItem{book: book}
	}

	delegate := newDelegate()
	l := list.New(listItems, delegate, defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle()

	return &model{
		list:        l,
		searchTitle: title,
		result: SelectionResult{
			Action: ActionNone,
		},
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if selected, ok := m.list.SelectedItem().(bookItem); ok {
				m.result = SelectionResult{
					Action:    ActionSelected,
					Selection: selected.book,
				}
			}
			return m, tea.Quit
		case "esc", "q", "ctrl+c":
			m.result = SelectionResult{Action: ActionSkipped}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	header := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("Results for %q (enter to pick, esc to skip)", m.searchTitle))
	return header + "\n\n" + m.list.View()
}

// SelectBook opens an interactive picker over the given results and returns
// the user's choice.
func SelectBook(searchTitle string, books []*openlibrary.Book) (SelectionResult, error) {
	if len(books) == 0 {
		return SelectionResult{Action: ActionSkipped}, nil
	}

	finalModel, err := runProgram(newModel(searchTitle, books))
	if err != nil {
		return SelectionResult{}, fmt.Errorf("selection UI failed: %w", err)
	}

	picked, ok := finalModel.(*model)
	if !ok {
		return SelectionResult{}, fmt.Errorf("unexpected model type from selection UI")
	}
	return picked.result, nil
}
