package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-entry-keeper/internal/sorting"
	"github.com/MKhiriev/go-entry-keeper/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
)

const (
	titleWidth       = 24
	descriptionWidth = 40
	timeWidth        = 19
)

type listModel struct {
	table   table.Model
	entries []models.Entry
	sort    sorting.Descriptor
	hasMore bool
	userID  string

	loading bool
	spinner spinner.Model
	status  string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	d := sorting.DefaultDescriptor()
	t := table.New(
		table.WithColumns(tableColumns(d)),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	return listModel{table: t, sort: d, spinner: s}
}

var columnHeaders = map[sorting.Column]struct {
	title string
	width int
}{
	sorting.ColumnTitle:        {title: "1 Title", width: titleWidth},
	sorting.ColumnDescription:  {title: "2 Description", width: descriptionWidth},
	sorting.ColumnLastModified: {title: "3 Last modified", width: timeWidth},
}

// tableColumns marks the sorted column with an arrow.
func tableColumns(d sorting.Descriptor) []table.Column {
	columns := make([]table.Column, 0, len(columnHeaders))
	for _, column := range sorting.Columns() {
		header := columnHeaders[column]
		title := header.title
		if d.Column == column {
			if d.Direction == sorting.Ascending {
				title += " ▲"
			} else {
				title += " ▼"
			}
		}
		columns = append(columns, table.Column{Title: title, Width: header.width})
	}
	return columns
}

// setEntries shows entries in the given order, keeping the cursor in range.
func (m *listModel) setEntries(entries []models.Entry, d sorting.Descriptor, hasMore bool) {
	m.entries = entries
	m.sort = d
	m.hasMore = hasMore

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			fitText(e.Title, titleWidth),
			fitText(e.Description, descriptionWidth),
			formatTimestamp(e.LastModified),
		})
	}

	m.table.SetColumns(tableColumns(d))
	m.table.SetRows(rows)

	if cursor := m.table.Cursor(); cursor >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m listModel) current() (models.Entry, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.entries) {
		return models.Entry{}, false
	}
	return m.entries[idx], true
}

func (m listModel) View() string {
	header := "Entries of " + m.userID
	if m.loading {
		header += "  " + m.spinner.View()
	}

	var b strings.Builder
	switch {
	case m.loading && len(m.entries) == 0:
		b.WriteString("Loading...")
	case len(m.entries) == 0:
		b.WriteString("No entries")
	default:
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	if m.hasMore {
		b.WriteString(fmt.Sprintf("%d loaded, m to load more", len(m.entries)))
	} else {
		b.WriteString(fmt.Sprintf("%d loaded, all pages fetched", len(m.entries)))
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}

	hotKeys := "n new  e edit  d delete  enter open  c copy  m more  r reload  1/2/3 sort  u user  v about  q quit"
	return renderPage(header, b.String(), hotKeys)
}
