package tui

import (
	"fmt"

	"github.com/MKhiriev/go-entry-keeper/models"
)

type detailModel struct {
	entry  models.Entry
	status string
}

func (m detailModel) View() string {
	data := fmt.Sprintf("Title:         %s\n", m.entry.Title)
	data += fmt.Sprintf("Description:   %s\n", m.entry.Description)
	data += fmt.Sprintf("Last modified: %s\n", formatTimestamp(m.entry.LastModified))
	data += fmt.Sprintf("ID:            %s", m.entry.ID)

	if m.status != "" {
		data += "\n\n" + statusStyle.Render(m.status)
	}

	return renderPage(m.entry.Title, data, "e edit  d delete  c copy description  esc back")
}
