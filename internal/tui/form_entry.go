package tui

import (
	"github.com/MKhiriev/go-entry-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type formEntryModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	id         string
	submitting bool
}

func newFormEntryModel(entry *models.Entry) formEntryModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[0].Placeholder = "title"
	inputs[1].Placeholder = "description"
	inputs[0].Focus()

	m := formEntryModel{inputs: inputs}
	if entry == nil {
		return m
	}

	m.editing = true
	m.id = entry.ID
	m.inputs[0].SetValue(entry.Title)
	m.inputs[1].SetValue(entry.Description)
	return m
}

func (m formEntryModel) title() string       { return m.inputs[0].Value() }
func (m formEntryModel) description() string { return m.inputs[1].Value() }

func (m formEntryModel) focusNext() formEntryModel {
	return m.focusOn((m.focus + 1) % len(m.inputs))
}

func (m formEntryModel) focusPrev() formEntryModel {
	return m.focusOn((m.focus - 1 + len(m.inputs)) % len(m.inputs))
}

func (m formEntryModel) focusOn(i int) formEntryModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

func (m formEntryModel) View() string {
	title := "New entry"
	if m.editing {
		title = "Edit: " + m.inputs[0].Value()
	}

	data := "Title:       [" + m.inputs[0].View() + "]\n"
	data += "Description: [" + m.inputs[1].View() + "]"
	if m.submitting {
		data += "\n\nSaving..."
	}

	return renderPage(title, data, "esc cancel  tab next field  enter save")
}
