package tui

import "github.com/charmbracelet/bubbles/textinput"

type userSelectModel struct {
	input textinput.Model
}

func newUserSelectModel(current string) userSelectModel {
	input := textinput.New()
	input.Placeholder = "user id"
	input.Width = 40
	input.SetValue(current)
	input.Focus()
	return userSelectModel{input: input}
}

func (m userSelectModel) View() string {
	data := "Entries are scoped by user. Switching discards the loaded list.\n\n"
	data += "User: [" + m.input.View() + "]"
	return renderPage("SELECT USER", data, "enter select  esc back")
}
