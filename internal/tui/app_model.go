package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-entry-keeper/internal/service"
	"github.com/MKhiriev/go-entry-keeper/internal/sorting"
	"github.com/MKhiriev/go-entry-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenUser screen = iota
	screenList
	screenForm
	screenDetail
)

type appModel struct {
	ctx           context.Context
	session       service.ClientEntrySession
	buildInfo     models.AppBuildInfo
	currentScreen screen

	user   userSelectModel
	list   listModel
	form   formEntryModel
	detail detailModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	showBuildInfo bool

	err error
}

func newAppModel(ctx context.Context, session service.ClientEntrySession, buildInfo models.AppBuildInfo) appModel {
	m := appModel{
		ctx:       ctx,
		session:   session,
		buildInfo: buildInfo,
		user:      newUserSelectModel(session.UserID()),
		list:      newListModel(),
	}
	m.refreshList()

	if session.UserID() == "" {
		m.currentScreen = screenUser
		return m
	}

	m.currentScreen = screenList
	m.list.userID = session.UserID()
	m.list.loading = true
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenList {
		return tea.Batch(m.list.spinner.Tick, m.cmdLoadFirst())
	}
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.session.ClearError()
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdDelete(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case pageLoadedMsg:
		m.list.loading = false
		m.refreshList()
		return m, m.handleError(msg.err)
	case entrySavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.currentScreen = screenList
		m.refreshList()
		return m, nil
	case entryDeletedMsg:
		m.pendingDelete = ""
		m.refreshList()
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.currentScreen = screenList
		return m, nil
	case entryFetchedMsg:
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.detail = detailModel{entry: msg.entry}
		m.currentScreen = screenDetail
		return m, nil
	case copiedMsg:
		m.detail.status = "Copied!"
		m.list.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.list.loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.list.table.SetHeight(max(msg.Height-12, 5))
		return m, nil
	}

	switch m.currentScreen {
	case screenUser:
		return m.updateUser(msg)
	case screenList:
		return m.updateList(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenDetail:
		return m.updateDetail(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenUser:
		body = m.user.View()
	case screenList:
		body = m.list.View()
	case screenForm:
		body = m.form.View()
	case screenDetail:
		body = m.detail.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

// handleError shows real failures in the overlay; refusals only flash in
// the status line because the session did not record them.
func (m *appModel) handleError(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	if isRefusal(err) {
		m.list.status = err.Error()
		return cmdClearStatus()
	}

	m.showError = true
	m.errorOverlay.message = humanizeError(err)
	return nil
}

func (m *appModel) refreshList() {
	m.list.userID = m.session.UserID()
	m.list.setEntries(m.session.View(), m.session.Sort(), m.session.HasMore())
}

func (m appModel) updateUser(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.session.UserID() != "" {
				m.currentScreen = screenList
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			userID := strings.TrimSpace(m.user.input.Value())
			if userID == "" {
				m.showError = true
				m.errorOverlay.message = "User is required"
				return m, nil
			}
			if err := m.session.SelectUser(userID); err != nil {
				return m, m.handleError(err)
			}
			m.currentScreen = screenList
			m.list.loading = true
			m.refreshList()
			return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadFirst())
		}
	}

	var cmd tea.Cmd
	m.user.input, cmd = m.user.input.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.newItem):
		m.form = newFormEntryModel(nil)
		m.currentScreen = screenForm
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.edit):
		entry, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.form = newFormEntryModel(&entry)
		m.currentScreen = screenForm
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		entry, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.askDelete(entry)
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		entry, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdGet(entry.ID)
	case key.Matches(keyMsg, keys.copy):
		entry, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(entry.Description)
	case key.Matches(keyMsg, keys.more):
		if m.list.loading {
			return m, nil
		}
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadMore())
	case key.Matches(keyMsg, keys.reload):
		if m.list.loading {
			return m, nil
		}
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadFirst())
	case key.Matches(keyMsg, keys.switchUser):
		m.user = newUserSelectModel(m.session.UserID())
		m.currentScreen = screenUser
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(keyMsg, keys.sortTitle):
		return m.toggleSort(sorting.ColumnTitle)
	case key.Matches(keyMsg, keys.sortDesc):
		return m.toggleSort(sorting.ColumnDescription)
	case key.Matches(keyMsg, keys.sortTime):
		return m.toggleSort(sorting.ColumnLastModified)
	}

	var cmd tea.Cmd
	m.list.table, cmd = m.list.table.Update(msg)
	return m, cmd
}

func (m appModel) toggleSort(column sorting.Column) (tea.Model, tea.Cmd) {
	m.session.ToggleSort(column)
	m.refreshList()
	return m, nil
}

func (m *appModel) askDelete(entry models.Entry) {
	m.pendingDelete = entry.ID
	m.confirm = confirmModel{message: entry.Title}
	m.showConfirm = true
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			m.form.submitting = true
			if m.form.editing {
				return m, m.cmdUpdate(m.form.id, m.form.title(), m.form.description())
			}
			return m, m.cmdCreate(m.form.title(), m.form.description())
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.edit):
		m.form = newFormEntryModel(&m.detail.entry)
		m.currentScreen = screenForm
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		m.askDelete(m.detail.entry)
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.entry.Description)
	}
	return m, nil
}

func (m appModel) cmdLoadFirst() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return pageLoadedMsg{err: session.LoadFirst(ctx)}
	}
}

func (m appModel) cmdLoadMore() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return pageLoadedMsg{err: session.LoadMore(ctx)}
	}
}

func (m appModel) cmdCreate(title, description string) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		_, err := session.Create(ctx, title, description)
		return entrySavedMsg{err: err}
	}
}

func (m appModel) cmdUpdate(id, title, description string) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		_, err := session.Update(ctx, id, title, description)
		return entrySavedMsg{err: err}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return entryDeletedMsg{err: session.Delete(ctx, id)}
	}
}

func (m appModel) cmdGet(id string) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		entry, err := session.Get(ctx, id)
		return entryFetchedMsg{entry: entry, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return entrySavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
