package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-web/internal/app"
	"github.com/MKhiriev/go-pass-web/internal/service"
	"github.com/MKhiriev/go-pass-web/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenLogin screen = iota
	screenList
	screenDetail
	screenForm
	screenConfirmDelete
	screenPassword
)

const (
	opSave           = "save"
	opDelete         = "delete"
	opChangePassword = "change-password"
	opLogout         = "logout"
	opRefresh        = "refresh"
	opDismiss        = "dismiss"
)

const statusTTL = 3 * time.Second

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// rootModel routes messages to the active screen. Session calls that emit
// events run inside commands: the subscriber sends into this loop, so
// calling them from Update would block it.
type rootModel struct {
	ctx       context.Context
	session   service.SessionService
	buildInfo models.BuildInfo

	screen        screen
	showBuildInfo bool
	view          models.SessionView
	spinner       spinner.Model

	login    loginModel
	list     listModel
	detail   detailModel
	form     entryFormModel
	password passwordModel
	confirm  confirmModel

	// userLogout is set while a logout requested from the UI is in flight,
	// any other logout is the inactivity timeout.
	userLogout bool
}

func newRootModel(ctx context.Context, session service.SessionService, buildInfo models.BuildInfo) rootModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return rootModel{
		ctx:       ctx,
		session:   session,
		buildInfo: buildInfo,
		screen:    screenLogin,
		spinner:   s,
		login:     newLoginModel(ctx, session),
		list:      newListModel(),
	}
}

func (r rootModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, r.spinner.Tick)
}

func (r rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return r, tea.Quit
		}
		if r.screen != screenLogin {
			r.session.Touch()
		}
		if key.Matches(msg, keys.buildInfo) {
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		}
		if r.showBuildInfo {
			if key.Matches(msg, keys.esc) {
				r.showBuildInfo = false
			}
			return r, nil
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd
	case sessionEventMsg:
		return r.onSessionEvent(msg.event)
	case loginDoneMsg:
		if msg.err == nil {
			r.screen = screenList
			r.view = r.session.View()
			r.list = r.list.setEntries(r.session.Filter(r.list.filter.Value()))
			r.login = r.login.reset("")
			return r, nil
		}
		var cmd tea.Cmd
		r.login, cmd = r.login.Update(msg)
		return r, cmd
	case opDoneMsg:
		return r.onOpDone(msg)
	case copiedMsg:
		r.detail.status = "Copied " + msg.what + " to clipboard."
		if msg.err != nil {
			r.detail.status = "Clipboard unavailable: " + msg.err.Error()
		}
		return r, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case clearStatusMsg:
		r.detail.status = ""
		return r, nil
	}

	switch r.screen {
	case screenLogin:
		var cmd tea.Cmd
		r.login, cmd = r.login.Update(msg)
		return r, cmd
	case screenList:
		return r.updateList(msg)
	case screenDetail:
		return r.updateDetail(msg)
	case screenForm:
		if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keys.esc) {
			r.screen = screenList
			return r, nil
		}
		var cmd tea.Cmd
		r.form, cmd = r.form.Update(msg)
		return r, cmd
	case screenConfirmDelete:
		return r.updateConfirm(msg)
	case screenPassword:
		if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keys.esc) {
			r.screen = screenList
			return r, nil
		}
		var cmd tea.Cmd
		r.password, cmd = r.password.Update(msg)
		return r, cmd
	}

	return r, nil
}

func (r rootModel) onSessionEvent(event models.SessionEvent) (tea.Model, tea.Cmd) {
	r.view = event.View

	if event.Kind == models.EventLoggedOut {
		notice := app.MsgLoggedOutInactive
		if r.userLogout {
			notice = ""
		}
		r.userLogout = false
		r.screen = screenLogin
		r.login = r.login.reset(notice)
		r.list = newListModel()
		return r, nil
	}

	r.list = r.list.setEntries(r.session.Filter(r.list.filter.Value()))
	if r.screen == screenDetail {
		if i := indexOfEntry(r.list.entries, r.detail.entry.ID); i >= 0 {
			r.detail.entry = r.list.entries[i]
		}
	}
	return r, nil
}

func (r rootModel) onOpDone(msg opDoneMsg) (tea.Model, tea.Cmd) {
	switch msg.op {
	case opSave:
		if msg.err == nil {
			r.screen = screenList
			r.list = r.list.setEntries(r.session.Filter(r.list.filter.Value()))
			return r, nil
		}
		var cmd tea.Cmd
		r.form, cmd = r.form.Update(msg)
		return r, cmd
	case opChangePassword:
		if msg.err == nil {
			r.screen = screenList
			return r, nil
		}
		var cmd tea.Cmd
		r.password, cmd = r.password.Update(msg)
		return r, cmd
	case opDelete:
		r.screen = screenList
		r.list = r.list.setEntries(r.session.Filter(r.list.filter.Value()))
	}
	return r, nil
}

func (r rootModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)

	if r.list.filtering() {
		if ok && (key.Matches(k, keys.esc) || key.Matches(k, keys.enter)) {
			r.list.filter.Blur()
			return r, nil
		}
		var cmd tea.Cmd
		r.list, cmd = r.list.updateFilter(msg)
		r.list = r.list.setEntries(r.session.Filter(r.list.filter.Value()))
		return r, cmd
	}

	if !ok {
		return r, nil
	}

	switch {
	case key.Matches(k, keys.quit):
		return r, tea.Quit
	case key.Matches(k, keys.filter):
		cmd := r.list.filter.Focus()
		return r, cmd
	case key.Matches(k, keys.up):
		r.list = r.list.moveUp()
	case key.Matches(k, keys.down):
		r.list = r.list.moveDown()
	case key.Matches(k, keys.enter):
		if e, found := r.list.current(); found {
			r.detail = detailModel{entry: e}
			r.screen = screenDetail
		}
	case key.Matches(k, keys.newItem):
		r.form = newEntryFormModel(r.ctx, r.session, nil)
		r.screen = screenForm
	case key.Matches(k, keys.edit):
		if e, found := r.list.current(); found {
			r.form = newEntryFormModel(r.ctx, r.session, &e)
			r.screen = screenForm
		}
	case key.Matches(k, keys.delete):
		if e, found := r.list.current(); found {
			r.confirm = confirmModel{id: e.ID}
			r.screen = screenConfirmDelete
		}
	case key.Matches(k, keys.copy):
		if e, found := r.list.current(); found {
			return r, cmdCopy("password", e.Password)
		}
	case key.Matches(k, keys.copyUser):
		if e, found := r.list.current(); found {
			return r, cmdCopy("user name", e.Username)
		}
	case key.Matches(k, keys.refresh):
		return r, r.cmdSession(opRefresh, func() error { return r.session.Refresh(r.ctx) })
	case key.Matches(k, keys.dismiss):
		if len(r.view.Errors) > 0 {
			id := r.view.Errors[0].ID
			return r, r.cmdSession(opDismiss, func() error { r.session.DismissError(id); return nil })
		}
	case key.Matches(k, keys.master):
		r.password = newPasswordModel(r.ctx, r.session)
		r.screen = screenPassword
	case key.Matches(k, keys.logout):
		r.userLogout = true
		return r, r.cmdSession(opLogout, func() error { r.session.Logout(); return nil })
	}

	return r, nil
}

func (r rootModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch {
	case key.Matches(k, keys.esc):
		r.screen = screenList
	case key.Matches(k, keys.reveal):
		r.detail.revealed = !r.detail.revealed
	case key.Matches(k, keys.copy):
		return r, cmdCopy("password", r.detail.entry.Password)
	case key.Matches(k, keys.copyUser):
		return r, cmdCopy("user name", r.detail.entry.Username)
	case key.Matches(k, keys.edit):
		e := r.detail.entry
		r.form = newEntryFormModel(r.ctx, r.session, &e)
		r.screen = screenForm
	case key.Matches(k, keys.delete):
		r.confirm = confirmModel{id: r.detail.entry.ID}
		r.screen = screenConfirmDelete
	}
	return r, nil
}

func (r rootModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch {
	case key.Matches(k, keys.yes):
		id := r.confirm.id
		return r, r.cmdSession(opDelete, func() error { return r.session.DeleteEntry(r.ctx, id) })
	case key.Matches(k, keys.no), key.Matches(k, keys.esc):
		r.screen = screenList
	}
	return r, nil
}

func (r rootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}

	progress := ""
	if r.view.Progress != "" {
		progress = r.spinner.View() + " " + r.view.Progress
	}

	switch r.screen {
	case screenList:
		return r.list.View(r.view, progress)
	case screenDetail:
		return r.detail.View()
	case screenForm:
		return r.form.View()
	case screenConfirmDelete:
		return r.list.View(r.view, progress) + "\n\n" + r.confirm.View()
	case screenPassword:
		return r.password.View()
	default:
		return r.login.View()
	}
}

func (r rootModel) cmdSession(op string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn()}
	}
}

func cmdCopy(what, value string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{what: what, err: copyToClipboard(value)}
	}
}

func indexOfEntry(entries []models.Entry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
