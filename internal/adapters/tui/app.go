package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"betternotes/internal/adapters/tui/views"
	"betternotes/internal/application"
	"betternotes/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewName
	ViewPicker
	ViewDelete
	ViewEditor
	ViewIcon
	ViewSearch
	ViewHelp
)

// RedrawMsg asks the browser to rebuild its tree from the notebook
type RedrawMsg struct{}

// Redrawer returns a ports.Redrawer that posts RedrawMsg to a running
// program. send is usually (*tea.Program).Send, called on its own goroutine
// so a redraw requested from inside Update cannot block.
func Redrawer(send func(tea.Msg)) ports.Redrawer {
	return ports.RedrawFunc(func() {
		go send(RedrawMsg{})
	})
}

// App is the main TUI application model
type App struct {
	nb      *application.Notebook
	catalog views.IconCatalog
	editor  ports.ContentEditor
	logger  *zap.Logger

	state   ViewState
	browser *views.BrowserModel
	name    *views.NameModel
	picker  *views.PickerModel
	remove  *views.DeleteModel
	content *views.EditorModel
	icon    *views.IconModel
	search  *views.SearchModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. catalog may be nil to disable icons,
// ed may be nil to disable external editing.
func NewApp(nb *application.Notebook, catalog views.IconCatalog, ed ports.ContentEditor, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		nb:      nb,
		catalog: catalog,
		editor:  ed,
		logger:  logger,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(nb, catalog),
		name:    views.NewNameModel(nb),
		picker:  views.NewPickerModel(nb),
		remove:  views.NewDeleteModel(nb),
		content: views.NewEditorModel(nb),
		icon:    views.NewIconModel(nb, catalog),
		search:  views.NewSearchModel(nb),
		help:    views.NewHelpModel(),
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Browser returns the tree view
func (a *App) Browser() *views.BrowserModel {
	return a.browser
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.name.SetSize(msg.Width, msg.Height)
		a.picker.SetSize(msg.Width, msg.Height)
		a.remove.SetSize(msg.Width, msg.Height)
		a.content.SetSize(msg.Width, msg.Height)
		a.icon.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case RedrawMsg:
		return a, a.browser.Reload()

	// View switching messages
	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()

	case views.DoneMsg:
		a.state = ViewBrowser
		if msg.Err != nil {
			a.logger.Warn("operation failed", zap.Error(msg.Err))
			a.browser.SetMessage(msg.Err.Error(), true)
		} else if msg.Message != "" {
			a.browser.SetMessage(msg.Message, false)
		}
		if msg.Focus != "" {
			return a, a.browser.Refresh(msg.Focus)
		}
		return a, a.browser.Reload()

	case views.SwitchToNameMsg:
		a.state = ViewName
		a.name.SetTarget(msg.Mode, msg.Target)
		return a, tea.Batch(a.browser.Reload(), a.name.Init())

	case views.SwitchToPickerMsg:
		a.state = ViewPicker
		a.picker.Open(msg.Purpose, msg.Note)
		return a, nil

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.remove.SetTarget(msg.Target)
		return a, nil

	case views.SwitchToEditorMsg:
		if err := a.content.Open(msg.NoteID); err != nil {
			a.browser.SetMessage(err.Error(), true)
			return a, nil
		}
		a.state = ViewEditor
		return a, a.content.Init()

	case views.SwitchToIconMsg:
		if a.catalog == nil {
			a.browser.SetMessage("no icon catalog loaded", true)
			return a, nil
		}
		a.state = ViewIcon
		a.icon.SetTarget(msg.Target)
		return a, a.icon.Init()

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		a.search.Reset()
		return a, a.search.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.ExternalEditMsg:
		a.state = ViewBrowser
		return a, a.openEditor(msg.NoteID)

	case editorFinishedMsg:
		return a, a.finishEdit(msg)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewName:
		_, cmd = a.name.Update(msg)
	case ViewPicker:
		_, cmd = a.picker.Update(msg)
	case ViewDelete:
		_, cmd = a.remove.Update(msg)
	case ViewEditor:
		_, cmd = a.content.Update(msg)
	case ViewIcon:
		_, cmd = a.icon.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct {
	edit *ports.ExternalEdit
	err  error
}

func (a *App) openEditor(noteID string) tea.Cmd {
	if a.editor == nil {
		a.browser.SetMessage("external editing is not available", true)
		return nil
	}

	note, _, err := a.nb.Note(noteID)
	if err != nil {
		a.browser.SetMessage(err.Error(), true)
		return nil
	}

	edit, err := a.editor.Begin(note.ID, note.Content)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(edit.Cmd, func(err error) tea.Msg {
		return editorFinishedMsg{edit: edit, err: err}
	})
}

func (a *App) finishEdit(msg editorFinishedMsg) tea.Cmd {
	if msg.edit == nil {
		a.browser.SetMessage(fmt.Sprintf("editor: %v", msg.err), true)
		return nil
	}

	content, err := a.editor.Finish(msg.edit)
	if msg.err != nil {
		a.browser.SetMessage(fmt.Sprintf("editor exited: %v", msg.err), true)
		return nil
	}
	if err != nil {
		a.browser.SetMessage(err.Error(), true)
		return nil
	}

	if err := a.nb.SetNoteContent(msg.edit.NoteID, content); err != nil {
		a.browser.SetMessage(err.Error(), true)
		return nil
	}
	a.browser.SetMessage("Saved note content", false)
	return a.browser.Refresh(msg.edit.NoteID)
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewName:
		return a.name.View()
	case ViewPicker:
		return a.picker.View()
	case ViewDelete:
		return a.remove.View()
	case ViewEditor:
		return a.content.View()
	case ViewIcon:
		return a.icon.View()
	case ViewSearch:
		return a.search.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
