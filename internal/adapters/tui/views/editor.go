package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"betternotes/internal/adapters/tui/styles"
	"betternotes/internal/application"
)

// EditorKeyMap defines key bindings for the content editor
type EditorKeyMap struct {
	Close    key.Binding
	Copy     key.Binding
	External key.Binding
}

var EditorKeys = EditorKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "done"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy all"),
	),
	External: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "$EDITOR"),
	),
}

// EditorModel edits a note's content. Every change goes to the notebook
// right away; the write to the store is debounced by the notebook.
type EditorModel struct {
	ViewState
	nb     *application.Notebook
	noteID string
	name   string
	area   textarea.Model
}

// NewEditorModel creates a new content editor
func NewEditorModel(nb *application.Notebook) *EditorModel {
	area := textarea.New()
	area.Placeholder = "Write your note..."
	area.ShowLineNumbers = false
	area.CharLimit = 0

	return &EditorModel{
		nb:   nb,
		area: area,
	}
}

// Open loads a note into the editor
func (m *EditorModel) Open(noteID string) error {
	note, _, err := m.nb.Note(noteID)
	if err != nil {
		return err
	}

	m.noteID = note.ID
	m.name = note.Name
	m.ClearMessage()
	m.area.SetValue(note.Content)
	m.area.Focus()
	return nil
}

// NoteID is the note being edited
func (m *EditorModel) NoteID() string {
	return m.noteID
}

// Init initializes the editor
func (m *EditorModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the editor
func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, EditorKeys.Close):
			m.area.Blur()
			m.nb.FlushContent()
			return m, done("", m.noteID)

		case key.Matches(msg, EditorKeys.Copy):
			if err := clipboard.WriteAll(m.area.Value()); err != nil {
				m.SetMessage(fmt.Sprintf("copy failed: %v", err), true)
			} else {
				m.SetMessage("Copied to clipboard", false)
			}
			return m, nil

		case key.Matches(msg, EditorKeys.External):
			m.area.Blur()
			m.nb.FlushContent()
			id := m.noteID
			return m, func() tea.Msg { return ExternalEditMsg{NoteID: id} }
		}
	}

	before := m.area.Value()
	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)

	if after := m.area.Value(); after != before {
		if err := m.nb.EditNoteContent(m.noteID, after); err != nil {
			m.SetMessage(err.Error(), true)
		}
	}
	return m, cmd
}

// SetSize updates the view dimensions and resizes the text area
func (m *EditorModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.area.SetWidth(max(width-6, 20))
	m.area.SetHeight(max(height-10, 5))
}

// View renders the editor
func (m *EditorModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(m.name))
	b.WriteString("\n\n")

	b.WriteString(m.area.View())
	b.WriteString("\n\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderHelpLine(EditorKeys.Close, EditorKeys.Copy, EditorKeys.External))

	return styles.App.Render(b.String())
}
