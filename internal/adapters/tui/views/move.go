package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"betternotes/internal/adapters/tui/styles"
	"betternotes/internal/application"
)

// PickPurpose is what the chosen section is used for
type PickPurpose int

const (
	// PickMove moves a note to the end of the chosen section
	PickMove PickPurpose = iota
	// PickAddNote creates a note in the chosen section
	PickAddNote
)

// PickerKeyMap defines key bindings for the section picker
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

var PickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "choose"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "cancel"),
	),
}

const pickerPageSize = 12

// PickerModel lets the user choose a section
type PickerModel struct {
	ViewState
	nb        *application.Notebook
	purpose   PickPurpose
	note      *application.TreeNode
	sections  []*application.Section
	paginator *Paginator
}

// NewPickerModel creates a new section picker
func NewPickerModel(nb *application.Notebook) *PickerModel {
	return &PickerModel{
		nb:        nb,
		paginator: NewPaginator(pickerPageSize),
	}
}

// Open lists the current sections. note is the note to move, nil when adding.
func (m *PickerModel) Open(purpose PickPurpose, note *application.TreeNode) {
	m.purpose = purpose
	m.note = note
	m.ClearMessage()

	snap := m.nb.Snapshot()
	m.sections = append([]*application.Section{}, snap.Sections...)
	if snap.Unassigned != nil {
		m.sections = append(m.sections, snap.Unassigned)
	}

	m.paginator.Reset()
	m.paginator.SetTotal(len(m.sections))
	if note != nil {
		for i, s := range m.sections {
			if s.ID == note.SectionID {
				m.paginator.SetCursor(i)
				break
			}
		}
	}
}

// Init initializes the picker
func (m *PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PickerKeys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }
		case m.paginator.HandleKey(msg, PickerKeys.Up, PickerKeys.Down):
		case key.Matches(msg, PickerKeys.Submit):
			return m, m.choose()
		}
	}

	return m, nil
}

func (m *PickerModel) choose() tea.Cmd {
	cursor := m.paginator.Cursor()
	if cursor < 0 || cursor >= len(m.sections) {
		return nil
	}
	section := m.sections[cursor]

	switch m.purpose {
	case PickAddNote:
		note, err := m.nb.AddNote(section.ID, "")
		if err != nil {
			return failed(err)
		}
		node := &application.TreeNode{Kind: application.NodeNote, ID: note.ID, SectionID: section.ID, Name: note.Name}
		return func() tea.Msg { return SwitchToNameMsg{Mode: NameNew, Target: node} }

	default:
		if m.note == nil {
			return failed(fmt.Errorf("no note selected"))
		}
		if m.note.SectionID == section.ID {
			return done("", m.note.ID)
		}
		if err := m.nb.MoveNote(m.note.ID, m.note.SectionID, section.ID, len(section.Notes)); err != nil {
			return failed(err)
		}
		return done(fmt.Sprintf("Moved %s to %s", m.note.Name, section.Name), m.note.ID)
	}
}

// View renders the picker
func (m *PickerModel) View() string {
	var b strings.Builder

	title := "Add Note To"
	if m.purpose == PickMove {
		title = "Move Note"
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")

	if m.purpose == PickMove && m.note != nil {
		b.WriteString(styles.InputLabel.Render("Note:"))
		b.WriteString("\n")
		b.WriteString("  " + m.note.Name)
		b.WriteString("\n\n")
	}

	b.WriteString(styles.Subtitle.Render("Choose a section"))
	b.WriteString("\n\n")

	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		s := m.sections[i]
		text := fmt.Sprintf("%s (%d)", s.Name, len(s.Notes))
		base := styles.NodeSection
		if s.IsUnassignedNotesSection {
			base = styles.NodeUnassigned
		}
		b.WriteString(RenderRow(text, i == m.paginator.Cursor(), base) + "\n")
	}
	if footer := m.paginator.Footer(); footer != "" {
		b.WriteString(footer + "\n")
	}
	b.WriteString("\n")

	b.WriteString(RenderHelpLine(PickerKeys.Up, PickerKeys.Down, PickerKeys.Submit, PickerKeys.Cancel))

	return styles.App.Render(b.String())
}
