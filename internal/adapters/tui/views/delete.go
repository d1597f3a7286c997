package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"betternotes/internal/adapters/tui/styles"
	"betternotes/internal/application"
)

var DeleteKeys = struct {
	Confirm key.Binding
	Cancel  key.Binding
}{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "delete"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "keep"),
	),
}

// DeleteModel asks before deleting a section or a note. Deleting a
// section keeps its notes: they move to the unassigned section.
type DeleteModel struct {
	ViewState
	nb     *application.Notebook
	target *application.TreeNode
}

func NewDeleteModel(nb *application.Notebook) *DeleteModel {
	return &DeleteModel{nb: nb}
}

func (m *DeleteModel) SetTarget(node *application.TreeNode) {
	m.target = node
	m.ClearMessage()
}

func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DeleteKeys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }
		case key.Matches(msg, DeleteKeys.Confirm):
			return m, m.confirm()
		}
	}
	return m, nil
}

func (m *DeleteModel) confirm() tea.Cmd {
	node := m.target
	if node == nil {
		return failed(fmt.Errorf("nothing selected"))
	}

	var err error
	switch node.Kind {
	case application.NodeSection, application.NodeUnassigned:
		err = m.nb.DeleteSection(node.ID)
	case application.NodeNote:
		err = m.nb.DeleteNote(node.ID, node.SectionID)
	default:
		err = fmt.Errorf("%s cannot be deleted", node.Kind)
	}
	if err != nil {
		return failed(err)
	}
	focus := ""
	if node.Kind == application.NodeNote {
		focus = node.SectionID
	}
	return done(fmt.Sprintf("Deleted %s", node.Name), focus)
}

func (m *DeleteModel) View() string {
	var b strings.Builder

	title := "Delete"
	if m.target != nil {
		title += " " + nodeKindString(m.target.Kind)
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")

	if m.target != nil {
		b.WriteString("  " + m.target.Name)
		b.WriteString("\n\n")
		if m.target.Kind == application.NodeNote {
			b.WriteString(styles.ErrorMsg.Render("The note and its content will be lost."))
		} else if n := len(m.target.Children); n > 0 {
			b.WriteString(RenderMuted(fmt.Sprintf("Its %d notes will be moved to Unassigned notes.", n)))
		} else {
			b.WriteString(RenderMuted("The section is empty."))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(RenderHelpLine(DeleteKeys.Confirm, DeleteKeys.Cancel))

	return styles.App.Render(b.String())
}
