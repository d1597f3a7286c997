package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"betternotes/internal/adapters/tui/styles"
	"betternotes/internal/application"
)

// NameMode indicates why the name form is shown
type NameMode int

const (
	// NameNew names a section or note that was just created with the
	// default name. Cancelling keeps the default.
	NameNew NameMode = iota
	// NameRename renames an existing section or note
	NameRename
)

// NameModel is the single-field form used to name and rename entries
type NameModel struct {
	ViewState
	nb     *application.Notebook
	form   *NameInput
	mode   NameMode
	target *application.TreeNode
}

// NewNameModel creates a new name form
func NewNameModel(nb *application.Notebook) *NameModel {
	return &NameModel{
		nb:   nb,
		form: NewNameInput("Name:", "Name", application.MaxNameLength),
	}
}

// SetTarget prepares the form for node
func (m *NameModel) SetTarget(mode NameMode, node *application.TreeNode) {
	m.mode = mode
	m.target = node
	m.ClearMessage()
	m.form.Reset()
	if node != nil {
		m.form.SetValue(node.Name)
	}
}

// Init initializes the name form
func (m *NameModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the name form
func (m *NameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, NameInputKeys.Cancel):
			return m, m.cancel()
		case key.Matches(msg, NameInputKeys.Submit):
			return m, m.submit()
		}
	}

	return m, m.form.Update(msg)
}

func (m *NameModel) cancel() tea.Cmd {
	if m.target == nil {
		return func() tea.Msg { return SwitchToBrowserMsg{} }
	}
	if m.mode == NameNew {
		_ = m.nb.AcknowledgeNew(m.target.ID)
	}
	return done("", m.target.ID)
}

func (m *NameModel) submit() tea.Cmd {
	if m.target == nil {
		return failed(fmt.Errorf("nothing to name"))
	}

	name := application.TruncateName(m.form.Value())
	if name == "" {
		if m.mode == NameNew {
			return m.cancel()
		}
		m.SetMessage("name is required", true)
		return nil
	}

	node := m.target
	var err error
	switch node.Kind {
	case application.NodeSection, application.NodeUnassigned:
		err = m.nb.RenameSection(name, node.ID)
	case application.NodeNote:
		err = m.nb.RenameNote(node.ID, name)
	}
	if m.mode == NameNew {
		_ = m.nb.AcknowledgeNew(node.ID)
	}
	if err != nil {
		return failed(err)
	}

	if m.mode == NameNew {
		return done(fmt.Sprintf("Created %s", name), node.ID)
	}
	return done(fmt.Sprintf("Renamed to %s", name), node.ID)
}

// View renders the name form
func (m *NameModel) View() string {
	var b strings.Builder

	title := "Rename"
	if m.mode == NameNew {
		title = "Name"
	}
	if m.target != nil {
		title += " " + nodeKindString(m.target.Kind)
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.form.View())
	b.WriteString("\n\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n\n")
	}

	b.WriteString(m.form.Help())

	return styles.App.Render(b.String())
}
