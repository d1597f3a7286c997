package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"betternotes/internal/adapters/icons"
	"betternotes/internal/adapters/tui/styles"
	"betternotes/internal/application"
	"betternotes/internal/ports"
)

// IconCatalog resolves icons and lists what can be picked
type IconCatalog interface {
	ports.IconResolver
	Sprites() []icons.Entry
	SearchItems(query string) []icons.Entry
}

// IconKeyMap defines key bindings for the icon picker
type IconKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Tab    key.Binding
	Select key.Binding
	Remove key.Binding
	Cancel key.Binding
}

var IconKeys = IconKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "items/sprites"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "set"),
	),
	Remove: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "remove icon"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

const iconPageSize = 10

// IconModel picks an item or sprite icon for a section or note
type IconModel struct {
	ViewState
	nb        *application.Notebook
	catalog   IconCatalog
	target    *application.TreeNode
	sprites   bool
	input     textinput.Model
	entries   []icons.Entry
	paginator *Paginator
}

// NewIconModel creates a new icon picker
func NewIconModel(nb *application.Notebook, catalog IconCatalog) *IconModel {
	input := textinput.New()
	input.Placeholder = "Filter by name or type an id"
	input.CharLimit = 40

	return &IconModel{
		nb:        nb,
		catalog:   catalog,
		input:     input,
		paginator: NewPaginator(iconPageSize),
	}
}

// SetTarget resets the picker for node
func (m *IconModel) SetTarget(node *application.TreeNode) {
	m.target = node
	m.sprites = false
	m.ClearMessage()
	m.input.SetValue("")
	m.input.Focus()
	m.filter()
}

// Init initializes the icon picker
func (m *IconModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the icon picker
func (m *IconModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, IconKeys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }
		case m.paginator.HandleKey(msg, IconKeys.Up, IconKeys.Down):
			return m, nil
		case key.Matches(msg, IconKeys.Tab):
			m.sprites = !m.sprites
			m.filter()
			return m, nil
		case key.Matches(msg, IconKeys.Remove):
			return m, m.remove()
		case key.Matches(msg, IconKeys.Select):
			return m, m.apply()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filter()
	return m, cmd
}

func (m *IconModel) filter() {
	query := strings.TrimSpace(m.input.Value())
	if m.sprites {
		m.entries = nil
		for _, e := range m.catalog.Sprites() {
			if query == "" || strings.Contains(strings.ToLower(e.Name), strings.ToLower(query)) {
				m.entries = append(m.entries, e)
			}
		}
	} else {
		m.entries = m.catalog.SearchItems(query)
	}
	m.paginator.Reset()
	m.paginator.SetTotal(len(m.entries))
}

// chosenID is the highlighted entry, or the typed number when nothing matches
func (m *IconModel) chosenID() (int, bool) {
	if c := m.paginator.Cursor(); c >= 0 && c < len(m.entries) {
		return m.entries[c].ID, true
	}
	id, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

func (m *IconModel) apply() tea.Cmd {
	if m.target == nil {
		return failed(fmt.Errorf("no target selected"))
	}
	id, ok := m.chosenID()
	if !ok {
		m.SetMessage("pick an icon or type its id", true)
		return nil
	}

	node := m.target
	var err error
	switch {
	case node.Kind == application.NodeNote && m.sprites:
		err = m.nb.SetNoteSpriteIcon(node.ID, id)
	case node.Kind == application.NodeNote:
		err = m.nb.SetNoteItemIcon(node.ID, id)
	case m.sprites:
		err = m.nb.SetSectionSpriteIcon(node.ID, id)
	default:
		err = m.nb.SetSectionItemIcon(node.ID, id)
	}
	if err != nil {
		return failed(err)
	}

	kind := "item"
	if m.sprites {
		kind = "sprite"
	}
	return done(fmt.Sprintf("Set %s icon %d on %s", kind, id, node.Name), node.ID)
}

func (m *IconModel) remove() tea.Cmd {
	if m.target == nil {
		return failed(fmt.Errorf("no target selected"))
	}

	var err error
	if m.target.Kind == application.NodeNote {
		err = m.nb.RemoveNoteIcon(m.target.ID, false)
	} else {
		err = m.nb.RemoveSectionIcon(m.target.ID, false)
	}
	if err != nil {
		return failed(err)
	}
	return done(fmt.Sprintf("Removed icon from %s", m.target.Name), m.target.ID)
}

// View renders the icon picker
func (m *IconModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Set Icon"))
	b.WriteString("\n\n")

	b.WriteString(RenderTargetInfo(m.target, "Icon for"))
	b.WriteString("\n\n")

	items, sprites := "Items", "Sprites"
	if m.sprites {
		sprites = styles.NodeSelected.Render(sprites)
	} else {
		items = styles.NodeSelected.Render(items)
	}
	b.WriteString(items + "  " + sprites)
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		if _, ok := m.chosenID(); ok {
			b.WriteString(RenderMuted("No match, enter uses the typed id"))
		} else {
			b.WriteString(RenderMuted("No match"))
		}
		b.WriteString("\n")
	}

	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		e := m.entries[i]
		text := fmt.Sprintf("%s %-24s %d", e.Glyph, e.Name, e.ID)
		b.WriteString(RenderRow(text, i == m.paginator.Cursor(), lipgloss.NewStyle()) + "\n")
	}
	if footer := m.paginator.Footer(); footer != "" {
		b.WriteString(footer + "\n")
	}
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderHelpLine(IconKeys.Up, IconKeys.Down, IconKeys.Tab, IconKeys.Select, IconKeys.Remove, IconKeys.Cancel))

	return styles.App.Render(b.String())
}
