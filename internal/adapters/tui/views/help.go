package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"betternotes/internal/adapters/tui/styles"
)

var HelpKeys = struct {
	Close key.Binding
}{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// helpEntry is one row of the help screen; note extends the binding's
// short description.
type helpEntry struct {
	binding key.Binding
	note    string
}

type helpGroup struct {
	title   string
	entries []helpEntry
}

// helpGroups is built from the live key maps so the screen never drifts
// from the bindings.
func helpGroups() []helpGroup {
	return []helpGroup{
		{"Navigation", []helpEntry{
			{BrowserKeys.Up, ""},
			{BrowserKeys.Down, ""},
			{BrowserKeys.Left, "or jump to the section"},
			{BrowserKeys.Right, "a section, or show a note's content"},
			{BrowserKeys.Enter, "toggles sections, edits notes"},
		}},
		{"Sections and notes", []helpEntry{
			{BrowserKeys.AddSection, ""},
			{BrowserKeys.AddNote, "asks for a section when there are any"},
			{BrowserKeys.Rename, ""},
			{BrowserKeys.Delete, "a section's notes move to Unassigned"},
			{BrowserKeys.Move, "to the end of another section"},
			{BrowserKeys.Icon, "item or skill sprite"},
			{BrowserKeys.Reorder, "then " + ReorderKeys.Up.Help().Key + " / " + ReorderKeys.Down.Help().Key},
		}},
		{"Content", []helpEntry{
			{BrowserKeys.Edit, "saved as you type"},
			{BrowserKeys.External, ""},
			{BrowserKeys.Copy, ""},
			{BrowserKeys.Search, "by name and content"},
		}},
		{"General", []helpEntry{
			{BrowserKeys.Help, ""},
			{BrowserKeys.Quit, ""},
		}},
	}
}

// HelpModel lists every browser key
type HelpModel struct {
	ViewState
}

func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

func (m *HelpModel) Init() tea.Cmd {
	return nil
}

func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }
		}
	}
	return m, nil
}

func (m *HelpModel) View() string {
	groups := helpGroups()

	width := 0
	for _, g := range groups {
		for _, e := range g.entries {
			width = max(width, lipgloss.Width(e.binding.Help().Key))
		}
	}
	keyCol := styles.HelpKey.Width(width + 3)

	var b strings.Builder
	b.WriteString(styles.Title.Render("BetterNotes Help"))
	b.WriteString("\n\n")

	for _, g := range groups {
		b.WriteString(styles.InputLabel.Render(g.title))
		b.WriteString("\n")
		for _, e := range g.entries {
			help := e.binding.Help()
			desc := help.Desc
			if e.note != "" {
				desc += ", " + e.note
			}
			b.WriteString("  " + keyCol.Render(help.Key) + styles.HelpDesc.Render(desc) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(RenderHelpLine(HelpKeys.Close))

	return styles.App.Render(b.String())
}
