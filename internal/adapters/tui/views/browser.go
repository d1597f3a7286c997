package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"betternotes/internal/adapters/tui/styles"
	"betternotes/internal/application"
	"betternotes/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Enter      key.Binding
	AddSection key.Binding
	AddNote    key.Binding
	Rename     key.Binding
	Delete     key.Binding
	Move       key.Binding
	Icon       key.Binding
	Edit       key.Binding
	External   key.Binding
	Copy       key.Binding
	Reorder    key.Binding
	Search     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle/edit"),
	),
	AddSection: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add section"),
	),
	AddNote: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "add note"),
	),
	Rename: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Move: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "move note"),
	),
	Icon: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "icon"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	External: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "edit in $EDITOR"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy content"),
	),
	Reorder: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "reorder"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ReorderKeyMap defines key bindings while reordering
type ReorderKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Done key.Binding
}

var ReorderKeys = ReorderKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	Done: key.NewBinding(
		key.WithKeys("o", "esc", "enter"),
		key.WithHelp("o/esc", "done"),
	),
}

// ReorderMode is what the browser is reordering, if anything
type ReorderMode int

const (
	ReorderOff ReorderMode = iota
	ReorderSections
	ReorderNotes
)

const previewLines = 3

// BrowserModel is the model for the notebook tree view
type BrowserModel struct {
	ViewState
	nb        *application.Notebook
	resolver  ports.IconResolver
	root      *application.TreeNode
	flatNodes []*application.TreeNode
	notes     map[string]*application.Note
	cursor    int
	reorder   ReorderMode

	glyphs    map[application.Icon]string
	resolving map[application.Icon]bool
}

// NewBrowserModel creates a new browser model. resolver may be nil.
func NewBrowserModel(nb *application.Notebook, resolver ports.IconResolver) *BrowserModel {
	return &BrowserModel{
		nb:        nb,
		resolver:  resolver,
		notes:     make(map[string]*application.Note),
		glyphs:    make(map[application.Icon]string),
		resolving: make(map[application.Icon]bool),
	}
}

// Init loads the tree
func (m *BrowserModel) Init() tea.Cmd {
	return m.Reload()
}

type iconResolvedMsg struct {
	icon  application.Icon
	glyph string
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case iconResolvedMsg:
		m.glyphs[msg.icon] = msg.glyph
		delete(m.resolving, msg.icon)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		if m.reorder != ReorderOff {
			return m, m.updateReorder(msg)
		}
		return m, m.updateBrowse(msg)
	}

	return m, nil
}

func (m *BrowserModel) updateBrowse(msg tea.KeyMsg) tea.Cmd {
	node := m.SelectedNode()

	switch {
	case key.Matches(msg, BrowserKeys.Quit):
		return tea.Quit

	case key.Matches(msg, BrowserKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, BrowserKeys.Down):
		if m.cursor < len(m.flatNodes)-1 {
			m.cursor++
		}

	case key.Matches(msg, BrowserKeys.Left):
		if node == nil {
			return nil
		}
		if node.IsExpanded {
			return m.setExpanded(node, false)
		}
		if node.Kind == application.NodeNote {
			m.Focus(node.SectionID)
		}

	case key.Matches(msg, BrowserKeys.Right):
		if node != nil && !node.IsExpanded {
			return m.setExpanded(node, true)
		}

	case key.Matches(msg, BrowserKeys.Enter):
		if node == nil {
			return nil
		}
		if node.Kind == application.NodeNote {
			return switchTo(SwitchToEditorMsg{NoteID: node.ID})
		}
		return m.setExpanded(node, !node.IsExpanded)

	case key.Matches(msg, BrowserKeys.AddSection):
		section, err := m.nb.AddSection("")
		if err != nil {
			m.SetMessage(err.Error(), true)
			return nil
		}
		target := &application.TreeNode{Kind: application.NodeSection, ID: section.ID, SectionID: section.ID, Name: section.Name}
		return switchTo(SwitchToNameMsg{Mode: NameNew, Target: target})

	case key.Matches(msg, BrowserKeys.AddNote):
		return m.addNote()

	case key.Matches(msg, BrowserKeys.Rename):
		if node != nil {
			return switchTo(SwitchToNameMsg{Mode: NameRename, Target: node})
		}

	case key.Matches(msg, BrowserKeys.Delete):
		if node == nil {
			return nil
		}
		if node.Kind == application.NodeUnassigned {
			m.SetMessage(application.ErrProtectedSection.Error(), true)
			return nil
		}
		return switchTo(SwitchToDeleteMsg{Target: node})

	case key.Matches(msg, BrowserKeys.Move):
		if node != nil && node.Kind == application.NodeNote {
			return switchTo(SwitchToPickerMsg{Purpose: PickMove, Note: node})
		}

	case key.Matches(msg, BrowserKeys.Icon):
		if node != nil {
			return switchTo(SwitchToIconMsg{Target: node})
		}

	case key.Matches(msg, BrowserKeys.Edit):
		if node != nil && node.Kind == application.NodeNote {
			return switchTo(SwitchToEditorMsg{NoteID: node.ID})
		}

	case key.Matches(msg, BrowserKeys.External):
		if node != nil && node.Kind == application.NodeNote {
			return switchTo(ExternalEditMsg{NoteID: node.ID})
		}

	case key.Matches(msg, BrowserKeys.Copy):
		m.copyContent(node)

	case key.Matches(msg, BrowserKeys.Reorder):
		m.startReorder(node)

	case key.Matches(msg, BrowserKeys.Search):
		return switchTo(SwitchToSearchMsg{})

	case key.Matches(msg, BrowserKeys.Help):
		return switchTo(SwitchToHelpMsg{})
	}

	return nil
}

func switchTo(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// addNote goes straight to the unassigned section when there are no regular
// sections, otherwise it asks which section to use
func (m *BrowserModel) addNote() tea.Cmd {
	if len(m.nb.Snapshot().Sections) > 0 {
		return switchTo(SwitchToPickerMsg{Purpose: PickAddNote})
	}

	note, err := m.nb.AddNoteToUnassigned("")
	if err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	target := &application.TreeNode{Kind: application.NodeNote, ID: note.ID, SectionID: m.nb.UnassignedID(), Name: note.Name}
	return switchTo(SwitchToNameMsg{Mode: NameNew, Target: target})
}

func (m *BrowserModel) setExpanded(node *application.TreeNode, expanded bool) tea.Cmd {
	var err error
	if node.Kind == application.NodeNote {
		err = m.nb.SetNoteExpanded(node.ID, expanded)
	} else {
		err = m.nb.SetSectionExpanded(expanded, node.ID)
	}
	if err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	return m.Refresh(node.ID)
}

func (m *BrowserModel) copyContent(node *application.TreeNode) {
	if node == nil || node.Kind != application.NodeNote {
		return
	}
	note, ok := m.notes[node.ID]
	if !ok {
		return
	}
	if err := clipboard.WriteAll(note.Content); err != nil {
		m.SetMessage(fmt.Sprintf("copy failed: %v", err), true)
		return
	}
	m.SetMessage(fmt.Sprintf("Copied %s", note.Name), false)
}

func (m *BrowserModel) startReorder(node *application.TreeNode) {
	if node == nil {
		return
	}
	switch node.Kind {
	case application.NodeSection:
		m.reorder = ReorderSections
	case application.NodeNote:
		m.reorder = ReorderNotes
	default:
		m.SetMessage("Unassigned notes always stays last", true)
	}
}

// Reordering reports the current reorder mode
func (m *BrowserModel) Reordering() ReorderMode {
	return m.reorder
}

func (m *BrowserModel) updateReorder(msg tea.KeyMsg) tea.Cmd {
	node := m.SelectedNode()

	switch {
	case key.Matches(msg, ReorderKeys.Done):
		m.reorder = ReorderOff
		return nil
	case key.Matches(msg, ReorderKeys.Up):
		return m.shift(node, -1)
	case key.Matches(msg, ReorderKeys.Down):
		return m.shift(node, +1)
	}
	return nil
}

// shift moves the selected section or note one step. Each step is committed
// right away as a drop at the neighbouring position.
func (m *BrowserModel) shift(node *application.TreeNode, step int) tea.Cmd {
	if node == nil {
		return nil
	}

	var err error
	switch {
	case m.reorder == ReorderSections && node.Kind == application.NodeSection:
		err = m.shiftSection(node, step)
	case m.reorder == ReorderNotes && node.Kind == application.NodeNote:
		err = m.shiftNote(node, step)
	default:
		return nil
	}
	if err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	return m.Refresh(node.ID)
}

func (m *BrowserModel) shiftSection(node *application.TreeNode, step int) error {
	sections := m.nb.Snapshot().Sections
	idx := -1
	for i, s := range sections {
		if s.ID == node.ID {
			idx = i
		}
	}
	target := idx + step
	if idx < 0 || target < 0 || target >= len(sections) {
		return nil
	}

	// drop positions count the dragged section itself when moving down
	drop := target
	if step > 0 {
		drop = target + 1
	}
	return m.nb.DropSections([]int{idx}, drop)
}

func (m *BrowserModel) shiftNote(node *application.TreeNode, step int) error {
	snap := m.nb.Snapshot()
	containers := append([]*application.Section{}, snap.Sections...)
	if snap.Unassigned != nil {
		containers = append(containers, snap.Unassigned)
	}

	ci := -1
	for i, c := range containers {
		if c.ID == node.SectionID {
			ci = i
		}
	}
	if ci < 0 {
		return nil
	}
	from := containers[ci]
	idx := from.NoteIndex(node.ID)
	if idx < 0 {
		return nil
	}

	target := idx + step
	if target >= 0 && target < len(from.Notes) {
		drop := target
		if step > 0 {
			drop = target + 1
		}
		_, err := m.nb.DropNotes(from.ID, from.ID, []int{idx}, drop)
		return err
	}

	// past the edge: hop into the neighbouring section
	ni := ci + step
	if ni < 0 || ni >= len(containers) {
		return nil
	}
	to := containers[ni]
	drop := 0
	if step < 0 {
		drop = len(to.Notes)
	}
	if !to.IsMaximized {
		if err := m.nb.SetSectionExpanded(true, to.ID); err != nil {
			return err
		}
	}
	_, err := m.nb.DropNotes(from.ID, to.ID, []int{idx}, drop)
	return err
}

// SelectedNode returns the node under the cursor
func (m *BrowserModel) SelectedNode() *application.TreeNode {
	if m.cursor >= 0 && m.cursor < len(m.flatNodes) {
		return m.flatNodes[m.cursor]
	}
	return nil
}

// Focus moves the cursor to the node with id, if it is visible
func (m *BrowserModel) Focus(id string) bool {
	for i, n := range m.flatNodes {
		if n.ID == id {
			m.cursor = i
			return true
		}
	}
	return false
}

// Reload rebuilds the tree from the notebook, keeping the cursor on the
// same entry when it still exists
func (m *BrowserModel) Reload() tea.Cmd {
	focus := ""
	if node := m.SelectedNode(); node != nil {
		focus = node.ID
	}
	return m.Refresh(focus)
}

// Refresh rebuilds the tree and puts the cursor on focus. A note hidden in
// a collapsed section focuses its section instead.
func (m *BrowserModel) Refresh(focus string) tea.Cmd {
	snap := m.nb.Snapshot()
	m.root = snap.Tree()

	m.notes = make(map[string]*application.Note)
	for _, s := range snap.Sections {
		for _, n := range s.Notes {
			m.notes[n.ID] = n
		}
	}
	if snap.Unassigned != nil {
		for _, n := range snap.Unassigned.Notes {
			m.notes[n.ID] = n
		}
	}

	m.flatNodes = m.root.Flatten()
	// Skip root node in display
	if len(m.flatNodes) > 0 {
		m.flatNodes = m.flatNodes[1:]
	}

	if focus != "" && !m.Focus(focus) {
		if found := m.root.Find(focus); found != nil {
			m.Focus(found.SectionID)
		}
	}
	// Clamp cursor
	if m.cursor >= len(m.flatNodes) {
		m.cursor = len(m.flatNodes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	return m.resolveIcons()
}

func (m *BrowserModel) resolveIcons() tea.Cmd {
	if m.resolver == nil {
		return nil
	}

	var cmds []tea.Cmd
	for _, node := range m.flatNodes {
		icon := node.Icon
		if !icon.HasIcon() {
			continue
		}
		if _, known := m.glyphs[icon]; known || m.resolving[icon] {
			continue
		}
		m.resolving[icon] = true
		cmds = append(cmds, resolveIcon(m.resolver, icon))
	}
	return tea.Batch(cmds...)
}

// resolveIcon waits for the resolver callback on the command goroutine
func resolveIcon(resolver ports.IconResolver, icon application.Icon) tea.Cmd {
	return func() tea.Msg {
		ch := make(chan iconResolvedMsg, 1)
		resolver.Resolve(icon, func(img ports.IconImage, ok bool) {
			msg := iconResolvedMsg{icon: icon}
			if ok {
				msg.glyph = img.Glyph
			}
			ch <- msg
		})
		return <-ch
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	if m.root == nil {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("BetterNotes"))
	b.WriteString("\n")
	switch m.reorder {
	case ReorderSections:
		b.WriteString(styles.StatusKey.Render("REORDER") + styles.Subtitle.Render("moving sections"))
	case ReorderNotes:
		b.WriteString(styles.StatusKey.Render("REORDER") + styles.Subtitle.Render("moving notes"))
	default:
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d sections, %d notes", len(m.root.Children)-1, len(m.notes))))
	}
	b.WriteString("\n\n")

	for i, node := range m.flatNodes {
		b.WriteString(m.renderNode(node, i == m.cursor))
		b.WriteString("\n")
		if node.Kind == application.NodeNote && node.IsExpanded {
			b.WriteString(m.renderPreview(node))
		}
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n")
	if m.reorder != ReorderOff {
		b.WriteString(RenderHelpLine(ReorderKeys.Up, ReorderKeys.Down, ReorderKeys.Done))
	} else {
		b.WriteString(RenderHelpLine(
			BrowserKeys.Enter, BrowserKeys.AddSection, BrowserKeys.AddNote,
			BrowserKeys.Reorder, BrowserKeys.Search, BrowserKeys.Help, BrowserKeys.Quit,
		))
	}

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderNode(node *application.TreeNode, selected bool) string {
	indent := strings.Repeat("  ", node.Depth()-1)

	var prefix string
	switch {
	case node.Kind == application.NodeNote:
		prefix = styles.TreeLeaf
	case node.IsExpanded:
		prefix = styles.TreeExpanded
	default:
		prefix = styles.TreeCollapsed
	}

	text := node.Name
	if glyph := m.glyphs[node.Icon]; glyph != "" {
		text = glyph + " " + text
	}

	var style lipgloss.Style
	switch node.Kind {
	case application.NodeSection:
		style = styles.NodeSection
	case application.NodeUnassigned:
		style = styles.NodeUnassigned
	default:
		style = styles.NodeNote
	}
	if selected {
		style = styles.NodeSelected
		if m.reorder != ReorderOff {
			style = styles.NodeDragging
		}
	}

	line := indent + styles.TreeBranch.Render(prefix) + style.Render(text)
	if node.IsContainer() {
		line += styles.NodeCount.Render(fmt.Sprintf(" (%d)", len(node.Children)))
	}
	return line
}

func (m *BrowserModel) renderPreview(node *application.TreeNode) string {
	note, ok := m.notes[node.ID]
	if !ok || note.Content == "" {
		return ""
	}

	lines := strings.Split(note.Content, "\n")
	more := len(lines) > previewLines
	if more {
		lines = lines[:previewLines]
	}

	indent := strings.Repeat("  ", node.Depth())
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(indent + styles.Preview.Render(line) + "\n")
	}
	if more {
		b.WriteString(indent + styles.Preview.Render("…") + "\n")
	}
	return b.String()
}
