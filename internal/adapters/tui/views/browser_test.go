package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"betternotes/internal/adapters/memory"
	"betternotes/internal/application"
	"betternotes/internal/ports"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// fixture builds Bosses[Vorkath, Zulrah], Skilling[Agility], unassigned[loose]
type fixture struct {
	nb               *application.Notebook
	store            *memory.Store
	bosses, skilling string
	vorkath, zulrah  string
	agility, loose   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	nb := application.NewNotebook(store, application.Options{})
	t.Cleanup(func() { nb.Close() })

	f := &fixture{nb: nb, store: store}
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	bosses, err := nb.AddSection("Bosses")
	must(err)
	skilling, err := nb.AddSection("Skilling")
	must(err)
	f.bosses, f.skilling = bosses.ID, skilling.ID

	for _, add := range []struct {
		section, name string
		id            *string
	}{
		{f.bosses, "Vorkath", &f.vorkath},
		{f.bosses, "Zulrah", &f.zulrah},
		{f.skilling, "Agility", &f.agility},
		{"", "loose", &f.loose},
	} {
		n, err := nb.AddNote(add.section, add.name)
		must(err)
		*add.id = n.ID
	}
	must(nb.SetNoteContent(f.agility, "Ardougne rooftops\nmarks of grace"))

	return f
}

func (f *fixture) browser() *BrowserModel {
	m := NewBrowserModel(f.nb, nil)
	m.Refresh("")
	return m
}

func visibleNames(m *BrowserModel) []string {
	var names []string
	for _, n := range m.flatNodes {
		names = append(names, n.Name)
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBrowser_ShowsSectionsThenUnassigned(t *testing.T) {
	m := newFixture(t).browser()

	want := []string{"Bosses", "Vorkath", "Zulrah", "Skilling", "Agility", "Unassigned notes", "loose"}
	if got := visibleNames(m); !equalStrings(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	view := m.View()
	if !strings.Contains(view, "2 sections, 4 notes") {
		t.Errorf("expected counts in header, got:\n%s", view)
	}
	// notes are expanded by default, so content is previewed
	if !strings.Contains(view, "Ardougne rooftops") {
		t.Error("expected content preview of an expanded note")
	}
}

func TestBrowser_CollapseSectionPersists(t *testing.T) {
	f := newFixture(t)
	m := f.browser()

	m.Update(keyRunes("h")) // cursor starts on Bosses

	section, err := f.nb.Section(f.bosses)
	if err != nil {
		t.Fatal(err)
	}
	if section.IsMaximized {
		t.Error("expected Bosses to be collapsed in the notebook")
	}
	if got := visibleNames(m); got[1] != "Skilling" {
		t.Errorf("expected collapsed notes to be hidden, got %v", got)
	}

	raw, ok, _ := f.store.Get(application.DefaultGroup, "sections")
	if !ok || !strings.Contains(raw, `"isMaximized":false`) {
		t.Errorf("expected collapsed state to be stored, got %s", raw)
	}
}

func TestBrowser_LeftOnNoteJumpsToSection(t *testing.T) {
	f := newFixture(t)
	m := f.browser()
	if err := f.nb.SetNoteExpanded(f.zulrah, false); err != nil {
		t.Fatal(err)
	}
	m.Refresh(f.zulrah)

	m.Update(keyRunes("h"))

	if node := m.SelectedNode(); node == nil || node.ID != f.bosses {
		t.Errorf("expected cursor on Bosses, got %+v", node)
	}
}

func TestBrowser_ReorderSections(t *testing.T) {
	f := newFixture(t)
	m := f.browser()
	m.Refresh(f.skilling)

	m.Update(keyRunes("o"))
	if m.Reordering() != ReorderSections {
		t.Fatalf("expected section reorder mode, got %v", m.Reordering())
	}
	m.Update(keyRunes("k"))

	snap := f.nb.Snapshot()
	if snap.Sections[0].ID != f.skilling || snap.Sections[1].ID != f.bosses {
		t.Errorf("expected Skilling first, got %s, %s", snap.Sections[0].Name, snap.Sections[1].Name)
	}
	if node := m.SelectedNode(); node == nil || node.ID != f.skilling {
		t.Error("expected cursor to follow the moved section")
	}

	// moving past the top is a no-op
	m.Update(keyRunes("k"))
	if f.nb.Snapshot().Sections[0].ID != f.skilling {
		t.Error("expected no change at the top")
	}

	m.Update(keyRunes("j"))
	if f.nb.Snapshot().Sections[0].ID != f.bosses {
		t.Error("expected Bosses back on top")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Reordering() != ReorderOff {
		t.Error("expected esc to leave reorder mode")
	}
}

func TestBrowser_ReorderNotesWithinAndAcrossSections(t *testing.T) {
	f := newFixture(t)
	m := f.browser()
	m.Refresh(f.vorkath)

	m.Update(keyRunes("o"))
	if m.Reordering() != ReorderNotes {
		t.Fatalf("expected note reorder mode, got %v", m.Reordering())
	}

	m.Update(keyRunes("j"))
	bosses, _ := f.nb.Section(f.bosses)
	if bosses.Notes[0].ID != f.zulrah || bosses.Notes[1].ID != f.vorkath {
		t.Fatalf("expected [Zulrah Vorkath], got [%s %s]", bosses.Notes[0].Name, bosses.Notes[1].Name)
	}

	// Vorkath is now last in Bosses, so the next step lands on top of Skilling
	m.Update(keyRunes("j"))
	skilling, _ := f.nb.Section(f.skilling)
	if len(skilling.Notes) != 2 || skilling.Notes[0].ID != f.vorkath {
		t.Errorf("expected Vorkath first in Skilling, got %d notes", len(skilling.Notes))
	}
	if node := m.SelectedNode(); node == nil || node.ID != f.vorkath {
		t.Error("expected cursor to follow the moved note")
	}
}

func TestBrowser_ReorderUnassignedSectionRefused(t *testing.T) {
	f := newFixture(t)
	m := f.browser()
	m.Refresh(f.nb.UnassignedID())

	m.Update(keyRunes("o"))

	if m.Reordering() != ReorderOff {
		t.Error("the unassigned section cannot be reordered")
	}
	if !m.MessageErr {
		t.Error("expected an error message")
	}
}

func TestBrowser_AddNoteWithoutSectionsGoesToUnassigned(t *testing.T) {
	nb := application.NewNotebook(memory.NewStore(), application.Options{})
	t.Cleanup(func() { nb.Close() })
	m := NewBrowserModel(nb, nil)
	m.Refresh("")

	_, cmd := m.Update(keyRunes("n"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(SwitchToNameMsg)
	if !ok {
		t.Fatalf("expected SwitchToNameMsg, got %T", cmd())
	}
	if msg.Mode != NameNew || msg.Target.SectionID != nb.UnassignedID() {
		t.Errorf("expected a new note in unassigned, got %+v", msg.Target)
	}

	snap := nb.Snapshot()
	if len(snap.Unassigned.Notes) != 1 || snap.Unassigned.Notes[0].Name != "New note" {
		t.Errorf("expected one default note in unassigned, got %d", len(snap.Unassigned.Notes))
	}
}

func TestBrowser_AddNoteWithSectionsAsks(t *testing.T) {
	m := newFixture(t).browser()

	_, cmd := m.Update(keyRunes("n"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if msg, ok := cmd().(SwitchToPickerMsg); !ok || msg.Purpose != PickAddNote {
		t.Errorf("expected the section picker, got %#v", cmd())
	}
}

func TestBrowser_DeleteUnassignedRefused(t *testing.T) {
	f := newFixture(t)
	m := f.browser()
	m.Refresh(f.nb.UnassignedID())

	_, cmd := m.Update(keyRunes("d"))

	if cmd != nil {
		t.Error("expected no confirmation for the unassigned section")
	}
	if !m.MessageErr {
		t.Error("expected an error message")
	}
}

type fakeResolver struct{}

func (fakeResolver) Resolve(icon application.Icon, cb func(ports.IconImage, bool)) {
	go cb(ports.IconImage{ID: icon.SpriteID, Glyph: "★"}, icon.HasSpriteIcon())
}

func TestBrowser_ResolvesIconsAsync(t *testing.T) {
	f := newFixture(t)
	if err := f.nb.SetSectionSpriteIcon(f.skilling, 209); err != nil {
		t.Fatal(err)
	}
	m := NewBrowserModel(f.nb, fakeResolver{})

	cmd := m.Refresh("")
	if cmd == nil {
		t.Fatal("expected a resolve command")
	}
	m.Update(cmd())

	if !strings.Contains(m.View(), "★ Skilling") {
		t.Error("expected the resolved glyph before the section name")
	}
	if again := m.Refresh(""); again != nil {
		t.Error("resolved icons should not be resolved again")
	}
}
