package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"betternotes/internal/application"
)

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

func TestNameModel_NamesNewSection(t *testing.T) {
	f := newFixture(t)
	section, err := f.nb.AddSection("")
	if err != nil {
		t.Fatal(err)
	}

	m := NewNameModel(f.nb)
	m.SetTarget(NameNew, &application.TreeNode{Kind: application.NodeSection, ID: section.ID, Name: section.Name})
	m.form.SetValue("  Quests  ")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg, ok := runCmd(t, cmd).(DoneMsg)
	if !ok || msg.Err != nil {
		t.Fatalf("expected success, got %#v", msg)
	}
	if msg.Focus != section.ID {
		t.Errorf("expected focus on the new section, got %q", msg.Focus)
	}

	got, _ := f.nb.Section(section.ID)
	if got.Name != "Quests" {
		t.Errorf("expected trimmed name Quests, got %q", got.Name)
	}
	if got.IsNew {
		t.Error("expected the new flag to be acknowledged")
	}
}

func TestNameModel_CancelKeepsDefaultName(t *testing.T) {
	f := newFixture(t)
	note, err := f.nb.AddNote(f.bosses, "")
	if err != nil {
		t.Fatal(err)
	}

	m := NewNameModel(f.nb)
	m.SetTarget(NameNew, &application.TreeNode{Kind: application.NodeNote, ID: note.ID, SectionID: f.bosses, Name: note.Name})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := runCmd(t, cmd).(DoneMsg); !ok {
		t.Fatal("expected DoneMsg")
	}

	got, _, _ := f.nb.Note(note.ID)
	if got.Name != "New note" || got.IsNew {
		t.Errorf("expected acknowledged default note, got %q new=%v", got.Name, got.IsNew)
	}
}

func TestNameModel_RenameTruncates(t *testing.T) {
	f := newFixture(t)
	m := NewNameModel(f.nb)
	m.SetTarget(NameRename, &application.TreeNode{Kind: application.NodeNote, ID: f.zulrah, SectionID: f.bosses, Name: "Zulrah"})
	m.form.Input.CharLimit = 0
	m.form.SetValue(strings.Repeat("x", 80))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	runCmd(t, cmd)

	got, _, _ := f.nb.Note(f.zulrah)
	if len(got.Name) != application.MaxNameLength {
		t.Errorf("expected %d characters, got %d", application.MaxNameLength, len(got.Name))
	}
}

func TestNameModel_RenameRequiresName(t *testing.T) {
	f := newFixture(t)
	m := NewNameModel(f.nb)
	m.SetTarget(NameRename, &application.TreeNode{Kind: application.NodeSection, ID: f.bosses, Name: "Bosses"})
	m.form.SetValue("   ")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Error("expected to stay on the form")
	}
	if !m.MessageErr {
		t.Error("expected an error message")
	}
}

func TestPickerModel_MovesNote(t *testing.T) {
	f := newFixture(t)
	m := NewPickerModel(f.nb)
	m.Open(PickMove, &application.TreeNode{Kind: application.NodeNote, ID: f.vorkath, SectionID: f.bosses, Name: "Vorkath"})

	if m.paginator.Cursor() != 0 {
		t.Fatalf("expected cursor on the note's own section, got %d", m.paginator.Cursor())
	}

	m.Update(keyRunes("j"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if msg, ok := runCmd(t, cmd).(DoneMsg); !ok || msg.Err != nil {
		t.Fatalf("expected success, got %#v", msg)
	}

	skilling, _ := f.nb.Section(f.skilling)
	if n := len(skilling.Notes); n != 2 || skilling.Notes[1].ID != f.vorkath {
		t.Errorf("expected Vorkath appended to Skilling, got %d notes", n)
	}
}

func TestPickerModel_AddsNoteToChosenSection(t *testing.T) {
	f := newFixture(t)
	m := NewPickerModel(f.nb)
	m.Open(PickAddNote, nil)

	m.Update(keyRunes("j"))
	m.Update(keyRunes("j")) // unassigned is listed last
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	msg, ok := runCmd(t, cmd).(SwitchToNameMsg)
	if !ok {
		t.Fatal("expected the name form")
	}
	if msg.Target.SectionID != f.nb.UnassignedID() {
		t.Errorf("expected the note in unassigned, got section %s", msg.Target.SectionID)
	}
}

func TestEditorModel_TypingEditsContent(t *testing.T) {
	f := newFixture(t)
	m := NewEditorModel(f.nb)
	m.SetSize(80, 24)
	if err := m.Open(f.loose); err != nil {
		t.Fatal(err)
	}

	for _, r := range "gp" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	note, _, _ := f.nb.Note(f.loose)
	if note.Content != "gp" {
		t.Errorf("expected content in memory right away, got %q", note.Content)
	}

	raw, _, _ := f.store.Get(application.DefaultGroup, "unassigned_notes")
	if strings.Contains(raw, `"content":"gp"`) {
		t.Error("expected the write to wait for the debounce")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	runCmd(t, cmd)

	raw, _, _ = f.store.Get(application.DefaultGroup, "unassigned_notes")
	if !strings.Contains(raw, `"content":"gp"`) {
		t.Errorf("expected closing the editor to flush, got %s", raw)
	}
}

func TestEditorModel_OpenUnknownNote(t *testing.T) {
	f := newFixture(t)
	m := NewEditorModel(f.nb)

	if err := m.Open("missing"); err == nil {
		t.Error("expected an error for an unknown note")
	}
}

func TestDeleteModel_SectionMovesNotesToUnassigned(t *testing.T) {
	f := newFixture(t)
	tree := f.nb.Tree()
	m := NewDeleteModel(f.nb)
	m.SetTarget(tree.Find(f.bosses))

	if !strings.Contains(m.View(), "2 notes will be moved") {
		t.Error("expected the cascade warning")
	}

	_, cmd := m.Update(keyRunes("y"))
	if msg, ok := runCmd(t, cmd).(DoneMsg); !ok || msg.Err != nil {
		t.Fatalf("expected success, got %#v", msg)
	}

	snap := f.nb.Snapshot()
	if len(snap.Sections) != 1 {
		t.Errorf("expected one section left, got %d", len(snap.Sections))
	}
	if len(snap.Unassigned.Notes) != 3 {
		t.Errorf("expected 3 unassigned notes, got %d", len(snap.Unassigned.Notes))
	}
}

func TestDeleteModel_CancelKeepsNote(t *testing.T) {
	f := newFixture(t)
	m := NewDeleteModel(f.nb)
	m.SetTarget(f.nb.Tree().Find(f.loose))

	_, cmd := m.Update(keyRunes("n"))
	if _, ok := runCmd(t, cmd).(SwitchToBrowserMsg); !ok {
		t.Fatal("expected to return to the browser")
	}
	if _, _, err := f.nb.Note(f.loose); err != nil {
		t.Errorf("expected the note to survive, got %v", err)
	}
}

func TestHelpModel_ListsBrowserKeys(t *testing.T) {
	view := NewHelpModel().View()
	for _, b := range []string{"add section", "add note", "reorder", "edit in $EDITOR", "copy content"} {
		if !strings.Contains(view, b) {
			t.Errorf("expected help to mention %q", b)
		}
	}

	_, cmd := NewHelpModel().Update(keyRunes("?"))
	if _, ok := runCmd(t, cmd).(SwitchToBrowserMsg); !ok {
		t.Error("expected ? to close help")
	}
}
