package domain

import "testing"

func TestCollection_AddAndRemoveSection(t *testing.T) {
	c := NewCollection()
	a, b := NewSection("a"), NewSection("b")
	c.AddSection(a)
	c.AddSection(b)

	if got := c.Sections(); len(got) != 2 || got[1] != b {
		t.Fatalf("expected b appended last, got %v", got)
	}

	if !c.RemoveSection(a.ID) {
		t.Fatal("expected removal of a")
	}
	if c.RemoveSection(a.ID) {
		t.Error("second removal should be a miss")
	}
	if got := c.Sections(); len(got) != 1 || got[0] != b {
		t.Errorf("unexpected sections %v", got)
	}
}

func TestCollection_RenameAndExpand(t *testing.T) {
	c := NewCollection()
	s := NewSection("old")
	c.AddSection(s)

	if !c.RenameSection(s.ID, "new") || s.Name != "new" {
		t.Errorf("rename failed: %q", s.Name)
	}
	if !c.SetSectionExpanded(s.ID, false) || s.IsMaximized {
		t.Error("collapse failed")
	}
	if c.RenameSection("missing", "x") {
		t.Error("rename of unknown id should report a miss")
	}
	if c.SetSectionExpanded("missing", true) {
		t.Error("expand of unknown id should report a miss")
	}
}

func TestCollection_ClearAll(t *testing.T) {
	c := NewCollection()
	c.AddSection(NewSection("a"))
	c.SetUnassignedSection(NewUnassignedSection())

	c.ClearAll()

	if len(c.Sections()) != 0 {
		t.Error("expected no sections")
	}
	if c.Unassigned() != nil {
		t.Error("expected unassigned section to be dropped")
	}
}

func TestCollection_FindNoteAndContainer(t *testing.T) {
	c := NewCollection()
	s := NewSection("s")
	u := NewUnassignedSection()
	n1, n2 := NewNote("n1"), NewNote("n2")
	s.AppendNotes(n1)
	u.AppendNotes(n2)
	c.AddSection(s)
	c.SetUnassignedSection(u)

	if n, owner := c.FindNote(n1.ID); n != n1 || owner != s {
		t.Errorf("expected n1 in s, got %v %v", n, owner)
	}
	if n, owner := c.FindNote(n2.ID); n != n2 || owner != u {
		t.Errorf("expected n2 in unassigned, got %v %v", n, owner)
	}
	if n, _ := c.FindNote("missing"); n != nil {
		t.Error("expected miss")
	}

	if c.Container(u.ID) != u {
		t.Error("Container should resolve the unassigned section")
	}
	if c.Section(u.ID) != nil {
		t.Error("Section must not return the unassigned section")
	}
	if c.NoteCount() != 2 {
		t.Errorf("expected 2 notes, got %d", c.NoteCount())
	}
}
