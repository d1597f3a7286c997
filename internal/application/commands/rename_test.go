package commands

import (
	"context"
	"strings"
	"testing"
)

func TestRenameNoteCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		newName string
		errMsg  string
	}{
		{"valid", "Vorkath", "Vorki", ""},
		{"missing note", "", "Vorki", "note ID is required"},
		{"blank name", "Vorkath", "  ", "name is required"},
		{"too long", "Vorkath", strings.Repeat("x", 51), "at most 50 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&RenameNoteCommand{NoteRef: tt.ref, NewName: tt.newName}).Validate()
			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %v", tt.errMsg, err)
			}
		})
	}
}

func TestRenameCommands_Execute(t *testing.T) {
	f := newFixture(t)

	res, err := NewRenameNoteCommand(f.nb, f.vorkath.ID, " Vorki ").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OldName != "Vorkath" || res.NewName != "Vorki" {
		t.Errorf("unexpected result %+v", res)
	}

	if _, err := NewRenameSectionCommand(f.nb, UnassignedRef, "Misc").Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	note, _, err := f.nb.Note(f.vorkath.ID)
	if err != nil || note.Name != "Vorki" {
		t.Errorf("note not renamed: %v %v", note, err)
	}
	if name := f.nb.Snapshot().Unassigned.Name; name != "Misc" {
		t.Errorf("unassigned not renamed: %s", name)
	}
}
