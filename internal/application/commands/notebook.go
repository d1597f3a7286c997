package commands

import (
	"fmt"
	"strings"

	"betternotes/internal/application"
)

// Notebook is the part of application.Notebook the commands drive
type Notebook interface {
	Snapshot() application.Snapshot
	UnassignedID() string

	AddSection(name string) (*application.Section, error)
	DeleteSection(id string) error
	RenameSection(newName, id string) error
	SetSectionExpanded(expanded bool, id string) error
	DropSections(dragged []int, drop int) error

	AddNote(sectionID, name string) (*application.Note, error)
	DeleteNote(noteID, sectionID string) error
	RenameNote(noteID, newName string) error
	SetNoteExpanded(noteID string, expanded bool) error
	SetNoteContent(noteID, content string) error
	MoveNote(noteID, fromSectionID, toSectionID string, targetIndex int) error

	SetNoteItemIcon(noteID string, itemID int) error
	SetNoteSpriteIcon(noteID string, spriteID int) error
	RemoveNoteIcon(noteID string, skipSave bool) error
	SetSectionItemIcon(sectionID string, itemID int) error
	SetSectionSpriteIcon(sectionID string, spriteID int) error
	RemoveSectionIcon(sectionID string, skipSave bool) error

	Export(format string) ([]byte, error)
}

var _ Notebook = (*application.Notebook)(nil)

// UnassignedRef names the unassigned section on the command line
const UnassignedRef = "unassigned"

// ResolveSection finds a section by id, by case-insensitive name, or by
// UnassignedRef. Ambiguous names are rejected.
func ResolveSection(snap application.Snapshot, ref string) (*application.Section, error) {
	ref = strings.TrimSpace(ref)
	if err := application.ValidateRequired("sectionID", ref); err != nil {
		return nil, err
	}

	all := snap.Sections
	if snap.Unassigned != nil {
		if ref == snap.Unassigned.ID || strings.EqualFold(ref, UnassignedRef) {
			return snap.Unassigned, nil
		}
		all = append(all[:len(all):len(all)], snap.Unassigned)
	}

	var byName []*application.Section
	for _, s := range all {
		if s.ID == ref {
			return s, nil
		}
		if strings.EqualFold(s.Name, ref) {
			byName = append(byName, s)
		}
	}

	switch len(byName) {
	case 0:
		return nil, missing("section", "sectionID", ref)
	case 1:
		return byName[0], nil
	default:
		return nil, &application.ValidationError{
			Field:   "sectionID",
			Message: fmt.Sprintf("%d sections are named %q, use the ID", len(byName), ref),
		}
	}
}

// ResolveNote finds a note by id or by case-insensitive name and returns it
// with its owning section.
func ResolveNote(snap application.Snapshot, ref string) (*application.Note, *application.Section, error) {
	ref = strings.TrimSpace(ref)
	if err := application.ValidateRequired("noteID", ref); err != nil {
		return nil, nil, err
	}

	if n, owner := snap.FindNote(ref); n != nil {
		return n, owner, nil
	}

	type match struct {
		note    *application.Note
		section *application.Section
	}
	var byName []match
	for _, s := range containers(snap) {
		for _, n := range s.Notes {
			if strings.EqualFold(n.Name, ref) {
				byName = append(byName, match{n, s})
			}
		}
	}

	switch len(byName) {
	case 0:
		return nil, nil, missing("note", "noteID", ref)
	case 1:
		return byName[0].note, byName[0].section, nil
	default:
		return nil, nil, &application.ValidationError{
			Field:   "noteID",
			Message: fmt.Sprintf("%d notes are named %q, use the ID", len(byName), ref),
		}
	}
}

// missing reports a reference that matched nothing, as an id when it is
// shaped like one and as a name otherwise
func missing(kind, field, ref string) error {
	if application.ValidateID(field, ref) == nil {
		return &application.NotFoundError{Kind: kind, ID: ref}
	}
	return &application.NotFoundError{Kind: kind, Name: ref}
}

// containers lists the regular sections followed by the unassigned one
func containers(snap application.Snapshot) []*application.Section {
	out := make([]*application.Section, 0, len(snap.Sections)+1)
	out = append(out, snap.Sections...)
	if snap.Unassigned != nil {
		out = append(out, snap.Unassigned)
	}
	return out
}

func validateName(name string) error {
	if len([]rune(strings.TrimSpace(name))) > application.MaxNameLength {
		return &application.ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("name must be at most %d characters", application.MaxNameLength),
		}
	}
	return nil
}
