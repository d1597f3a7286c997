package application

import (
	"fmt"

	"betternotes/internal/domain"
)

// DropResult describes a committed note drop
type DropResult struct {
	MovedNoteIDs    []string
	TargetSectionID string
}

func sectionKey(s *Section) string { return s.ID }
func noteKey(n *Note) string       { return n.ID }

// ReorderSections applies a full new order of regular section ids and saves.
// Unknown ids are ignored; sections missing from ids keep their relative
// order after the listed ones.
func (nb *Notebook) ReorderSections(orderedIDs []string) error {
	nb.lock()
	defer nb.unlock()

	nb.collection.SetSections(domain.OrderBy(nb.collection.Sections(), orderedIDs, sectionKey))
	return nb.save()
}

// ReorderNotes applies a full new order of note ids within one section and
// saves, with the same rules as ReorderSections.
func (nb *Notebook) ReorderNotes(sectionID string, orderedIDs []string) error {
	nb.lock()
	defer nb.unlock()

	section := nb.collection.Container(sectionID)
	if section == nil {
		return sectionNotFound(sectionID)
	}
	section.Notes = domain.OrderBy(section.Notes, orderedIDs, noteKey)

	return nb.save()
}

// DropSections commits a drag of the sections at dragged to drop
func (nb *Notebook) DropSections(dragged []int, drop int) error {
	nb.lock()
	defer nb.unlock()

	sections, _ := domain.Reorder(nb.collection.Sections(), dragged, drop)
	nb.collection.SetSections(sections)

	return nb.save()
}

// DropNotes commits a drag of the notes at dragged in section fromID to drop
// in section toID. Both ids may name the same section.
func (nb *Notebook) DropNotes(fromID, toID string, dragged []int, drop int) (*DropResult, error) {
	nb.lock()
	defer nb.unlock()

	return nb.dropNotes(fromID, toID, dragged, drop)
}

// MoveNote moves one note to targetIndex in another section, or within its
// own section when fromSectionID equals toSectionID. targetIndex is a drop
// position as seen before the note is removed.
func (nb *Notebook) MoveNote(noteID, fromSectionID, toSectionID string, targetIndex int) error {
	nb.lock()
	defer nb.unlock()

	from := nb.collection.Container(fromSectionID)
	if from == nil {
		return sectionNotFound(fromSectionID)
	}
	idx := from.NoteIndex(noteID)
	if idx < 0 {
		return noteNotFound(noteID)
	}

	res, err := nb.dropNotes(fromSectionID, toSectionID, []int{idx}, targetIndex)
	if err != nil {
		return err
	}
	if len(res.MovedNoteIDs) != 1 {
		return fmt.Errorf("%w: note %s was not moved", ErrInvalidOperation, noteID)
	}
	return nil
}

func (nb *Notebook) dropNotes(fromID, toID string, dragged []int, drop int) (*DropResult, error) {
	from := nb.collection.Container(fromID)
	if from == nil {
		return nil, sectionNotFound(fromID)
	}
	to := nb.collection.Container(toID)
	if to == nil {
		return nil, sectionNotFound(toID)
	}

	res := domain.Splice(from.Notes, to.Notes, dragged, drop, from == to)
	from.Notes = res.Source
	if from != to {
		to.Notes = res.Target
	}

	result := &DropResult{TargetSectionID: to.ID}
	for _, n := range res.Moved {
		result.MovedNoteIDs = append(result.MovedNoteIDs, n.ID)
	}

	return result, nb.save()
}
