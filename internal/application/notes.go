package application

import (
	"go.uber.org/zap"

	"betternotes/internal/domain"
)

// AddNote appends a new note to a section and saves. An empty sectionID
// targets the unassigned section; an empty name gets the default.
func (nb *Notebook) AddNote(sectionID, name string) (*Note, error) {
	nb.lock()
	defer nb.unlock()

	var section *Section
	if sectionID == "" {
		section = nb.ensureUnassigned()
	} else {
		section = nb.collection.Container(sectionID)
	}
	if section == nil {
		return nil, sectionNotFound(sectionID)
	}

	note := domain.NewNote(name)
	section.AppendNotes(note)

	return note.Clone(), nb.save()
}

// AddNoteToUnassigned appends a new note to the unassigned section and saves
func (nb *Notebook) AddNoteToUnassigned(name string) (*Note, error) {
	return nb.AddNote("", name)
}

// DeleteNote removes a note from the given section and saves. An empty
// sectionID deletes the note from whichever section holds it.
func (nb *Notebook) DeleteNote(noteID, sectionID string) error {
	nb.lock()
	defer nb.unlock()

	var section *Section
	if sectionID == "" {
		_, section = nb.collection.FindNote(noteID)
	} else {
		section = nb.collection.Container(sectionID)
		if section == nil {
			return sectionNotFound(sectionID)
		}
	}

	if section == nil {
		return noteNotFound(noteID)
	}
	if _, ok := section.RemoveNote(noteID); !ok {
		return noteNotFound(noteID)
	}

	return nb.save()
}

// RenameNote renames a note and saves
func (nb *Notebook) RenameNote(noteID, newName string) error {
	return nb.updateNote(noteID, true, func(n *Note) { n.Name = newName })
}

// SetNoteExpanded shows or hides a note's content and saves
func (nb *Notebook) SetNoteExpanded(noteID string, expanded bool) error {
	return nb.updateNote(noteID, true, func(n *Note) { n.IsMaximized = expanded })
}

// SetNoteContent replaces a note's content and saves without a redraw
func (nb *Notebook) SetNoteContent(noteID, content string) error {
	return nb.updateNote(noteID, false, func(n *Note) { n.Content = content })
}

// EditNoteContent replaces a note's content in memory right away and saves
// once edits have been quiet for the debounce period. Bursts of edits cause
// a single write holding the last content. Close flushes a pending write.
func (nb *Notebook) EditNoteContent(noteID, content string) error {
	nb.lock()
	defer nb.unlock()

	note, _ := nb.collection.FindNote(noteID)
	if note == nil {
		return noteNotFound(noteID)
	}
	note.Content = content

	nb.content.Trigger(nb.saveContent)
	return nil
}

// FlushContent writes a pending content edit immediately
func (nb *Notebook) FlushContent() bool {
	return nb.content.Flush()
}

func (nb *Notebook) saveContent() {
	nb.lock()
	defer nb.unlock()

	if err := nb.saveNoRedraw(); err != nil {
		nb.logger.Error("debounced content save failed", zap.Error(err))
	}
}

func (nb *Notebook) updateNote(noteID string, redraw bool, apply func(*Note)) error {
	nb.lock()
	defer nb.unlock()

	note, _ := nb.collection.FindNote(noteID)
	if note == nil {
		return noteNotFound(noteID)
	}
	apply(note)

	if redraw {
		return nb.save()
	}
	return nb.saveNoRedraw()
}
