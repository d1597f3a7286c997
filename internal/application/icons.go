package application

// SetNoteItemIcon makes an item the note's icon, clearing any sprite, and saves
func (nb *Notebook) SetNoteItemIcon(noteID string, itemID int) error {
	return nb.updateNote(noteID, true, func(n *Note) { n.SetItem(itemID) })
}

// SetNoteSpriteIcon makes a sprite the note's icon, clearing any item, and saves
func (nb *Notebook) SetNoteSpriteIcon(noteID string, spriteID int) error {
	return nb.updateNote(noteID, true, func(n *Note) { n.SetSprite(spriteID) })
}

// RemoveNoteIcon clears both icon references. skipSave leaves the write to a
// caller that saves right after as part of a larger change.
func (nb *Notebook) RemoveNoteIcon(noteID string, skipSave bool) error {
	nb.lock()
	defer nb.unlock()

	note, _ := nb.collection.FindNote(noteID)
	if note == nil {
		return noteNotFound(noteID)
	}
	note.Clear()

	if skipSave {
		return nil
	}
	return nb.save()
}

// SetSectionItemIcon makes an item the section's icon, clearing any sprite, and saves
func (nb *Notebook) SetSectionItemIcon(sectionID string, itemID int) error {
	return nb.updateSection(sectionID, func(s *Section) { s.SetItem(itemID) })
}

// SetSectionSpriteIcon makes a sprite the section's icon, clearing any item, and saves
func (nb *Notebook) SetSectionSpriteIcon(sectionID string, spriteID int) error {
	return nb.updateSection(sectionID, func(s *Section) { s.SetSprite(spriteID) })
}

// RemoveSectionIcon clears both icon references of a section, see RemoveNoteIcon
func (nb *Notebook) RemoveSectionIcon(sectionID string, skipSave bool) error {
	nb.lock()
	defer nb.unlock()

	section := nb.collection.Container(sectionID)
	if section == nil {
		return sectionNotFound(sectionID)
	}
	section.Clear()

	if skipSave {
		return nil
	}
	return nb.save()
}

func (nb *Notebook) updateSection(sectionID string, apply func(*Section)) error {
	nb.lock()
	defer nb.unlock()

	section := nb.collection.Container(sectionID)
	if section == nil {
		return sectionNotFound(sectionID)
	}
	apply(section)

	return nb.save()
}
