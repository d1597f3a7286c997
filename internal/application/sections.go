package application

import "betternotes/internal/domain"

// AddSection appends a new section and saves. An empty name gets the default.
func (nb *Notebook) AddSection(name string) (*Section, error) {
	nb.lock()
	defer nb.unlock()

	section := domain.NewSection(name)
	nb.collection.AddSection(section)

	return section.Clone(), nb.save()
}

// DeleteSection moves the section's notes to the end of the unassigned
// section, removes it and saves. Confirmation is the caller's job.
func (nb *Notebook) DeleteSection(id string) error {
	nb.lock()
	defer nb.unlock()

	unassigned := nb.ensureUnassigned()
	if id == unassigned.ID {
		return ErrProtectedSection
	}

	section := nb.collection.Section(id)
	if section == nil {
		return sectionNotFound(id)
	}

	if len(section.Notes) > 0 {
		unassigned.AppendNotes(section.Notes...)
		section.Notes = []*domain.Note{}
	}
	nb.collection.RemoveSection(id)

	return nb.save()
}

// RenameSection renames a regular or the unassigned section and saves
func (nb *Notebook) RenameSection(newName, id string) error {
	nb.lock()
	defer nb.unlock()

	section := nb.collection.Container(id)
	if section == nil {
		return sectionNotFound(id)
	}
	section.Name = newName

	return nb.save()
}

// SetSectionExpanded collapses or expands a section and saves
func (nb *Notebook) SetSectionExpanded(expanded bool, id string) error {
	nb.lock()
	defer nb.unlock()

	section := nb.collection.Container(id)
	if section == nil {
		return sectionNotFound(id)
	}
	section.IsMaximized = expanded

	return nb.save()
}
