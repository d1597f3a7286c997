package commands

import (
	"context"
	"fmt"
	"strings"

	"betternotes/internal/application"
)

// RenameResult contains the result of a rename operation
type RenameResult struct {
	ID      string
	OldName string
	NewName string
	Message string
}

// RenameSectionCommand renames a regular or the unassigned section
type RenameSectionCommand struct {
	notebook   Notebook
	SectionRef string
	NewName    string
}

// NewRenameSectionCommand creates a new RenameSectionCommand
func NewRenameSectionCommand(notebook Notebook, sectionRef, newName string) *RenameSectionCommand {
	return &RenameSectionCommand{
		notebook:   notebook,
		SectionRef: sectionRef,
		NewName:    newName,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameSectionCommand) Validate() error {
	if err := application.ValidateRequired("sectionID", c.SectionRef); err != nil {
		return err
	}
	if err := application.ValidateRequired("name", c.NewName); err != nil {
		return err
	}
	return validateName(c.NewName)
}

// Execute runs the rename section command
func (c *RenameSectionCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	section, err := ResolveSection(c.notebook.Snapshot(), c.SectionRef)
	if err != nil {
		return nil, err
	}

	newName := strings.TrimSpace(c.NewName)
	if err := c.notebook.RenameSection(newName, section.ID); err != nil {
		return nil, fmt.Errorf("failed to rename %s: %w", section.ID, err)
	}

	return &RenameResult{
		ID:      section.ID,
		OldName: section.Name,
		NewName: newName,
		Message: fmt.Sprintf("Renamed section %s to %s", section.Name, newName),
	}, nil
}

// RenameNoteCommand renames a note
type RenameNoteCommand struct {
	notebook Notebook
	NoteRef  string
	NewName  string
}

// NewRenameNoteCommand creates a new RenameNoteCommand
func NewRenameNoteCommand(notebook Notebook, noteRef, newName string) *RenameNoteCommand {
	return &RenameNoteCommand{
		notebook: notebook,
		NoteRef:  noteRef,
		NewName:  newName,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameNoteCommand) Validate() error {
	if err := application.ValidateRequired("noteID", c.NoteRef); err != nil {
		return err
	}
	if err := application.ValidateRequired("name", c.NewName); err != nil {
		return err
	}
	return validateName(c.NewName)
}

// Execute runs the rename note command
func (c *RenameNoteCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	note, _, err := ResolveNote(c.notebook.Snapshot(), c.NoteRef)
	if err != nil {
		return nil, err
	}

	newName := strings.TrimSpace(c.NewName)
	if err := c.notebook.RenameNote(note.ID, newName); err != nil {
		return nil, fmt.Errorf("failed to rename %s: %w", note.ID, err)
	}

	return &RenameResult{
		ID:      note.ID,
		OldName: note.Name,
		NewName: newName,
		Message: fmt.Sprintf("Renamed note %s to %s", note.Name, newName),
	}, nil
}
