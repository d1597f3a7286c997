package commands

import (
	"context"
	"errors"
	"fmt"

	"betternotes/internal/application"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	DeletedID string
	Message   string
}

// DeleteSectionCommand deletes a section, moving its notes to the
// unassigned section
type DeleteSectionCommand struct {
	notebook   Notebook
	SectionRef string
}

// NewDeleteSectionCommand creates a new DeleteSectionCommand
func NewDeleteSectionCommand(notebook Notebook, sectionRef string) *DeleteSectionCommand {
	return &DeleteSectionCommand{
		notebook:   notebook,
		SectionRef: sectionRef,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteSectionCommand) Validate() error {
	return application.ValidateRequired("sectionID", c.SectionRef)
}

// Execute runs the delete section command
func (c *DeleteSectionCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	section, err := ResolveSection(c.notebook.Snapshot(), c.SectionRef)
	if err != nil {
		return nil, err
	}

	if err := c.notebook.DeleteSection(section.ID); err != nil {
		if errors.Is(err, application.ErrProtectedSection) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete %s: %w", section.ID, err)
	}

	msg := fmt.Sprintf("Deleted section %s", section.Name)
	if n := len(section.Notes); n > 0 {
		msg = fmt.Sprintf("%s (%d notes moved to unassigned)", msg, n)
	}

	return &DeleteResult{
		DeletedID: section.ID,
		Message:   msg,
	}, nil
}

// DeleteNoteCommand deletes a note from whichever section holds it
type DeleteNoteCommand struct {
	notebook Notebook
	NoteRef  string
}

// NewDeleteNoteCommand creates a new DeleteNoteCommand
func NewDeleteNoteCommand(notebook Notebook, noteRef string) *DeleteNoteCommand {
	return &DeleteNoteCommand{
		notebook: notebook,
		NoteRef:  noteRef,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteNoteCommand) Validate() error {
	return application.ValidateRequired("noteID", c.NoteRef)
}

// Execute runs the delete note command
func (c *DeleteNoteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	note, owner, err := ResolveNote(c.notebook.Snapshot(), c.NoteRef)
	if err != nil {
		return nil, err
	}

	if err := c.notebook.DeleteNote(note.ID, owner.ID); err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", note.ID, err)
	}

	return &DeleteResult{
		DeletedID: note.ID,
		Message:   fmt.Sprintf("Deleted note %s", note.Name),
	}, nil
}
