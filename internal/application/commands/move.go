package commands

import (
	"context"
	"fmt"

	"betternotes/internal/application"
)

// AppendPosition places a moved entry after the last one
const AppendPosition = -1

// dropIndex converts a final position into a drop index as seen before the
// entry at from is removed. from is -1 when the entry comes from another list.
func dropIndex(from, position, length int) int {
	if from < 0 {
		if position < 0 || position > length {
			return length
		}
		return position
	}

	last := length - 1
	if position < 0 || position > last {
		position = last
	}
	if position > from {
		return position + 1
	}
	return position
}

// MoveNoteResult contains the result of moving a note
type MoveNoteResult struct {
	NoteID        string
	FromSectionID string
	ToSectionID   string
	Position      int
	Message       string
}

// MoveNoteCommand moves a note to a position in a section. The destination
// may be the note's own section.
type MoveNoteCommand struct {
	notebook       Notebook
	NoteRef        string
	DestinationRef string
	Position       int
}

// NewMoveNoteCommand creates a new MoveNoteCommand
func NewMoveNoteCommand(notebook Notebook, noteRef, destinationRef string, position int) *MoveNoteCommand {
	return &MoveNoteCommand{
		notebook:       notebook,
		NoteRef:        noteRef,
		DestinationRef: destinationRef,
		Position:       position,
	}
}

// Validate checks if the move operation is valid
func (c *MoveNoteCommand) Validate() error {
	if err := application.ValidateRequired("noteID", c.NoteRef); err != nil {
		return err
	}
	return application.ValidateRequired("destinationID", c.DestinationRef)
}

// Execute runs the move note command
func (c *MoveNoteCommand) Execute(ctx context.Context) (*MoveNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	snap := c.notebook.Snapshot()
	note, from, err := ResolveNote(snap, c.NoteRef)
	if err != nil {
		return nil, err
	}
	to, err := ResolveSection(snap, c.DestinationRef)
	if err != nil {
		return nil, err
	}

	source := -1
	if from.ID == to.ID {
		source = from.NoteIndex(note.ID)
	}
	drop := dropIndex(source, c.Position, len(to.Notes))

	if err := c.notebook.MoveNote(note.ID, from.ID, to.ID, drop); err != nil {
		return nil, fmt.Errorf("failed to move note: %w", err)
	}

	position := drop
	if source >= 0 && drop > source {
		position--
	}

	return &MoveNoteResult{
		NoteID:        note.ID,
		FromSectionID: from.ID,
		ToSectionID:   to.ID,
		Position:      position,
		Message:       fmt.Sprintf("Moved %s to %s at position %d", note.Name, to.Name, position),
	}, nil
}

// MoveSectionResult contains the result of moving a section
type MoveSectionResult struct {
	SectionID string
	Position  int
	Message   string
}

// MoveSectionCommand moves a regular section to a new position. The
// unassigned section always stays last.
type MoveSectionCommand struct {
	notebook   Notebook
	SectionRef string
	Position   int
}

// NewMoveSectionCommand creates a new MoveSectionCommand
func NewMoveSectionCommand(notebook Notebook, sectionRef string, position int) *MoveSectionCommand {
	return &MoveSectionCommand{
		notebook:   notebook,
		SectionRef: sectionRef,
		Position:   position,
	}
}

// Validate checks if the move operation is valid
func (c *MoveSectionCommand) Validate() error {
	return application.ValidateRequired("sectionID", c.SectionRef)
}

// Execute runs the move section command
func (c *MoveSectionCommand) Execute(ctx context.Context) (*MoveSectionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	snap := c.notebook.Snapshot()
	section, err := ResolveSection(snap, c.SectionRef)
	if err != nil {
		return nil, err
	}
	if section.IsUnassignedNotesSection {
		return nil, fmt.Errorf("%w: the unassigned section cannot be moved", application.ErrInvalidOperation)
	}

	source := -1
	for i, s := range snap.Sections {
		if s.ID == section.ID {
			source = i
			break
		}
	}
	drop := dropIndex(source, c.Position, len(snap.Sections))

	if err := c.notebook.DropSections([]int{source}, drop); err != nil {
		return nil, fmt.Errorf("failed to move section: %w", err)
	}

	position := drop
	if drop > source {
		position--
	}

	return &MoveSectionResult{
		SectionID: section.ID,
		Position:  position,
		Message:   fmt.Sprintf("Moved section %s to position %d", section.Name, position),
	}, nil
}
