package commands

import (
	"context"
	"fmt"

	"betternotes/internal/application"
)

// ContentResult contains the result of a content change
type ContentResult struct {
	NoteID  string
	Message string
}

// SetContentCommand replaces a note's content and saves it right away
type SetContentCommand struct {
	notebook Notebook
	NoteRef  string
	Content  string
}

// NewSetContentCommand creates a new SetContentCommand
func NewSetContentCommand(notebook Notebook, noteRef, content string) *SetContentCommand {
	return &SetContentCommand{
		notebook: notebook,
		NoteRef:  noteRef,
		Content:  content,
	}
}

// Validate checks if the content operation is valid
func (c *SetContentCommand) Validate() error {
	return application.ValidateRequired("noteID", c.NoteRef)
}

// Execute runs the set content command
func (c *SetContentCommand) Execute(ctx context.Context) (*ContentResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	note, _, err := ResolveNote(c.notebook.Snapshot(), c.NoteRef)
	if err != nil {
		return nil, err
	}

	if err := c.notebook.SetNoteContent(note.ID, c.Content); err != nil {
		return nil, fmt.Errorf("failed to set content: %w", err)
	}

	return &ContentResult{
		NoteID:  note.ID,
		Message: fmt.Sprintf("Updated %s (%d characters)", note.Name, len([]rune(c.Content))),
	}, nil
}

// ExpandResult contains the result of an expand or collapse
type ExpandResult struct {
	ID       string
	Target   TargetKind
	Expanded bool
	Message  string
}

// ExpandCommand expands or collapses a section or a note. The reference is
// tried as a section first, then as a note.
type ExpandCommand struct {
	notebook Notebook
	Ref      string
	Expanded bool
}

// NewExpandCommand creates a new ExpandCommand
func NewExpandCommand(notebook Notebook, ref string, expanded bool) *ExpandCommand {
	return &ExpandCommand{
		notebook: notebook,
		Ref:      ref,
		Expanded: expanded,
	}
}

// Validate checks if the expand operation is valid
func (c *ExpandCommand) Validate() error {
	return application.ValidateRequired("id", c.Ref)
}

// Execute runs the expand command
func (c *ExpandCommand) Execute(ctx context.Context) (*ExpandResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	verb := "Collapsed"
	if c.Expanded {
		verb = "Expanded"
	}

	snap := c.notebook.Snapshot()
	if section, err := ResolveSection(snap, c.Ref); err == nil {
		if err := c.notebook.SetSectionExpanded(c.Expanded, section.ID); err != nil {
			return nil, fmt.Errorf("failed to update section: %w", err)
		}
		return &ExpandResult{
			ID:       section.ID,
			Target:   TargetSection,
			Expanded: c.Expanded,
			Message:  fmt.Sprintf("%s section %s", verb, section.Name),
		}, nil
	}

	note, _, err := ResolveNote(snap, c.Ref)
	if err != nil {
		return nil, err
	}
	if err := c.notebook.SetNoteExpanded(note.ID, c.Expanded); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &ExpandResult{
		ID:       note.ID,
		Target:   TargetNote,
		Expanded: c.Expanded,
		Message:  fmt.Sprintf("%s note %s", verb, note.Name),
	}, nil
}
