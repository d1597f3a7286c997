package commands

import (
	"context"
	"fmt"
	"strings"

	"betternotes/internal/application"
)

// AddSectionResult contains the result of adding a section
type AddSectionResult struct {
	Section *application.Section
	Message string
}

// AddSectionCommand appends a section to the notebook
type AddSectionCommand struct {
	notebook Notebook
	Name     string
}

// NewAddSectionCommand creates a new AddSectionCommand
func NewAddSectionCommand(notebook Notebook, name string) *AddSectionCommand {
	return &AddSectionCommand{
		notebook: notebook,
		Name:     name,
	}
}

// Validate checks if the add operation is valid. An empty name is allowed and
// gets the default.
func (c *AddSectionCommand) Validate() error {
	return validateName(c.Name)
}

// Execute runs the add section command
func (c *AddSectionCommand) Execute(ctx context.Context) (*AddSectionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	section, err := c.notebook.AddSection(strings.TrimSpace(c.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to add section: %w", err)
	}

	return &AddSectionResult{
		Section: section,
		Message: fmt.Sprintf("Added section: %s %s", section.ID, section.Name),
	}, nil
}

// AddNoteResult contains the result of adding a note
type AddNoteResult struct {
	Note      *application.Note
	SectionID string
	Message   string
}

// AddNoteCommand appends a note to a section, or to the unassigned section
// when SectionRef is empty
type AddNoteCommand struct {
	notebook   Notebook
	SectionRef string
	Name       string
	Content    string
}

// NewAddNoteCommand creates a new AddNoteCommand
func NewAddNoteCommand(notebook Notebook, sectionRef, name string) *AddNoteCommand {
	return &AddNoteCommand{
		notebook:   notebook,
		SectionRef: sectionRef,
		Name:       name,
	}
}

// Validate checks if the add operation is valid
func (c *AddNoteCommand) Validate() error {
	return validateName(c.Name)
}

// Execute runs the add note command
func (c *AddNoteCommand) Execute(ctx context.Context) (*AddNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	sectionID := c.notebook.UnassignedID()
	if strings.TrimSpace(c.SectionRef) != "" {
		section, err := ResolveSection(c.notebook.Snapshot(), c.SectionRef)
		if err != nil {
			return nil, err
		}
		sectionID = section.ID
	}

	note, err := c.notebook.AddNote(sectionID, strings.TrimSpace(c.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to add note: %w", err)
	}

	if c.Content != "" {
		if err := c.notebook.SetNoteContent(note.ID, c.Content); err != nil {
			return nil, fmt.Errorf("failed to set content: %w", err)
		}
		note.Content = c.Content
	}

	return &AddNoteResult{
		Note:      note,
		SectionID: sectionID,
		Message:   fmt.Sprintf("Added note: %s %s", note.ID, note.Name),
	}, nil
}
