package commands

import (
	"context"

	"betternotes/internal/application"
)

// ListResult holds the notebook, or one section of it, as a tree
type ListResult struct {
	Tree     *application.TreeNode
	Sections int
	Notes    int
}

// ListCommand lists the notebook. A SectionRef limits it to one section.
type ListCommand struct {
	notebook   Notebook
	SectionRef string
}

// NewListCommand creates a new ListCommand
func NewListCommand(notebook Notebook, sectionRef string) *ListCommand {
	return &ListCommand{
		notebook:   notebook,
		SectionRef: sectionRef,
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) (*ListResult, error) {
	snap := c.notebook.Snapshot()

	if c.SectionRef != "" {
		section, err := ResolveSection(snap, c.SectionRef)
		if err != nil {
			return nil, err
		}
		snap = onlySection(section)
	}

	result := &ListResult{Tree: snap.Tree()}
	for _, s := range containers(snap) {
		result.Sections++
		result.Notes += len(s.Notes)
	}
	return result, nil
}

func onlySection(section *application.Section) application.Snapshot {
	if section.IsUnassignedNotesSection {
		return application.Snapshot{Unassigned: section}
	}
	return application.Snapshot{Sections: []*application.Section{section}}
}
