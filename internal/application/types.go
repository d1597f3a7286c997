package application

import "betternotes/internal/domain"

// Re-export domain types for use by adapters
type (
	Note     = domain.Note
	Section  = domain.Section
	Icon     = domain.Icon
	IconKind = domain.IconKind
	TreeNode = domain.TreeNode
	NodeKind = domain.NodeKind
)

const (
	NoIcon = domain.NoIcon

	NodeSection    = domain.NodeSection
	NodeUnassigned = domain.NodeUnassigned
	NodeNote       = domain.NodeNote
)

// Snapshot is a detached copy of the notebook for read-only consumers
type Snapshot struct {
	Sections   []*Section `json:"sections" yaml:"sections"`
	Unassigned *Section   `json:"unassigned_notes" yaml:"unassigned_notes"`
}

// Collection rebuilds a domain collection from the snapshot copies
func (s Snapshot) Collection() *domain.Collection {
	c := domain.NewCollection()
	c.SetSections(s.Sections)
	c.SetUnassignedSection(s.Unassigned)
	return c
}

// Tree builds the navigation tree of the snapshot
func (s Snapshot) Tree() *TreeNode {
	return domain.BuildTree(s.Collection())
}

// FindNote returns a note and its owning section from the snapshot
func (s Snapshot) FindNote(noteID string) (*Note, *Section) {
	return s.Collection().FindNote(noteID)
}
