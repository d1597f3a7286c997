package domain

// Collection holds the ordered regular sections plus the unassigned-notes
// section. It never persists anything itself.
type Collection struct {
	sections   []*Section
	unassigned *Section
}

// NewCollection creates an empty collection without an unassigned section
func NewCollection() *Collection {
	return &Collection{sections: []*Section{}}
}

// Sections returns the regular sections in display order
func (c *Collection) Sections() []*Section {
	return c.sections
}

// SetSections replaces the regular sections list
func (c *Collection) SetSections(sections []*Section) {
	if sections == nil {
		sections = []*Section{}
	}
	c.sections = sections
}

// Unassigned returns the unassigned-notes section, nil after ClearAll
func (c *Collection) Unassigned() *Section {
	return c.unassigned
}

// SetUnassignedSection replaces the unassigned-notes section
func (c *Collection) SetUnassignedSection(section *Section) {
	c.unassigned = section
}

// AddSection appends section at the end
func (c *Collection) AddSection(section *Section) {
	c.sections = append(c.sections, section)
}

// RemoveSection removes the first section with id
func (c *Collection) RemoveSection(id string) bool {
	i := c.SectionIndex(id)
	if i < 0 {
		return false
	}
	c.sections = append(c.sections[:i], c.sections[i+1:]...)
	return true
}

// RenameSection updates the name of the section with id
func (c *Collection) RenameSection(id, newName string) bool {
	s := c.Section(id)
	if s == nil {
		return false
	}
	s.Name = newName
	return true
}

// SetSectionExpanded updates isMaximized of the section with id
func (c *Collection) SetSectionExpanded(id string, expanded bool) bool {
	s := c.Section(id)
	if s == nil {
		return false
	}
	s.IsMaximized = expanded
	return true
}

// ClearAll empties the sections and drops the unassigned section
func (c *Collection) ClearAll() {
	c.sections = []*Section{}
	c.unassigned = nil
}

// SectionIndex returns the position of the regular section with id, or -1
func (c *Collection) SectionIndex(id string) int {
	for i, s := range c.sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Section returns the regular section with id, or nil
func (c *Collection) Section(id string) *Section {
	if i := c.SectionIndex(id); i >= 0 {
		return c.sections[i]
	}
	return nil
}

// Container returns the regular or unassigned section with id
func (c *Collection) Container(id string) *Section {
	if c.unassigned != nil && c.unassigned.ID == id {
		return c.unassigned
	}
	return c.Section(id)
}

// FindNote locates a note in any container
func (c *Collection) FindNote(noteID string) (*Note, *Section) {
	for _, s := range c.containers() {
		if n := s.Note(noteID); n != nil {
			return n, s
		}
	}
	return nil, nil
}

// NoteCount returns the number of notes across all containers
func (c *Collection) NoteCount() int {
	total := 0
	for _, s := range c.containers() {
		total += len(s.Notes)
	}
	return total
}

func (c *Collection) containers() []*Section {
	all := make([]*Section, 0, len(c.sections)+1)
	all = append(all, c.sections...)
	if c.unassigned != nil {
		all = append(all, c.unassigned)
	}
	return all
}
