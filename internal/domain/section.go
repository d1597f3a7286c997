package domain

import "encoding/json"

const (
	// DefaultSectionName is the name given to sections created without one
	DefaultSectionName = "New section"
	// UnassignedSectionName is the name of the fallback section
	UnassignedSectionName = "Unassigned notes"
)

// Section is a named, orderable group of notes
type Section struct {
	ID                       string  `json:"id" yaml:"id"`
	Name                     string  `json:"name" yaml:"name"`
	Notes                    []*Note `json:"notes" yaml:"notes"`
	IsMaximized              bool    `json:"isMaximized" yaml:"isMaximized"`
	Icon                     `yaml:",inline"`
	IsUnassignedNotesSection bool `json:"isUnassignedNotesSection" yaml:"isUnassignedNotesSection"`

	// IsNew is set on creation and cleared once the rename prompt was shown.
	IsNew bool `json:"-" yaml:"-"`
}

// NewSection creates an empty, expanded section with a fresh id
func NewSection(name string) *Section {
	if name == "" {
		name = DefaultSectionName
	}
	return &Section{
		ID:          NewID(),
		Name:        name,
		Notes:       []*Note{},
		IsMaximized: true,
		Icon:        NoIcons(),
		IsNew:       true,
	}
}

// NewUnassignedSection creates the distinguished fallback section
func NewUnassignedSection() *Section {
	s := NewSection(UnassignedSectionName)
	s.IsUnassignedNotesSection = true
	s.IsNew = false
	return s
}

// UnmarshalJSON decodes a section with the same defaults as NewSection
func (s *Section) UnmarshalJSON(data []byte) error {
	type plain Section
	decoded := plain{Icon: NoIcons(), IsMaximized: true}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if decoded.Notes == nil {
		decoded.Notes = []*Note{}
	}
	*s = Section(decoded)
	return nil
}

// MarshalJSON always writes notes as an array, never null
func (s Section) MarshalJSON() ([]byte, error) {
	type plain Section
	if s.Notes == nil {
		s.Notes = []*Note{}
	}
	return json.Marshal(plain(s))
}

// NoteIndex returns the position of the note with id, or -1
func (s *Section) NoteIndex(id string) int {
	for i, n := range s.Notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// Note returns the note with id, or nil
func (s *Section) Note(id string) *Note {
	if i := s.NoteIndex(id); i >= 0 {
		return s.Notes[i]
	}
	return nil
}

// AppendNotes adds notes at the end, preserving their order
func (s *Section) AppendNotes(notes ...*Note) {
	s.Notes = append(s.Notes, notes...)
}

// RemoveNote removes the first note matching id and returns it
func (s *Section) RemoveNote(id string) (*Note, bool) {
	i := s.NoteIndex(id)
	if i < 0 {
		return nil, false
	}
	n := s.Notes[i]
	s.Notes = append(s.Notes[:i], s.Notes[i+1:]...)
	return n, true
}

// Clone returns a deep copy of the section and its notes
func (s *Section) Clone() *Section {
	c := *s
	c.Notes = make([]*Note, len(s.Notes))
	for i, n := range s.Notes {
		c.Notes[i] = n.Clone()
	}
	return &c
}
