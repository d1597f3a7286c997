package domain

import "encoding/json"

// DefaultNoteName is the name given to notes created without one
const DefaultNoteName = "New note"

// Note is a single free-text entry. Content holds simple markup
// (bold/italic/size/color spans) and is stored verbatim.
type Note struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Content     string `json:"content" yaml:"content"`
	Icon        `yaml:",inline"`
	IsMaximized bool `json:"isMaximized" yaml:"isMaximized"`

	// IsNew is set on creation and cleared once the rename prompt was shown.
	IsNew bool `json:"-" yaml:"-"`
}

// NewNote creates a note with a fresh id, no icon and expanded content
func NewNote(name string) *Note {
	if name == "" {
		name = DefaultNoteName
	}
	return &Note{
		ID:          NewID(),
		Name:        name,
		Icon:        NoIcons(),
		IsMaximized: true,
		IsNew:       true,
	}
}

// UnmarshalJSON decodes a note, defaulting fields that older payloads lack:
// spriteId did not always exist and must not decode as sprite 0.
func (n *Note) UnmarshalJSON(data []byte) error {
	type plain Note
	decoded := plain{Icon: NoIcons(), IsMaximized: true}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*n = Note(decoded)
	return nil
}

// Clone returns a copy of the note
func (n *Note) Clone() *Note {
	c := *n
	return &c
}
