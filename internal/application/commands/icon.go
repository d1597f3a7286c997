package commands

import (
	"context"
	"fmt"
	"strings"

	"betternotes/internal/application"
	"betternotes/internal/domain"
)

// Icon kinds accepted by SetIconCommand
const (
	IconKindItem   = "item"
	IconKindSprite = "sprite"
	IconKindNone   = "none"
)

// TargetKind says whether a reference named a section or a note
type TargetKind int

const (
	TargetSection TargetKind = iota
	TargetNote
)

func (k TargetKind) String() string {
	if k == TargetNote {
		return "note"
	}
	return "section"
}

// IconResult contains the result of an icon change
type IconResult struct {
	TargetID string
	Target   TargetKind
	Icon     application.Icon
	Message  string
}

// SetIconCommand sets or clears the icon of a note or section. Setting one
// kind clears the other.
type SetIconCommand struct {
	notebook  Notebook
	TargetRef string
	Kind      string
	IconID    int
}

// NewSetIconCommand creates a new SetIconCommand
func NewSetIconCommand(notebook Notebook, targetRef, kind string, iconID int) *SetIconCommand {
	return &SetIconCommand{
		notebook:  notebook,
		TargetRef: targetRef,
		Kind:      kind,
		IconID:    iconID,
	}
}

// Validate checks if the icon operation is valid
func (c *SetIconCommand) Validate() error {
	if err := application.ValidateRequired("id", c.TargetRef); err != nil {
		return err
	}

	switch strings.ToLower(c.Kind) {
	case IconKindItem:
		return application.ValidateIconID("itemID", c.IconID)
	case IconKindSprite:
		return application.ValidateIconID("spriteID", c.IconID)
	case IconKindNone:
		return nil
	default:
		return &application.ValidationError{
			Field:   "kind",
			Message: fmt.Sprintf("unknown icon kind %q (expected item, sprite or none)", c.Kind),
		}
	}
}

// Execute runs the icon command. The reference is tried as a note first,
// then as a section.
func (c *SetIconCommand) Execute(ctx context.Context) (*IconResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	snap := c.notebook.Snapshot()
	kind := strings.ToLower(c.Kind)

	if note, _, err := ResolveNote(snap, c.TargetRef); err == nil {
		if err := c.applyToNote(note.ID, kind); err != nil {
			return nil, err
		}
		return c.result(note.ID, note.Name, TargetNote, kind), nil
	}

	section, err := ResolveSection(snap, c.TargetRef)
	if err != nil {
		return nil, err
	}
	if err := c.applyToSection(section.ID, kind); err != nil {
		return nil, err
	}
	return c.result(section.ID, section.Name, TargetSection, kind), nil
}

func (c *SetIconCommand) applyToNote(id, kind string) error {
	var err error
	switch kind {
	case IconKindItem:
		err = c.notebook.SetNoteItemIcon(id, c.IconID)
	case IconKindSprite:
		err = c.notebook.SetNoteSpriteIcon(id, c.IconID)
	default:
		err = c.notebook.RemoveNoteIcon(id, false)
	}
	if err != nil {
		return fmt.Errorf("failed to set icon: %w", err)
	}
	return nil
}

func (c *SetIconCommand) applyToSection(id, kind string) error {
	var err error
	switch kind {
	case IconKindItem:
		err = c.notebook.SetSectionItemIcon(id, c.IconID)
	case IconKindSprite:
		err = c.notebook.SetSectionSpriteIcon(id, c.IconID)
	default:
		err = c.notebook.RemoveSectionIcon(id, false)
	}
	if err != nil {
		return fmt.Errorf("failed to set icon: %w", err)
	}
	return nil
}

func (c *SetIconCommand) result(id, name string, target TargetKind, kind string) *IconResult {
	icon := domain.NoIcons()
	msg := fmt.Sprintf("Removed icon from %s %s", target, name)

	switch kind {
	case IconKindItem:
		icon.SetItem(c.IconID)
		msg = fmt.Sprintf("Set %s %s icon to item %d", target, name, c.IconID)
	case IconKindSprite:
		icon.SetSprite(c.IconID)
		msg = fmt.Sprintf("Set %s %s icon to sprite %d", target, name, c.IconID)
	}

	return &IconResult{
		TargetID: id,
		Target:   target,
		Icon:     icon,
		Message:  msg,
	}
}
