package domain

// NoIcon marks an unset item or sprite reference.
const NoIcon = -1

// Icon holds the two independent icon references an entity can carry.
// Both fields persist as-is; the setters below keep at most one active.
type Icon struct {
	ItemID   int `json:"itemId" yaml:"itemId"`
	SpriteID int `json:"spriteId" yaml:"spriteId"`
}

// NoIcons returns an Icon with both references unset
func NoIcons() Icon {
	return Icon{ItemID: NoIcon, SpriteID: NoIcon}
}

// HasItemIcon reports whether an item reference is set
func (i Icon) HasItemIcon() bool {
	return i.ItemID != NoIcon
}

// HasSpriteIcon reports whether a sprite reference is set
func (i Icon) HasSpriteIcon() bool {
	return i.SpriteID != NoIcon
}

// HasIcon reports whether either reference is set
func (i Icon) HasIcon() bool {
	return i.HasItemIcon() || i.HasSpriteIcon()
}

// SetItem makes itemID the active icon, clearing any sprite.
func (i *Icon) SetItem(itemID int) {
	i.SpriteID = NoIcon
	i.ItemID = itemID
}

// SetSprite makes spriteID the active icon, clearing any item.
func (i *Icon) SetSprite(spriteID int) {
	i.ItemID = NoIcon
	i.SpriteID = spriteID
}

// Clear resets both references.
func (i *Icon) Clear() {
	i.ItemID = NoIcon
	i.SpriteID = NoIcon
}

// IconKind identifies which reference an icon lookup targets
type IconKind int

const (
	IconKindNone IconKind = iota
	IconKindItem
	IconKindSprite
)

func (k IconKind) String() string {
	switch k {
	case IconKindItem:
		return "item"
	case IconKindSprite:
		return "sprite"
	default:
		return "none"
	}
}

// Active returns the reference used for display. Items win when both are set.
func (i Icon) Active() (IconKind, int) {
	switch {
	case i.HasItemIcon():
		return IconKindItem, i.ItemID
	case i.HasSpriteIcon():
		return IconKindSprite, i.SpriteID
	default:
		return IconKindNone, NoIcon
	}
}
