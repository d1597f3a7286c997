package ports

import "betternotes/internal/domain"

// IconImage is a resolved icon, ready for display
type IconImage struct {
	Kind  domain.IconKind
	ID    int
	Glyph string // short terminal rendering, e.g. an emoji
	Label string // human readable name
}

// IconResolver turns an icon reference into a displayable image.
// Resolve returns immediately; callback fires later, possibly on another
// goroutine. ok is false when nothing could be resolved.
type IconResolver interface {
	Resolve(icon domain.Icon, callback func(img IconImage, ok bool))
}
