package domain

import "github.com/google/uuid"

// NewID returns a fresh random identifier for a note or section.
// Tests may replace it to get deterministic ids.
var NewID = func() string {
	return uuid.NewString()
}
