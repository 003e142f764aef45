package domain

import (
	"time"

	"github.com/google/uuid"
)

// InitialVersion is the version every freshly drafted quote starts at.
const InitialVersion int32 = 1

// Quote is one authored saying persisted in the quote book.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is assigned when the quote is drafted and never changes.
	ID uuid.UUID

	// Author is who said or wrote the quote.
	Author string

	// Quote is the text itself.
	Quote string

	// CreatedAt is set by the store on insert, always in UTC.
	CreatedAt time.Time

	// Version counts edits, starting at InitialVersion.
	Version int32
}

// QuoteDraft carries the caller-supplied fields of a new or edited quote.
type QuoteDraft struct {
	Author string
	Quote  string
}

// NextVersion returns the version that follows v. Edits are counted modulo
// 2^32, so MaxInt32 is followed by MinInt32 rather than an error.
func NextVersion(v int32) int32 {
	return v + 1
}
