package draft

import "errors"

var (
	// ErrInsufficientStock is returned when a ledger mutation would push a
	// product line past the quantity recorded in the catalog snapshot. The
	// draft is left unchanged.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrEmptyDraft is returned by Submit before any network call when the
	// ledger has no lines.
	ErrEmptyDraft = errors.New("order must have at least one item")
)
