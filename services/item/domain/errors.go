package domain

import "errors"

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist. Malformed
	// ids are reported with this error too: no item can ever have them.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidItemName indicates the item name is missing or blank.
	ErrInvalidItemName = errors.New("invalid item name")
)
