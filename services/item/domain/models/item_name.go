package models

import (
	"fmt"
	"strings"

	itemdomain "github.com/ghuser/itemregistry/services/item/domain"
)

// ItemName is a value object representing a present, non-blank item name.
// The name is stored exactly as supplied.
type ItemName string

// NewItemName constructs an ItemName or returns an error wrapping
// ErrInvalidItemName when s is empty or whitespace only.
func NewItemName(s string) (ItemName, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: name must not be blank", itemdomain.ErrInvalidItemName)
	}
	return ItemName(s), nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}
