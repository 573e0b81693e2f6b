package models

import (
	"fmt"
	"strconv"
	"strings"

	itemdomain "github.com/ghuser/itemregistry/services/item/domain"
)

// ItemID is the registry-assigned identifier. Valid ids start at 1.
type ItemID int64

// ParseItemID parses the external (path segment) form of an id.
// Anything that is not a positive base-10 integer wraps ErrItemNotFound.
func ParseItemID(s string) (ItemID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: malformed id %q", itemdomain.ErrItemNotFound, s)
	}
	return ItemID(n), nil
}

// Valid reports whether id could have been assigned by the registry.
func (id ItemID) Valid() bool {
	return id > 0
}

// Int64 returns the id as a plain integer for serialization.
func (id ItemID) Int64() int64 {
	return int64(id)
}

func (id ItemID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
