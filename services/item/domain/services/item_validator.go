// Package services contains stateless domain services for the item bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"

	itemdomain "github.com/ghuser/itemregistry/services/item/domain"
	"github.com/ghuser/itemregistry/services/item/domain/models"
)

// ValidateName reports whether name is present. The only business rule for
// names is that they are not empty or whitespace only.
func ValidateName(name models.ItemName) error {
	if strings.TrimSpace(name.String()) == "" {
		return fmt.Errorf("%w: name must not be blank", itemdomain.ErrInvalidItemName)
	}
	return nil
}

// ValidateItemForCreation performs cross-field validation on a fully-constructed
// Item before it is stored. Items built with models.ItemName values that
// bypassed NewItemName (e.g. conversions) are caught here.
func ValidateItemForCreation(item models.Item) error {
	if err := ValidateName(item.Name); err != nil {
		return err
	}

	if !item.ID.Valid() {
		return fmt.Errorf("id must be positive, got %d", item.ID)
	}

	if item.CreatedAt.IsZero() {
		return fmt.Errorf("created_at must be set")
	}

	return nil
}
