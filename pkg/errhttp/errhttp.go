// Package errhttp maps domain sentinel errors to HTTP status codes and the
// public message clients see. Add a case to mapError for each new domain
// sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/itemregistry/pkg/httpx"
	itemdomain "github.com/ghuser/itemregistry/services/item/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors become 500; their message is hidden when isProduction.
func WriteError(w http.ResponseWriter, err error, isProduction bool) {
	status, msg := mapError(err)
	if msg == "" {
		msg = httpx.SafeError(err, status, isProduction)
	}
	httpx.JSONError(w, status, msg)
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return http.StatusNotFound, "Item not found"
	case errors.Is(err, itemdomain.ErrInvalidItemName):
		return http.StatusBadRequest, "Name is required"
	default:
		return http.StatusInternalServerError, ""
	}
}
