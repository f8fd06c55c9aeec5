package http

import (
	"errors"
	"net/http"

	"inventory-service/internal/inventory"
	pkgErrors "inventory-service/pkg/errors"
)

var (
	errBadRequest = pkgErrors.NewHTTPError(http.StatusBadRequest, "Bad Request")
	errNotFound   = pkgErrors.NewHTTPError(http.StatusNotFound, "Not Found")
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Unknown errors are returned unchanged and rendered as a generic 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, inventory.ErrNameRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Bad Request: Inventory name is required")
	case errors.Is(err, inventory.ErrNoFieldsProvided):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Bad Request: No fields to update")
	case errors.Is(err, inventory.ErrPhotoRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "No photo uploaded")
	case errors.Is(err, inventory.ErrItemNotFound),
		errors.Is(err, inventory.ErrPhotoNotFound):
		return errNotFound
	case errors.Is(err, inventory.ErrPhotoFileMissing):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Photo file not found")
	default:
		return err
	}
}
