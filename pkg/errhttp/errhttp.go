// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/shoply/pkg/auth"
	"github.com/ghuser/shoply/pkg/httpx"
	catalogdomain "github.com/ghuser/shoply/services/catalog/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrInvalidPagination):
		return http.StatusBadRequest // 400
	case errors.Is(err, catalogdomain.ErrViewerRequired),
		errors.Is(err, auth.ErrViewerNotFound):
		return http.StatusUnauthorized // 401
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, catalogdomain.ErrAlreadyLiked),
		errors.Is(err, catalogdomain.ErrLikeNotFound):
		return http.StatusConflict // 409
	case errors.Is(err, catalogdomain.ErrInvalidProduct):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
