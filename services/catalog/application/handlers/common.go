package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/shoply/pkg/auth"
	"github.com/ghuser/shoply/services/catalog/domain/models"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"product not found"`
} // @name ErrorResponse

// viewerFromRequest returns the authenticated viewer from the request
// context, or nil when the request is anonymous.
func viewerFromRequest(r *http.Request) *models.Viewer {
	v, err := auth.ViewerFromCtx(r.Context())
	if err != nil {
		return nil
	}
	return &models.Viewer{ID: v.ID, Username: v.Username}
}

// paginationParams parses page and limit query parameters, applying the
// defaults when absent. Non-integer values are passed through as-is so the
// service can reject them uniformly.
func paginationParams(r *http.Request) (page, pageSize int) {
	page = defaultPage
	pageSize = defaultPageSize
	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page = n
		} else {
			page = 0 // rejected by the service as invalid pagination
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			pageSize = n
		} else {
			pageSize = 0
		}
	}
	return page, pageSize
}
