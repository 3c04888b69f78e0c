package handlers

import (
	"net/http"
	"strings"

	"github.com/ghuser/shoply/pkg/errhttp"
	"github.com/ghuser/shoply/pkg/httpx"
	appsvcs "github.com/ghuser/shoply/services/catalog/application/services"
)

// SearchProductsHandler handles GET /products/search requests.
type SearchProductsHandler struct {
	svc *appsvcs.Services
}

// NewSearchProductsHandler returns a SearchProductsHandler backed by the given services.
func NewSearchProductsHandler(svc *appsvcs.Services) *SearchProductsHandler {
	return &SearchProductsHandler{svc: svc}
}

// Execute searches products by name substring. A blank query falls back to
// the paginated listing.
//
//	@Summary		Search products
//	@Description	Returns all products whose name contains the query, newest first, annotated with like counts. A blank query returns the first listing page instead.
//	@Tags			products
//	@Produce		json
//	@Param			q	query		string	false	"Name substring to match"
//	@Success		200	{array}		models.AnnotatedProduct
//	@Failure		400	{object}	ErrorResponse
//	@Router			/products/search [get]
func (h *SearchProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	viewer := viewerFromRequest(r)

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		page, pageSize := paginationParams(r)
		result, err := h.svc.Catalog.ListPage(r.Context(), page, pageSize, viewer)
		if err != nil {
			errhttp.WriteError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, result)
		return
	}

	matches, err := h.svc.Catalog.Search(r.Context(), query, viewer)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, matches)
}
