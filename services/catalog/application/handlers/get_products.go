package handlers

import (
	"net/http"

	"github.com/ghuser/shoply/pkg/errhttp"
	"github.com/ghuser/shoply/pkg/httpx"
	appsvcs "github.com/ghuser/shoply/services/catalog/application/services"
)

// GetProductsHandler handles GET /products requests.
type GetProductsHandler struct {
	svc *appsvcs.Services
}

// NewGetProductsHandler returns a GetProductsHandler backed by the given services.
func NewGetProductsHandler(svc *appsvcs.Services) *GetProductsHandler {
	return &GetProductsHandler{svc: svc}
}

// Execute lists one page of products.
//
//	@Summary		List products
//	@Description	Returns a page of products ordered newest first, annotated with like counts. Authenticated requests also carry a per-viewer liked flag.
//	@Tags			products
//	@Produce		json
//	@Param			page	query		int	false	"Page number (1-based)"	default(1)
//	@Param			limit	query		int	false	"Items per page (1-100)"	default(10)
//	@Success		200		{object}	models.ProductPage
//	@Failure		400		{object}	ErrorResponse
//	@Router			/products [get]
func (h *GetProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paginationParams(r)

	result, err := h.svc.Catalog.ListPage(r.Context(), page, pageSize, viewerFromRequest(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, result)
}
