package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/shoply/pkg/errhttp"
	"github.com/ghuser/shoply/pkg/httpx"
	appsvcs "github.com/ghuser/shoply/services/catalog/application/services"
)

// PostLikeHandler handles POST /products/{id}/like requests.
type PostLikeHandler struct {
	svc *appsvcs.Services
}

// NewPostLikeHandler returns a PostLikeHandler backed by the given services.
func NewPostLikeHandler(svc *appsvcs.Services) *PostLikeHandler {
	return &PostLikeHandler{svc: svc}
}

// Execute toggles the viewer's like on a product and returns the new state
// with the up-to-date like count.
//
//	@Summary		Toggle like
//	@Description	Likes the product if the viewer has not liked it, removes the like otherwise
//	@Tags			products
//	@Produce		json
//	@Param			id	path		string	true	"Product ID (UUID)"
//	@Success		200	{object}	services.ToggleResult
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id}/like [post]
func (h *PostLikeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	result, err := h.svc.Like.Toggle(r.Context(), productID, viewerFromRequest(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, result)
}
