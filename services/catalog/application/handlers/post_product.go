package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/shoply/pkg/errhttp"
	"github.com/ghuser/shoply/pkg/httpx"
	pkgvalidator "github.com/ghuser/shoply/pkg/validator"
	appsvcs "github.com/ghuser/shoply/services/catalog/application/services"
)

// CreateProductRequest is the request body for POST /products.
type CreateProductRequest struct {
	Name        string          `json:"name"        validate:"required,min=3,max=255" example:"Stoneware Mug"`
	Price       decimal.Decimal `json:"price"       validate:"required"               swaggertype:"number" example:"12.50"`
	Category    string          `json:"category"    validate:"required,min=3,max=30"  example:"kitchen"`
	Subcategory string          `json:"subcategory" validate:"required,min=3,max=30"  example:"mugs"`
} // @name CreateProductRequest

// CreateProductResponse is returned on successful product creation.
type CreateProductResponse struct {
	ID          uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string    `json:"name"        example:"Stoneware Mug"`
	Price       string    `json:"price"       example:"12.50"`
	Category    string    `json:"category"    example:"kitchen"`
	Subcategory string    `json:"subcategory" example:"mugs"`
	CreatedAt   time.Time `json:"created_at"  example:"2024-01-15T10:30:00Z"`
} // @name CreateProductResponse

// PostProductHandler handles POST /products requests.
type PostProductHandler struct {
	svc *appsvcs.Services
}

// NewPostProductHandler returns a PostProductHandler backed by the given services.
func NewPostProductHandler(svc *appsvcs.Services) *PostProductHandler {
	return &PostProductHandler{svc: svc}
}

// Execute creates a new product. All cached listings are invalidated so the
// product is visible on the next read.
//
//	@Summary		Create product
//	@Description	Creates a new product in the catalog
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProductRequest	true	"Product creation request"
//	@Success		201		{object}	CreateProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/products [post]
func (h *PostProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateProductRequest](w, r)
	if !ok {
		return
	}

	product, err := h.svc.Catalog.Create(r.Context(), appsvcs.CreateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Subcategory: req.Subcategory,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, CreateProductResponse{
		ID:          product.ID,
		Name:        product.Name.String(),
		Price:       product.Price.StringFixed(2),
		Category:    product.Category,
		Subcategory: product.Subcategory,
		CreatedAt:   product.CreatedAt,
	})
}
