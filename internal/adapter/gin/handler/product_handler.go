package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shop-services/internal/usecase/product"
)

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	uc  product.Usecase
	log *zap.Logger
}

// NewProductHandler creates a new ProductHandler instance
func NewProductHandler(uc product.Usecase, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		uc:  uc,
		log: log,
	}
}

// ProductPayload represents the HTTP request body for creating or replacing a
// product. A missing price defaults to 0.
type ProductPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ProductResponse represents the HTTP response for product data
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

func toProductResponse(p *product.ProductResponse) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req ProductPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create product request", zap.Error(err))
		bindError(c, err)
		return
	}

	resp, err := h.uc.CreateProduct(c.Request.Context(), product.CreateProductRequest{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(resp))
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.uc.GetProduct(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(resp))
}

// UpdateProduct handles PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ProductPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid update product request", zap.Error(err))
		bindError(c, err)
		return
	}

	resp, err := h.uc.UpdateProduct(c.Request.Context(), product.UpdateProductRequest{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(resp))
}

// DeleteProduct handles DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.uc.DeleteProduct(c.Request.Context(), id); err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	resp, err := h.uc.ListProducts(c.Request.Context())
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	products := make([]ProductResponse, len(resp))
	for i, p := range resp {
		products[i] = toProductResponse(&p)
	}

	c.JSON(http.StatusOK, products)
}
