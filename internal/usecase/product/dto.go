package product

// CreateProductRequest represents the request payload for creating a product.
// Price defaults to 0 when omitted.
type CreateProductRequest struct {
	Name        string `validate:"required,max=100"`
	Description string
	Price       float64 `validate:"gte=0"`
}

// UpdateProductRequest represents the request payload for replacing an
// existing product.
type UpdateProductRequest struct {
	ID          int64  `validate:"required"`
	Name        string `validate:"required,max=100"`
	Description string
	Price       float64 `validate:"gte=0"`
}

// ProductResponse represents a product returned by the service.
type ProductResponse struct {
	ID          int64
	Name        string
	Description string
	Price       float64
}
