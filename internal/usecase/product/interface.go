package product

import "context"

// Usecase defines the interface for product business logic operations.
type Usecase interface {
	CreateProduct(ctx context.Context, in CreateProductRequest) (*ProductResponse, error)
	UpdateProduct(ctx context.Context, in UpdateProductRequest) (*ProductResponse, error)
	DeleteProduct(ctx context.Context, id int64) error
	GetProduct(ctx context.Context, id int64) (*ProductResponse, error)
	ListProducts(ctx context.Context) ([]ProductResponse, error)
}
