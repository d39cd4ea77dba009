package order

import "context"

// Usecase defines the interface for order business logic operations.
type Usecase interface {
	CreateOrder(ctx context.Context, in CreateOrderRequest) (*OrderResponse, error)
	UpdateOrder(ctx context.Context, in UpdateOrderRequest) (*OrderResponse, error)
	DeleteOrder(ctx context.Context, id int64) error
	GetOrder(ctx context.Context, id int64) (*OrderResponse, error)
	ListOrders(ctx context.Context) ([]OrderResponse, error)
}

// NameResolver resolves the display names an order response carries. An
// implementation never fails: when the real name cannot be fetched it returns
// a placeholder of the form "User #<id>" / "Product #<id>".
type NameResolver interface {
	UserName(ctx context.Context, id int64) string
	ProductName(ctx context.Context, id int64) string
}
