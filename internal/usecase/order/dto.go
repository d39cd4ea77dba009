package order

import "time"

// CreateOrderRequest represents the request payload for creating an order.
// The referenced user and product are not required to exist.
type CreateOrderRequest struct {
	UserID    int64 `validate:"required,gt=0"`
	ProductID int64 `validate:"required,gt=0"`
}

// UpdateOrderRequest represents the request payload for replacing an existing
// order's references. CreatedAt never changes.
type UpdateOrderRequest struct {
	ID        int64 `validate:"required"`
	UserID    int64 `validate:"required,gt=0"`
	ProductID int64 `validate:"required,gt=0"`
}

// OrderResponse represents an order returned by the service, enriched with
// display names resolved from the peer services.
type OrderResponse struct {
	ID          int64
	UserID      int64
	ProductID   int64
	UserName    string
	ProductName string
	CreatedAt   time.Time
}
