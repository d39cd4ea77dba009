package order

import "time"

// Order represents an order entity. UserID and ProductID are loose references:
// nothing guarantees the referenced user or product still exists.
type Order struct {
	ID        int64
	UserID    int64
	ProductID int64
	CreatedAt time.Time
}
