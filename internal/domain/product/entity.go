package product

// Product represents a product entity in the catalog.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
}
