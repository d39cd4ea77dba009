package gateway

import (
	"strings"

	"shop-services/internal/config"
)

// FormField describes one input of a service's create/edit form. Number
// fields are coerced before being forwarded as JSON, since the backing
// services type them.
type FormField struct {
	Name      string
	Label     string
	InputType string // text, email, number
}

// Service is one entry of the gateway's static registry.
type Service struct {
	Name    string
	BaseURL string
	Fields  []FormField
}

// Registry maps a service name from the request path to its base URL and form
// metadata. It is built once at startup from configuration; there is no
// discovery.
type Registry struct {
	services map[string]Service
	names    []string
}

// NewRegistry builds the gateway's service registry from configuration.
func NewRegistry(cfg *config.Config) *Registry {
	services := []Service{
		{
			Name:    "users",
			BaseURL: strings.TrimRight(cfg.Services.UsersURL, "/"),
			Fields: []FormField{
				{Name: "name", Label: "Name", InputType: "text"},
				{Name: "email", Label: "Email", InputType: "email"},
			},
		},
		{
			Name:    "products",
			BaseURL: strings.TrimRight(cfg.Services.ProductsURL, "/"),
			Fields: []FormField{
				{Name: "name", Label: "Name", InputType: "text"},
				{Name: "description", Label: "Description", InputType: "text"},
				{Name: "price", Label: "Price", InputType: "number"},
			},
		},
		{
			Name:    "orders",
			BaseURL: strings.TrimRight(cfg.Services.OrdersURL, "/"),
			Fields: []FormField{
				{Name: "user_id", Label: "User ID", InputType: "number"},
				{Name: "product_id", Label: "Product ID", InputType: "number"},
			},
		},
	}

	r := &Registry{services: make(map[string]Service, len(services))}
	for _, s := range services {
		r.services[s.Name] = s
		r.names = append(r.names, s.Name)
	}
	return r
}

// Lookup returns the registered service for a path segment.
func (r *Registry) Lookup(name string) (Service, bool) {
	s, ok := r.services[name]
	return s, ok
}

// Names returns the registered service names in registration order.
func (r *Registry) Names() []string {
	return r.names
}
