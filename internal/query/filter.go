// Package query derives the read views shown on the entity screens: search,
// filters and pagination. Views are recomputed per request and never persisted.
package query

import (
	"strings"

	"biocat/internal/domain"
)

// ProductFilter narrows the product collection. Zero values leave their
// condition unconstrained; active conditions are ANDed.
type ProductFilter struct {
	Search      string
	Location    string
	MinQuantity *int
	MaxQuantity *int
}

// ClientFilter narrows the client collection. Search matches name or contact.
type ClientFilter struct {
	Search   string
	Location string
}

// FilterProducts keeps products matching all active conditions, preserving order.
func FilterProducts(products []domain.Product, filter ProductFilter) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if filter.Location != "" && p.Location != filter.Location {
			continue
		}
		if filter.MinQuantity != nil && p.Quantity < *filter.MinQuantity {
			continue
		}
		if filter.MaxQuantity != nil && p.Quantity > *filter.MaxQuantity {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterClients keeps clients matching all active conditions, preserving order.
func FilterClients(clients []domain.Client, filter ClientFilter) []domain.Client {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Contact), search) {
			continue
		}
		if filter.Location != "" && c.ShippingLocation != filter.Location {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ProductLocations returns the distinct non-blank locations in first-seen order.
func ProductLocations(products []domain.Product) []string {
	return distinct(products, func(p domain.Product) string { return p.Location })
}

// ClientLocations returns the distinct non-blank shipping locations in first-seen order.
func ClientLocations(clients []domain.Client) []string {
	return distinct(clients, func(c domain.Client) string { return c.ShippingLocation })
}

func distinct[T any](items []T, field func(T) string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		v := field(item)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
