package domain

import "time"

// Product is a single inventory row. IDs are assigned at creation and never change.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Quantity  int       `json:"quantity"`
	Cost      float64   `json:"cost"`
	SalePrice float64   `json:"salePrice"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductInput carries the user-editable fields of a product.
type ProductInput struct {
	Name      string
	Location  string
	Quantity  int
	Cost      float64
	SalePrice float64
}
