package domain

import "time"

// Client is a customer record with a shipping destination.
type Client struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Contact          string    `json:"contact"`
	ShippingLocation string    `json:"shippingLocation"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ClientInput carries the user-editable fields of a client.
type ClientInput struct {
	Name             string
	Contact          string
	ShippingLocation string
}
