// internal/models/cart.go
package models

// CartLine is one (product, quantity) pairing held by the cart store. Price,
// name and image are denormalized from the product at add time so a snapshot
// renders without catalog lookups.
type CartLine struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
	Quantity  int     `json:"quantity"`
}

// CartSnapshot is the immutable view handed to subscribers and readers after
// every mutation.
type CartSnapshot struct {
	Lines []CartLine `json:"lines"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}
