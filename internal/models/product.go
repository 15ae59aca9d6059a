// internal/models/product.go
package models

// Product is a catalog entry. The catalog is seeded at process start and is
// immutable afterwards, so products carry no lifecycle fields.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    ProductCategory `json:"category"`
	PetType     PetType         `json:"pet_type"`
	Price       float64         `json:"price"`
	Description string          `json:"description"`
	WhyNeed     string          `json:"why_need"`
	ImageURL    string          `json:"image_url"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
	Tag         string          `json:"tag"`
}
