// internal/models/order.go
package models

import "time"

type OrderLine struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	Quantity  int    `json:"quantity"`
}

// Order is created on checkout completion. Total is computed from the cart
// snapshot at creation time and never recomputed. Status moves monotonically
// along StageSequence, with Cancelled as the only escape.
type Order struct {
	ID               string      `json:"id"`
	Lines            []OrderLine `json:"products"`
	Status           OrderStatus `json:"status"`
	OrderDate        time.Time   `json:"order_date"`
	ExpectedDelivery time.Time   `json:"expected_delivery"`
	Total            float64     `json:"total"`
	TrackingID       string      `json:"tracking_id"`
}

// TimelineStage is one step of the fixed five-stage tracking view.
type TimelineStage struct {
	Name      OrderStatus `json:"name"`
	Completed bool        `json:"completed"`
}
