// internal/models/address.go
package models

// Address is a delivery address. At most one address may be the default; the
// write path in the address store enforces that, not the struct.
type Address struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	Phone     string  `json:"phone"`
	Street    string  `json:"street"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	ZipCode   string  `json:"zip_code"`
	IsDefault bool    `json:"is_default"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
