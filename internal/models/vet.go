// internal/models/vet.go
package models

// Vet is one clinic returned by the locator. Records coming back from the
// external search are untrusted; missing optional fields are tolerated.
type Vet struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Rating    float64 `json:"rating"`
	Phone     string  `json:"phone"`
	Distance  float64 `json:"distance"` // km from the search center
	OpenNow   bool    `json:"open_now"`
	PlaceID   string  `json:"place_id"`
	Website   string  `json:"website,omitempty"`
}

// Coordinates is a resolved map center for a location query.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// VetSearchResult carries the vets plus an explicit source marker so callers
// can tell live results from the degrade-to-demo-data fallback.
type VetSearchResult struct {
	Query  string       `json:"query"`
	Center Coordinates  `json:"center"`
	Source ResultSource `json:"source"`
	Vets   []Vet        `json:"vets"`
}
