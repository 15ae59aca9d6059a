// internal/models/appointment.go
package models

import "time"

// Appointment is a vet visit booked from the locator page.
type Appointment struct {
	ID        string    `json:"id"`
	PetID     string    `json:"pet_id"`
	PetName   string    `json:"pet_name"`
	VetID     string    `json:"vet_id"`
	VetName   string    `json:"vet_name"`
	Scheduled time.Time `json:"scheduled"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
