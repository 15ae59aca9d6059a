// internal/models/pet.go
package models

import "time"

type Pet struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Species           PetSpecies        `json:"species"`
	Breed             string            `json:"breed"`
	Age               int               `json:"age"` // in years
	Gender            string            `json:"gender"`
	HealthNotes       string            `json:"health_notes,omitempty"`
	Photo             string            `json:"photo,omitempty"`
	VaccinationStatus VaccinationStatus `json:"vaccination_status"`
}

// VaccineRecord is immutable once created. Status is derived from the gap
// between NextDueDate and today.
type VaccineRecord struct {
	ID          string        `json:"id"`
	PetID       string        `json:"pet_id"`
	VaccineName string        `json:"vaccine_name"`
	DateGiven   time.Time     `json:"date_given"`
	NextDueDate time.Time     `json:"next_due_date"`
	VetName     string        `json:"vet_name"`
	Status      VaccineStatus `json:"status"`
}

type VaccineRecommendation struct {
	Name      string     `json:"name"`
	Species   PetSpecies `json:"species"`
	Frequency string     `json:"frequency"`
	AgeStart  string     `json:"age_start"`
	WhyNeeded string     `json:"why_needed"`
}
