// internal/services/pet_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/petville/petcare-backend/internal/models"
	"github.com/petville/petcare-backend/internal/store"
	"github.com/petville/petcare-backend/internal/utils"
)

// dueSoonWindow is the gap before a vaccine's next due date at which it
// counts as Due Soon rather than Completed.
const dueSoonWindow = 30 * 24 * time.Hour

type PetService struct {
	pets            *store.PetStore
	recommendations []models.VaccineRecommendation

	// now is swappable so classification can be pinned in tests.
	now func() time.Time
}

type AddPetRequest struct {
	Name        string            `json:"name" validate:"required"`
	Species     models.PetSpecies `json:"species" validate:"required,oneof=Dog Cat Bird Other"`
	Breed       string            `json:"breed" validate:"required"`
	Age         int               `json:"age" validate:"gte=0"`
	Gender      string            `json:"gender" validate:"required"`
	HealthNotes string            `json:"health_notes"`
	Photo       string            `json:"photo"`
}

type AddVaccineRecordRequest struct {
	VaccineName string    `json:"vaccine_name" validate:"required"`
	DateGiven   time.Time `json:"date_given" validate:"required"`
	NextDueDate time.Time `json:"next_due_date" validate:"required"`
	VetName     string    `json:"vet_name" validate:"required"`
}

func NewPetService(pets *store.PetStore, recommendations []models.VaccineRecommendation) *PetService {
	return &PetService{
		pets:            pets,
		recommendations: recommendations,
		now:             time.Now,
	}
}

func (s *PetService) ListPets() []models.Pet {
	return s.pets.ListPets()
}

func (s *PetService) GetPet(id string) (models.Pet, error) {
	pet, ok := s.pets.GetPet(id)
	if !ok {
		return models.Pet{}, ErrNotFound
	}
	return pet, nil
}

// AddPet creates a pet defaulting to up-to-date; the status tightens as
// vaccine records arrive.
func (s *PetService) AddPet(req *AddPetRequest) (models.Pet, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.Pet{}, fmt.Errorf("validation failed: %w", err)
	}

	pet := models.Pet{
		ID:                "pet-" + uuid.NewString(),
		Name:              req.Name,
		Species:           req.Species,
		Breed:             req.Breed,
		Age:               req.Age,
		Gender:            req.Gender,
		HealthNotes:       req.HealthNotes,
		Photo:             req.Photo,
		VaccinationStatus: models.VaccinationUpToDate,
	}
	s.pets.AddPet(pet)
	return pet, nil
}

func (s *PetService) UpdatePet(pet models.Pet) error {
	if !s.pets.UpdatePet(pet) {
		return ErrNotFound
	}
	return nil
}

// ClassifyVaccineStatus derives a record's urgency from the gap between the
// next due date and today. Comparison is date-granular: Overdue strictly
// before today, Due Soon within the 30-day window, Completed otherwise.
func ClassifyVaccineStatus(nextDue, today time.Time) models.VaccineStatus {
	due := truncateToDay(nextDue)
	now := truncateToDay(today)

	switch {
	case due.Before(now):
		return models.VaccineStatusOverdue
	case !due.After(now.Add(dueSoonWindow)):
		return models.VaccineStatusDueSoon
	default:
		return models.VaccineStatusCompleted
	}
}

// VaccineRecords returns the pet's records newest-first, re-classified
// against today so rendering and insertion share one rule.
func (s *PetService) VaccineRecords(petID string) ([]models.VaccineRecord, error) {
	if _, ok := s.pets.GetPet(petID); !ok {
		return nil, ErrNotFound
	}

	records := s.pets.RecordsForPet(petID)
	today := s.now()
	for i := range records {
		records[i].Status = ClassifyVaccineStatus(records[i].NextDueDate, today)
	}
	return records, nil
}

// AddVaccineRecord classifies and stores the record, then recomputes the
// owning pet's coarse status as the most urgent across all of its records.
func (s *PetService) AddVaccineRecord(petID string, req *AddVaccineRecordRequest) (models.VaccineRecord, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.VaccineRecord{}, fmt.Errorf("validation failed: %w", err)
	}
	if _, ok := s.pets.GetPet(petID); !ok {
		return models.VaccineRecord{}, ErrNotFound
	}

	record := models.VaccineRecord{
		ID:          "rec-" + uuid.NewString(),
		PetID:       petID,
		VaccineName: req.VaccineName,
		DateGiven:   req.DateGiven,
		NextDueDate: req.NextDueDate,
		VetName:     req.VetName,
		Status:      ClassifyVaccineStatus(req.NextDueDate, s.now()),
	}
	s.pets.AddRecord(record)
	s.refreshPetStatus(petID)

	return record, nil
}

func (s *PetService) Recommendations(species models.PetSpecies) []models.VaccineRecommendation {
	var out []models.VaccineRecommendation
	for _, r := range s.recommendations {
		if r.Species == species {
			out = append(out, r)
		}
	}
	return out
}

// refreshPetStatus takes the most urgent classification over every record
// the pet has, not just the newest one.
func (s *PetService) refreshPetStatus(petID string) {
	today := s.now()
	status := models.VaccinationUpToDate
	for _, r := range s.pets.RecordsForPet(petID) {
		switch ClassifyVaccineStatus(r.NextDueDate, today) {
		case models.VaccineStatusOverdue:
			status = models.VaccinationOverdue
		case models.VaccineStatusDueSoon:
			if status != models.VaccinationOverdue {
				status = models.VaccinationDueSoon
			}
		}
	}
	s.pets.SetVaccinationStatus(petID, status)
}

// truncateToDay normalizes to UTC first so a UTC-parsed due date and a local
// server clock land on the same calendar day.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
