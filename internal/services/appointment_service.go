// internal/services/appointment_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/petville/petcare-backend/internal/models"
	"github.com/petville/petcare-backend/internal/store"
	"github.com/petville/petcare-backend/internal/utils"
)

var ErrAppointmentInPast = errors.New("appointment time must be in the future")

type AppointmentService struct {
	appointments *store.AppointmentStore
	pets         *store.PetStore
	now          func() time.Time
}

type BookAppointmentRequest struct {
	PetID     string    `json:"pet_id" validate:"required"`
	VetID     string    `json:"vet_id" validate:"required"`
	VetName   string    `json:"vet_name" validate:"required"`
	Scheduled time.Time `json:"scheduled" validate:"required"`
	Reason    string    `json:"reason"`
}

func NewAppointmentService(appointments *store.AppointmentStore, pets *store.PetStore) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		pets:         pets,
		now:          time.Now,
	}
}

func (s *AppointmentService) List() []models.Appointment {
	return s.appointments.List()
}

// Book validates that the pet exists and the slot is in the future, then
// records the appointment. No availability check is made against the vet.
func (s *AppointmentService) Book(req *BookAppointmentRequest) (models.Appointment, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.Appointment{}, fmt.Errorf("validation failed: %w", err)
	}

	pet, ok := s.pets.GetPet(req.PetID)
	if !ok {
		return models.Appointment{}, ErrNotFound
	}
	if !req.Scheduled.After(s.now()) {
		return models.Appointment{}, ErrAppointmentInPast
	}

	appointment := models.Appointment{
		ID:        "appt-" + uuid.NewString(),
		PetID:     pet.ID,
		PetName:   pet.Name,
		VetID:     req.VetID,
		VetName:   req.VetName,
		Scheduled: req.Scheduled,
		Reason:    req.Reason,
		CreatedAt: s.now(),
	}
	s.appointments.Add(appointment)
	return appointment, nil
}
