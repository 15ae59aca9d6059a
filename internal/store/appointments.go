// internal/store/appointments.go
package store

import (
	"sync"

	"github.com/petville/petcare-backend/internal/models"
)

type AppointmentStore struct {
	mtx          sync.Mutex
	appointments []models.Appointment
}

func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{}
}

func (s *AppointmentStore) List() []models.Appointment {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

func (s *AppointmentStore) Add(appointment models.Appointment) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.appointments = append(s.appointments, appointment)
}
