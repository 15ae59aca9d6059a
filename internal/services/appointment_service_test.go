// internal/services/appointment_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/petville/petcare-backend/internal/store"
)

func newAppointmentFixture() (*AppointmentService, *store.AppointmentStore) {
	appointments := store.NewAppointmentStore()
	svc := NewAppointmentService(appointments, store.NewPetStore(store.SeedPets(), nil))
	svc.now = func() time.Time { return testToday }
	return svc, appointments
}

func validBookingRequest() *BookAppointmentRequest {
	return &BookAppointmentRequest{
		PetID:     "pet-001",
		VetID:     "vet-101",
		VetName:   "Dr. Pet's Multispecialty Hospital",
		Scheduled: testToday.AddDate(0, 0, 2),
		Reason:    "Annual checkup",
	}
}

func TestBookAppointment(t *testing.T) {
	svc, appointments := newAppointmentFixture()

	appointment, err := svc.Book(validBookingRequest())
	assert.NoError(t, err)

	assert.NotEmpty(t, appointment.ID)
	assert.Equal(t, "Nova", appointment.PetName)
	assert.Equal(t, testToday, appointment.CreatedAt)
	assert.Len(t, appointments.List(), 1)
}

func TestBookAppointmentUnknownPet(t *testing.T) {
	svc, appointments := newAppointmentFixture()

	req := validBookingRequest()
	req.PetID = "pet-404"

	_, err := svc.Book(req)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, appointments.List())
}

func TestBookAppointmentRejectsPastSlot(t *testing.T) {
	svc, appointments := newAppointmentFixture()

	req := validBookingRequest()
	req.Scheduled = testToday.AddDate(0, 0, -1)
	_, err := svc.Book(req)
	assert.ErrorIs(t, err, ErrAppointmentInPast)

	// The current instant is not "in the future" either.
	req.Scheduled = testToday
	_, err = svc.Book(req)
	assert.ErrorIs(t, err, ErrAppointmentInPast)

	assert.Empty(t, appointments.List())
}

func TestBookAppointmentRejectsMissingFields(t *testing.T) {
	svc, _ := newAppointmentFixture()

	req := validBookingRequest()
	req.VetName = ""

	_, err := svc.Book(req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
