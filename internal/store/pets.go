// internal/store/pets.go
package store

import (
	"sort"
	"sync"

	"github.com/petville/petcare-backend/internal/models"
)

// PetStore owns pets and their vaccine records. Records are append-only;
// pets are mutable through Update and through vaccination-status recompute.
type PetStore struct {
	mtx     sync.Mutex
	pets    []models.Pet
	records []models.VaccineRecord
}

func NewPetStore(pets []models.Pet, records []models.VaccineRecord) *PetStore {
	return &PetStore{pets: pets, records: records}
}

func (s *PetStore) ListPets() []models.Pet {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	out := make([]models.Pet, len(s.pets))
	copy(out, s.pets)
	return out
}

func (s *PetStore) GetPet(id string) (models.Pet, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, p := range s.pets {
		if p.ID == id {
			return p, true
		}
	}
	return models.Pet{}, false
}

func (s *PetStore) AddPet(pet models.Pet) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.pets = append(s.pets, pet)
}

func (s *PetStore) UpdatePet(pet models.Pet) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i := range s.pets {
		if s.pets[i].ID == pet.ID {
			s.pets[i] = pet
			return true
		}
	}
	return false
}

// SetVaccinationStatus updates a pet's coarse status without touching the
// rest of the record.
func (s *PetStore) SetVaccinationStatus(petID string, status models.VaccinationStatus) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i := range s.pets {
		if s.pets[i].ID == petID {
			s.pets[i].VaccinationStatus = status
			return true
		}
	}
	return false
}

// RecordsForPet returns the pet's vaccine records sorted by date given,
// newest first.
func (s *PetStore) RecordsForPet(petID string) []models.VaccineRecord {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	var out []models.VaccineRecord
	for _, r := range s.records {
		if r.PetID == petID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DateGiven.After(out[j].DateGiven)
	})
	return out
}

func (s *PetStore) AddRecord(record models.VaccineRecord) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.records = append(s.records, record)
}
