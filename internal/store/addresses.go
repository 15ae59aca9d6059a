// internal/store/addresses.go
package store

import (
	"sync"

	"github.com/petville/petcare-backend/internal/models"
)

// AddressStore owns the user's delivery addresses. The single-default
// invariant is enforced here, on the write path.
type AddressStore struct {
	mtx       sync.Mutex
	addresses []models.Address
}

func NewAddressStore(seed []models.Address) *AddressStore {
	return &AddressStore{addresses: seed}
}

func (s *AddressStore) List() []models.Address {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	out := make([]models.Address, len(s.addresses))
	copy(out, s.addresses)
	return out
}

func (s *AddressStore) Get(id string) (models.Address, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, a := range s.addresses {
		if a.ID == id {
			return a, true
		}
	}
	return models.Address{}, false
}

// Default returns the default address, if any.
func (s *AddressStore) Default() (models.Address, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, a := range s.addresses {
		if a.IsDefault {
			return a, true
		}
	}
	return models.Address{}, false
}

func (s *AddressStore) Add(address models.Address) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if address.IsDefault {
		s.clearDefaultLocked()
	}
	s.addresses = append(s.addresses, address)
}

func (s *AddressStore) Update(address models.Address) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i := range s.addresses {
		if s.addresses[i].ID == address.ID {
			if address.IsDefault {
				s.clearDefaultLocked()
			}
			s.addresses[i] = address
			return true
		}
	}
	return false
}

// Delete removes the address; when the default is deleted the first
// remaining address is promoted so the user never loses a default entirely.
func (s *AddressStore) Delete(id string) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i := range s.addresses {
		if s.addresses[i].ID == id {
			wasDefault := s.addresses[i].IsDefault
			s.addresses = append(s.addresses[:i], s.addresses[i+1:]...)
			if wasDefault && len(s.addresses) > 0 {
				s.addresses[0].IsDefault = true
			}
			return true
		}
	}
	return false
}

func (s *AddressStore) clearDefaultLocked() {
	for i := range s.addresses {
		s.addresses[i].IsDefault = false
	}
}
