// internal/store/addresses_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petville/petcare-backend/internal/models"
)

func TestAddressStoreSingleDefault(t *testing.T) {
	s := NewAddressStore(SeedAddresses())

	s.Add(models.Address{ID: "addr-003", FullName: "New", IsDefault: true})

	defaults := 0
	for _, a := range s.List() {
		if a.IsDefault {
			defaults++
			assert.Equal(t, "addr-003", a.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestAddressStoreDeleteDefaultPromotesFirst(t *testing.T) {
	s := NewAddressStore(SeedAddresses())

	assert.True(t, s.Delete("addr-001"))

	def, ok := s.Default()
	assert.True(t, ok)
	assert.Equal(t, "addr-002", def.ID)
}

func TestAddressStoreDeleteUnknown(t *testing.T) {
	s := NewAddressStore(SeedAddresses())
	assert.False(t, s.Delete("addr-999"))
	assert.Len(t, s.List(), 2)
}

func TestAddressStoreUpdateDefaultSwitch(t *testing.T) {
	s := NewAddressStore(SeedAddresses())

	addr, _ := s.Get("addr-002")
	addr.IsDefault = true
	assert.True(t, s.Update(addr))

	def, ok := s.Default()
	assert.True(t, ok)
	assert.Equal(t, "addr-002", def.ID)
}
