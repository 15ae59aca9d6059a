// internal/services/address_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/petville/petcare-backend/internal/models"
	"github.com/petville/petcare-backend/internal/store"
	"github.com/petville/petcare-backend/internal/utils"
)

type AddressService struct {
	addresses *store.AddressStore
}

type AddressRequest struct {
	FullName  string  `json:"full_name" validate:"required"`
	Phone     string  `json:"phone" validate:"required,phone10"`
	Street    string  `json:"street" validate:"required"`
	City      string  `json:"city" validate:"required"`
	State     string  `json:"state" validate:"required"`
	ZipCode   string  `json:"zip_code" validate:"required"`
	IsDefault bool    `json:"is_default"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewAddressService(addresses *store.AddressStore) *AddressService {
	return &AddressService{addresses: addresses}
}

func (s *AddressService) List() []models.Address {
	return s.addresses.List()
}

func (s *AddressService) Default() (models.Address, bool) {
	return s.addresses.Default()
}

func (s *AddressService) Add(req *AddressRequest) (models.Address, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.Address{}, fmt.Errorf("validation failed: %w", err)
	}

	address := models.Address{
		ID:        "addr-" + uuid.NewString(),
		FullName:  req.FullName,
		Phone:     req.Phone,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		IsDefault: req.IsDefault,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	s.addresses.Add(address)
	return address, nil
}

func (s *AddressService) Update(id string, req *AddressRequest) (models.Address, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.Address{}, fmt.Errorf("validation failed: %w", err)
	}

	address := models.Address{
		ID:        id,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		IsDefault: req.IsDefault,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if !s.addresses.Update(address) {
		return models.Address{}, ErrNotFound
	}
	return address, nil
}

// SetDefault marks the address as the single default.
func (s *AddressService) SetDefault(id string) (models.Address, error) {
	address, ok := s.addresses.Get(id)
	if !ok {
		return models.Address{}, ErrNotFound
	}
	address.IsDefault = true
	s.addresses.Update(address)
	return address, nil
}

func (s *AddressService) Delete(id string) error {
	if !s.addresses.Delete(id) {
		return ErrNotFound
	}
	return nil
}
