// internal/models/common.go
package models

// Enums

type ProductCategory string

const (
	CategoryFood        ProductCategory = "Food"
	CategoryToys        ProductCategory = "Toys"
	CategoryMedicine    ProductCategory = "Medicine"
	CategoryGrooming    ProductCategory = "Grooming"
	CategoryAccessories ProductCategory = "Accessories"
)

type PetType string

const (
	PetTypeDog PetType = "Dog"
	PetTypeCat PetType = "Cat"
	PetTypeAll PetType = "All"
)

type PetSpecies string

const (
	SpeciesDog   PetSpecies = "Dog"
	SpeciesCat   PetSpecies = "Cat"
	SpeciesBird  PetSpecies = "Bird"
	SpeciesOther PetSpecies = "Other"
)

type OrderStatus string

const (
	OrderStatusOrdered        OrderStatus = "Ordered"
	OrderStatusPacked         OrderStatus = "Packed"
	OrderStatusShipped        OrderStatus = "Shipped"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusCancelled      OrderStatus = "Cancelled"
)

// StageSequence is the fixed fulfillment progression used for timeline
// rendering. Cancelled sits outside the sequence as a terminal escape.
var StageSequence = []OrderStatus{
	OrderStatusOrdered,
	OrderStatusPacked,
	OrderStatusShipped,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "Cash"
	PaymentMethodUPI  PaymentMethod = "UPI"
	PaymentMethodCard PaymentMethod = "Card"
)

type VaccineStatus string

const (
	VaccineStatusCompleted VaccineStatus = "Completed"
	VaccineStatusDueSoon   VaccineStatus = "Due Soon"
	VaccineStatusOverdue   VaccineStatus = "Overdue"
)

type VaccinationStatus string

const (
	VaccinationUpToDate VaccinationStatus = "up-to-date"
	VaccinationDueSoon  VaccinationStatus = "due-soon"
	VaccinationOverdue  VaccinationStatus = "overdue"
)

// ResultSource tells callers whether vet search results came from the live
// lookup or from the static fallback list.
type ResultSource string

const (
	ResultSourceLive     ResultSource = "live"
	ResultSourceFallback ResultSource = "fallback"
)
