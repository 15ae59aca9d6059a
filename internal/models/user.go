// internal/models/user.go
package models

import "time"

type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	ProfileImage     string    `json:"profile_image"`
	JoinedDate       time.Time `json:"joined_date"`
	LoyaltyPoints    int       `json:"loyalty_points"`
	PreferredPetType PetType   `json:"preferred_pet_type"`
}
