// internal/store/seed.go
package store

import (
	"time"

	"github.com/petville/petcare-backend/internal/models"
)

// Seed data mirrors the demo dataset the stores reset to on every restart.

func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID: 1, Name: "Drools Chicken Puppy Food", Category: models.CategoryFood, PetType: models.PetTypeDog, Price: 799,
			Description: "Rich in protein and calcium for healthy puppy growth.",
			WhyNeed:     "Promotes muscle development, strengthens bones, and supports healthy digestion with added prebiotics. Essential for the first year of growth.",
			ImageURL:    "https://images.pexels.com/photos/1792613/pexels-photo-1792613.jpeg?auto=compress&cs=tinysrgb&w=1600",
			Rating:      4.8, Reviews: 150, Tag: "Puppy Essential",
		},
		{
			ID: 2, Name: "Durable Squeaky Bone", Category: models.CategoryToys, PetType: models.PetTypeDog, Price: 499,
			Description: "Built for power chewers. Floats and is non-toxic.",
			WhyNeed:     "Satisfies natural chewing instincts, reduces anxiety, and keeps teeth clean. Perfect for interactive fetch games and safe for strong jaws.",
			ImageURL:    "https://images.pexels.com/photos/2257252/pexels-photo-2253275.jpeg?auto=compress&cs=tinysrgb&w=1600",
			Rating:      4.5, Reviews: 85, Tag: "Aggressive Chewer",
		},
		{
			ID: 5, Name: "Luxury Cat Tower", Category: models.CategoryAccessories, PetType: models.PetTypeCat, Price: 3499,
			Description: "Multi-level scratching post and comfortable sleeping areas.",
			WhyNeed:     "Provides essential vertical territory, encourages exercise, and protects furniture by giving a dedicated scratching surface. Great for multi-cat households.",
			ImageURL:    "https://images.pexels.com/photos/207851/pexels-photo-207851.jpeg?auto=compress&cs=tinysrgb&w=1600",
			Rating:      4.6, Reviews: 55, Tag: "Cat's Haven",
		},
		{
			ID: 8, Name: "Beef Jerky Training Treats", Category: models.CategoryFood, PetType: models.PetTypeDog, Price: 549,
			Description: "High-value, single-ingredient reward for training.",
			WhyNeed:     "Motivates pets during training sessions and is easily digestible. High-protein to support sustained energy levels for active dogs.",
			ImageURL:    "https://images.pexels.com/photos/3373944/pexels-photo-3373944.jpeg?auto=compress&cs=tinysrgb&w=1600",
			Rating:      4.9, Reviews: 300, Tag: "Training Reward",
		},
	}
}

func SeedUser() models.User {
	return models.User{
		ID: "user-001", Name: "Riya Sharma", Email: "riya.sharma@example.com", Phone: "9876543210",
		ProfileImage:     "https://images.pexels.com/photos/3769021/pexels-photo-3769021.jpeg?auto=compress&cs=tinysrgb&w=800",
		JoinedDate:       time.Date(2023, 8, 15, 0, 0, 0, 0, time.UTC),
		LoyaltyPoints:    1250,
		PreferredPetType: models.PetTypeDog,
	}
}

func SeedPets() []models.Pet {
	return []models.Pet{
		{
			ID: "pet-001", Name: "Nova", Species: models.SpeciesDog, Breed: "Golden Retriever", Age: 3, Gender: "Female",
			HealthNotes: "Allergic to chicken proteins.",
			Photo:       "https://images.pexels.com/photos/2253275/pexels-photo-2253275.jpeg?auto=compress&cs=tinysrgb&w=800",
			VaccinationStatus: models.VaccinationUpToDate,
		},
		{
			ID: "pet-002", Name: "Milo", Species: models.SpeciesCat, Breed: "Persian", Age: 1, Gender: "Male",
			HealthNotes: "Needs daily brushing for coat health.",
			Photo:       "https://images.pexels.com/photos/45201/kitty-cat-kitten-pet-45201.jpeg?auto=compress&cs=tinysrgb&w=800",
			VaccinationStatus: models.VaccinationDueSoon,
		},
	}
}

func SeedAddresses() []models.Address {
	return []models.Address{
		{
			ID: "addr-001", FullName: "Riya Sharma", Phone: "9876543210",
			Street: "12, Blossom Lane, Apartment #4B", City: "Petville", State: "Maharashtra", ZipCode: "400001",
			IsDefault: true, Latitude: 19.0760, Longitude: 72.8777,
		},
		{
			ID: "addr-002", FullName: "Riya Sharma (Office)", Phone: "9999999999",
			Street: "Tower 5, Tech Park, Office 101", City: "Business City", State: "Maharashtra", ZipCode: "400002",
			IsDefault: false, Latitude: 19.0800, Longitude: 72.9000,
		},
	}
}

func SeedOrders(now time.Time) []models.Order {
	return []models.Order{
		{
			ID: "ORD-7711",
			Lines: []models.OrderLine{
				{ProductID: 8, Name: "Beef Jerky Training Treats", ImageURL: "...", Quantity: 3},
			},
			Status:           models.OrderStatusDelivered,
			OrderDate:        time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			ExpectedDelivery: now.AddDate(0, 0, -7),
			Total:            1647.00,
			TrackingID:       "TRK-990011-IND",
		},
		{
			ID: "ORD-9001",
			Lines: []models.OrderLine{
				{ProductID: 1, Name: "Drools Chicken Puppy Food", ImageURL: "...", Quantity: 2},
			},
			Status:           models.OrderStatusOutForDelivery,
			OrderDate:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			ExpectedDelivery: now.AddDate(0, 0, 1),
			Total:            2097.00,
			TrackingID:       "TRK-245890-IND",
		},
	}
}

func SeedVaccineRecords() []models.VaccineRecord {
	return []models.VaccineRecord{
		{
			ID: "rec-001", PetID: "pet-001", VaccineName: "Rabies",
			DateGiven:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			NextDueDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
			VetName:     "Dr. Pet's Hospital", Status: models.VaccineStatusCompleted,
		},
		{
			ID: "rec-003", PetID: "pet-001", VaccineName: "Bordetella",
			DateGiven:   time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			NextDueDate: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			VetName:     "Dr. Pet's Hospital", Status: models.VaccineStatusDueSoon,
		},
		{
			ID: "rec-004", PetID: "pet-002", VaccineName: "FVRCP (Annual)",
			DateGiven:   time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC),
			NextDueDate: time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
			VetName:     "Local Vet", Status: models.VaccineStatusOverdue,
		},
	}
}

func SeedVaccineRecommendations() []models.VaccineRecommendation {
	return []models.VaccineRecommendation{
		{Name: "Rabies", Species: models.SpeciesDog, Frequency: "Annually", AgeStart: "3 months", WhyNeeded: "Prevents a fatal viral disease transferable to humans. Mandatory in many states."},
		{Name: "DHLPP", Species: models.SpeciesDog, Frequency: "Annually", AgeStart: "6-8 weeks", WhyNeeded: "Core vaccine protecting against Distemper, Hepatitis, Leptospirosis, Parainfluenza, and Parvovirus."},
		{Name: "FVRCP", Species: models.SpeciesCat, Frequency: "Annually", AgeStart: "6-8 weeks", WhyNeeded: "Core vaccine protecting against Feline Viral Rhinotracheitis, Calicivirus, and Panleukopenia."},
		{Name: "FeLV", Species: models.SpeciesCat, Frequency: "Annually", AgeStart: "9 weeks", WhyNeeded: "Feline Leukemia Virus. Highly recommended for cats who go outdoors."},
	}
}
