// internal/services/vet_fallback.go
package services

import (
	"strings"

	"github.com/petville/petcare-backend/internal/models"
)

// Static fallback data returned when the live vet search cannot complete.

var fallbackVets = []models.Vet{
	{
		ID: "vet-101", Name: "Dr. Pet's Multispecialty Hospital", Address: "1.2 km away, Mumbai",
		Latitude: 19.0765, Longitude: 72.8780, Rating: 4.8, Phone: "9876543211",
		Distance: 1.2, OpenNow: true, PlaceID: "ChIJjQkQJk4R5zsR3k2U", Website: "https://drpetshospital.in/",
	},
	{
		ID: "vet-103", Name: "Happy Paws Veterinary (Jalandhar)", Address: "4.1 km away, Jalandhar",
		Latitude: 31.3270, Longitude: 75.5780, Rating: 4.1, Phone: "9876543213",
		Distance: 4.1, OpenNow: true, PlaceID: "ChIJKgkQJk4R5zsR3k2U", Website: "https://happypawsvet.in/",
	},
}

var fallbackVetsPatna = []models.Vet{
	{
		ID: "vet-201", Name: "Patna Pet Wellness Center", Address: "1.0 km, Boring Road, Patna",
		Latitude: 25.5945, Longitude: 85.1380, Rating: 4.7, Phone: "9123456701",
		Distance: 1.0, OpenNow: true, PlaceID: "PATNA101", Website: "https://patnawellness.in/",
	},
	{
		ID: "vet-202", Name: "Kankarbagh Veterinary Clinic", Address: "4.5 km, Kankarbagh, Patna",
		Latitude: 25.6000, Longitude: 85.1500, Rating: 4.2, Phone: "9123456702",
		Distance: 4.5, OpenNow: false, PlaceID: "PATNA102", Website: "https://kankarbaghvet.in/",
	},
}

// fallbackVetsFor keys the fallback list off the query: a query mentioning
// Patna gets the Patna list, anything else the generic one.
func fallbackVetsFor(query string) []models.Vet {
	if strings.Contains(strings.ToLower(query), "patna") {
		out := make([]models.Vet, len(fallbackVetsPatna))
		copy(out, fallbackVetsPatna)
		return out
	}
	out := make([]models.Vet, len(fallbackVets))
	copy(out, fallbackVets)
	return out
}

// geocodeQuery resolves approximate coordinates by substring match over a
// small set of known city names. Placeholder for real geocoding.
func geocodeQuery(query string) models.Coordinates {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "patna"):
		return models.Coordinates{Latitude: 25.5941, Longitude: 85.1376}
	case strings.Contains(q, "jalandhar"), strings.Contains(q, "phagwara"), strings.Contains(q, "punjab"):
		return models.Coordinates{Latitude: 31.3260, Longitude: 75.5762}
	case strings.Contains(q, "delhi"):
		return models.Coordinates{Latitude: 28.7041, Longitude: 77.1025}
	}
	return models.Coordinates{Latitude: 19.0760, Longitude: 72.8777}
}
