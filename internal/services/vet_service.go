// internal/services/vet_service.go
package services

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/petville/petcare-backend/internal/models"
)

// VetSearchState tracks the locator's lifecycle:
// Idle -> Locating -> (Found | Failed) -> Idle.
type VetSearchState string

const (
	VetSearchIdle     VetSearchState = "idle"
	VetSearchLocating VetSearchState = "locating"
	VetSearchFound    VetSearchState = "found"
	VetSearchFailed   VetSearchState = "failed"
)

// DefaultLocationQuery is searched when the caller supplies no location at
// all, so the user is never left without a result set.
const DefaultLocationQuery = "Delhi, India"

// VetService resolves a location query to coordinates, issues one external
// lookup, and degrades to static fallback data on any failure. Failures are
// masked from the caller; the result's Source field is the only trace.
type VetService struct {
	client VetSearchClient

	mtx       sync.Mutex
	state     VetSearchState
	lastState VetSearchState
}

func NewVetService(client VetSearchClient) *VetService {
	return &VetService{client: client, state: VetSearchIdle, lastState: VetSearchIdle}
}

// State returns the current lifecycle state and the outcome of the last
// completed search.
func (s *VetService) State() (current, last VetSearchState) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.state, s.lastState
}

// Search never returns an error: a failed live lookup falls back to the
// static list keyed by the query. One request, no retry.
func (s *VetService) Search(ctx context.Context, query string, radiusKm int) models.VetSearchResult {
	if query == "" {
		query = DefaultLocationQuery
	}
	if radiusKm <= 0 {
		radiusKm = 5
	}

	s.setState(VetSearchLocating)
	center := geocodeQuery(query)

	vets, err := s.client.FindNearby(ctx, query, radiusKm)
	if err != nil || len(vets) == 0 {
		if err == nil {
			err = fmt.Errorf("empty result list")
		}
		logrus.WithError(err).WithField("query", query).Warn("Vet search failed, serving fallback data")
		s.finish(VetSearchFailed)
		return models.VetSearchResult{
			Query:  query,
			Center: center,
			Source: models.ResultSourceFallback,
			Vets:   fallbackVetsFor(query),
		}
	}

	for i := range vets {
		if vets[i].ID == "" {
			vets[i].ID = fmt.Sprintf("api-vet-%d", i)
		}
		// The model does not know distance or opening hours; mock them the
		// same way the demo data does.
		vets[i].Distance = math.Round(rand.Float64()*float64(radiusKm)*10) / 10
		vets[i].OpenNow = rand.Intn(2) == 0
	}

	s.finish(VetSearchFound)
	return models.VetSearchResult{
		Query:  query,
		Center: center,
		Source: models.ResultSourceLive,
		Vets:   vets,
	}
}

// ApplyFilters is a pure client-side filter plus ascending distance sort.
func ApplyFilters(vets []models.Vet, openNowOnly bool, minRating float64) []models.Vet {
	out := make([]models.Vet, 0, len(vets))
	for _, v := range vets {
		if openNowOnly && !v.OpenNow {
			continue
		}
		if v.Rating < minRating {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out
}

func (s *VetService) setState(state VetSearchState) {
	s.mtx.Lock()
	s.state = state
	s.mtx.Unlock()
}

func (s *VetService) finish(outcome VetSearchState) {
	s.mtx.Lock()
	s.lastState = outcome
	s.state = VetSearchIdle
	s.mtx.Unlock()
}
