// internal/services/vet_search_client.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/petville/petcare-backend/internal/models"
)

// VetSearchClient is the one external dependency of the vet locator: a
// generative text endpoint asked for real clinics near a free-text location.
// Responses are untrusted and may be missing fields, non-JSON, or absent.
type VetSearchClient interface {
	FindNearby(ctx context.Context, locationQuery string, radiusKm int) ([]models.Vet, error)
}

// GenerativeVetClient issues one POST per search to a Gemini-style
// generateContent endpoint and parses the model's JSON answer.
type GenerativeVetClient struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
}

func NewGenerativeVetClient(apiURL, apiKey string, timeout time.Duration) *GenerativeVetClient {
	return &GenerativeVetClient{
		httpClient: &http.Client{Timeout: timeout},
		apiURL:     apiURL,
		apiKey:     apiKey,
	}
}

type generateContentRequest struct {
	Contents          []content         `json:"contents"`
	Tools             []map[string]any  `json:"tools,omitempty"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *GenerativeVetClient) FindNearby(ctx context.Context, locationQuery string, radiusKm int) ([]models.Vet, error) {
	prompt := fmt.Sprintf(
		"Find 5 real veterinary clinics in India near the location %q, along with their exact name, "+
			"address, latitude, longitude, rating (between 4.0 and 5.0), phone number (valid Indian "+
			"10-digit format), placeId, and a website URL if available. Prioritize results within a "+
			"%dkm radius. Respond with a JSON array of objects with keys id, name, address, latitude, "+
			"longitude, rating, phone, place_id, website.",
		locationQuery, radiusKm,
	)

	reqBody := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Tools:    []map[string]any{{"google_search": map[string]any{}}},
		SystemInstruction: &content{Parts: []part{{
			Text: "You are a specialized search agent. Always respond strictly in the requested JSON format based on Google Search results.",
		}}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-goog-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vet search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vet search request: unexpected status %d", resp.StatusCode)
	}

	var result generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("vet search response contained no candidates")
	}

	var vets []models.Vet
	if err := json.Unmarshal([]byte(result.Candidates[0].Content.Parts[0].Text), &vets); err != nil {
		return nil, fmt.Errorf("parse vet list: %w", err)
	}

	return vets, nil
}
