// internal/services/vet_search_client_test.go
package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func geminiAnswer(t *testing.T, vetsJSON string) string {
	t.Helper()
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": vetsJSON}}}},
		},
	}
	raw, err := json.Marshal(resp)
	assert.NoError(t, err)
	return string(raw)
}

func TestGenerativeVetClientParsesResponse(t *testing.T) {
	vetsJSON := `[{"id":"v1","name":"City Vet","address":"MG Road","latitude":28.7,"longitude":77.1,"rating":4.6,"phone":"9876543210","place_id":"P1"}]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "contents")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(geminiAnswer(t, vetsJSON)))
	}))
	defer server.Close()

	client := NewGenerativeVetClient(server.URL, "test-key", 5*time.Second)
	vets, err := client.FindNearby(context.Background(), "Delhi", 5)

	assert.NoError(t, err)
	assert.Len(t, vets, 1)
	assert.Equal(t, "City Vet", vets[0].Name)
	assert.Equal(t, 4.6, vets[0].Rating)
}

func TestGenerativeVetClientToleratesMissingFields(t *testing.T) {
	// Only a name; every other field absent.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geminiAnswer(t, `[{"name":"Sparse Clinic"}]`)))
	}))
	defer server.Close()

	client := NewGenerativeVetClient(server.URL, "", 5*time.Second)
	vets, err := client.FindNearby(context.Background(), "Delhi", 5)

	assert.NoError(t, err)
	assert.Len(t, vets, 1)
	assert.Empty(t, vets[0].ID)
}

func TestGenerativeVetClientErrorPaths(t *testing.T) {
	t.Run("non-json answer", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(geminiAnswer(t, "sorry, I could not find any clinics")))
		}))
		defer server.Close()

		client := NewGenerativeVetClient(server.URL, "", 5*time.Second)
		_, err := client.FindNearby(context.Background(), "Delhi", 5)
		assert.Error(t, err)
	})

	t.Run("no candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		client := NewGenerativeVetClient(server.URL, "", 5*time.Second)
		_, err := client.FindNearby(context.Background(), "Delhi", 5)
		assert.Error(t, err)
	})

	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewGenerativeVetClient(server.URL, "", 5*time.Second)
		_, err := client.FindNearby(context.Background(), "Delhi", 5)
		assert.Error(t, err)
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		client := NewGenerativeVetClient("http://127.0.0.1:1", "", time.Second)
		_, err := client.FindNearby(context.Background(), "Delhi", 5)
		assert.Error(t, err)
	})
}
