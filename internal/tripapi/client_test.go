package tripapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbud/internal/types"
)

func parisRequest() types.TripRequest {
	return types.TripRequest{
		City:        "Paris",
		Interests:   []string{"food", "culture"},
		Duration:    3,
		Budget:      types.BudgetMedium,
		TravelStyle: types.StyleBalanced,
	}
}

func TestRecommendSendsRequestAndDecodes(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/recommendations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"city":"Paris","summary":"3 great days","recommendations":[
			{"category":"food","name":"Le Cafe","description":"...","price_range":"$$","estimated_time":"1h","reason":"popular"},
			{"category":"spa","name":"Bains","description":"","price_range":"$$$","estimated_time":"2h","reason":"relax"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	resp, err := c.Recommend(context.Background(), parisRequest())
	require.NoError(t, err)

	assert.Equal(t, "Paris", got["city"])
	assert.Equal(t, []any{"food", "culture"}, got["interests"])
	assert.Equal(t, float64(3), got["duration"])
	assert.Equal(t, "medium", got["budget"])
	assert.Equal(t, "balanced", got["travel_style"])

	assert.Equal(t, "3 great days", resp.Summary)
	require.Len(t, resp.Recommendations, 2)
	assert.Equal(t, "Le Cafe", resp.Recommendations[0].Name)
	assert.Equal(t, types.Category("spa"), resp.Recommendations[1].Category)
}

func TestRecommendFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		is      error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			is: ErrUnexpectedStatus,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			is: ErrUnexpectedStatus,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"city":`))
			},
		},
		{
			name: "null body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`null`))
			},
			is: ErrInvalidResponse,
		},
		{
			name: "empty object",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			},
			is: ErrInvalidResponse,
		},
		{
			name: "missing recommendations",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"city":"Paris"}`))
			},
			is: ErrInvalidResponse,
		},
		{
			name: "recommendations not a list",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"city":"Paris","summary":"","recommendations":{}}`))
			},
			is: ErrInvalidResponse,
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewClient(srv.URL, time.Second).Recommend(context.Background(), parisRequest())
			require.Error(t, err)
			if tt.is != nil {
				assert.True(t, errors.Is(err, tt.is), "got %v", err)
			}
		})
	}
}

func TestRecommendNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).Recommend(context.Background(), parisRequest())
	assert.Error(t, err)
}

func TestNewClientDefaultsBaseURL(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, NewClient("  ", time.Second).baseURL)
}
