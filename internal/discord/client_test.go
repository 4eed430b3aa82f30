package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennwick/TallyBot_Go/internal/domain"
)

func TestClaimDaily(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/claim", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req["user_id"])

		json.NewEncoder(w).Encode(domain.ClaimResult{
			UserID: "alice", Reward: 110, Streak: 1, Multiplier: 1.1, Balance: 110,
		})
	}))
	defer ts.Close()

	client := NewAPIClient(ts.URL, "secret")
	result, err := client.ClaimDaily("alice")
	require.NoError(t, err)
	assert.Equal(t, 110, result.Reward)
	assert.Equal(t, 1, result.Streak)
}

func TestClaimDailyAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "daily claim on cooldown: 4h3m remaining",
		})
	}))
	defer ts.Close()

	client := NewAPIClient(ts.URL, "secret")
	_, err := client.ClaimDaily("alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "daily claim on cooldown")
}

func TestGetLeaderboard(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/leaderboard", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"entries": []domain.LeaderboardEntry{
				{UserID: "alice", Balance: 300},
				{UserID: "bob", Balance: 100},
			},
		})
	}))
	defer ts.Close()

	client := NewAPIClient(ts.URL, "secret")
	entries, err := client.GetLeaderboard(5)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "alice", entries[0].UserID)
}

func TestDoRequestRetriesServerErrors(t *testing.T) {
	attempts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(domain.ClaimResult{UserID: "alice", Reward: 100, Balance: 100})
	}))
	defer ts.Close()

	client := NewAPIClient(ts.URL, "secret")
	result, err := client.ClaimDaily("alice")
	require.NoError(t, err)
	assert.Equal(t, 100, result.Reward)
	assert.Equal(t, 3, attempts)
}
