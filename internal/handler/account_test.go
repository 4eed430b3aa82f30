package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennwick/TallyBot_Go/internal/domain"
)

func TestHandleGetAccount(t *testing.T) {
	st := newTestStore()
	seedBalance(t, st, "alice", 250)
	h := HandleGetAccount(st)

	rec := doJSONRequest(t, h, "GET", "/api/v1/account?user_id=alice", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		UserID  string         `json:"user_id"`
		Account domain.Account `json:"account"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.UserID)
	assert.Equal(t, 250, resp.Account.Balance)
}

func TestHandleGetAccountMissingID(t *testing.T) {
	h := HandleGetAccount(newTestStore())

	rec := doJSONRequest(t, h, "GET", "/api/v1/account", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLeaderboard(t *testing.T) {
	st := newTestStore()
	seedBalance(t, st, "alice", 300)
	seedBalance(t, st, "bob", 100)
	seedBalance(t, st, "carol", 200)
	h := HandleLeaderboard(st)

	rec := doJSONRequest(t, h, "GET", "/api/v1/leaderboard?limit=2", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Entries []domain.LeaderboardEntry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "alice", resp.Entries[0].UserID)
	assert.Equal(t, "carol", resp.Entries[1].UserID)
}

func TestHandleLeaderboardBadLimit(t *testing.T) {
	h := HandleLeaderboard(newTestStore())

	rec := doJSONRequest(t, h, "GET", "/api/v1/leaderboard?limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
