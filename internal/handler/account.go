package handler

import (
	"net/http"
	"strconv"

	"github.com/fennwick/TallyBot_Go/internal/store"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 50
)

// HandleGetAccount returns the account for a user, creating it if new
func HandleGetAccount(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			respondError(w, http.StatusBadRequest, "user_id is required")
			return
		}

		acct := st.GetOrCreateAccount(userID)
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"user_id": userID,
			"account": acct,
		})
	}
}

// HandleLeaderboard returns the top balances, richest first
func HandleLeaderboard(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultLeaderboardLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				respondError(w, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			limit = parsed
		}
		if limit > maxLeaderboardLimit {
			limit = maxLeaderboardLimit
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"entries": st.Leaderboard(limit),
		})
	}
}
