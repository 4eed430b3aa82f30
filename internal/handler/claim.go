package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fennwick/TallyBot_Go/internal/logger"
	"github.com/fennwick/TallyBot_Go/internal/reward"
)

// ClaimRequest represents a daily claim request
type ClaimRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
}

// HandleClaimDaily processes a daily claim for a user
func HandleClaimDaily(service reward.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		var req ClaimRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidBodyError)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		result, err := service.ClaimDaily(ctx, req.UserID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			if status >= http.StatusInternalServerError {
				log.Error("Daily claim failed", "error", err, "user_id", req.UserID)
			}
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
