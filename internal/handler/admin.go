package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fennwick/TallyBot_Go/internal/logger"
	"github.com/fennwick/TallyBot_Go/internal/transfer"
)

// AdjustBalanceRequest represents an operator balance adjustment
type AdjustBalanceRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
	Amount int    `json:"amount" validate:"required"`
}

// AdjustBalanceResponse reports the balance after the adjustment
type AdjustBalanceResponse struct {
	UserID  string `json:"user_id"`
	Amount  int    `json:"amount"`
	Balance int    `json:"balance"`
}

// HandleAdjustBalance applies an operator-initiated balance change
func HandleAdjustBalance(service transfer.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		var req AdjustBalanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidBodyError)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		balance, err := service.AdjustBalance(ctx, req.UserID, req.Amount)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			if status >= http.StatusInternalServerError {
				log.Error("Balance adjustment failed", "error", err, "user_id", req.UserID)
			}
			respondError(w, status, msg)
			return
		}

		log.Info("Balance adjusted", "user_id", req.UserID, "amount", req.Amount, "balance", balance)
		respondJSON(w, http.StatusOK, AdjustBalanceResponse{
			UserID:  req.UserID,
			Amount:  req.Amount,
			Balance: balance,
		})
	}
}
