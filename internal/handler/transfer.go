package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fennwick/TallyBot_Go/internal/logger"
	"github.com/fennwick/TallyBot_Go/internal/transfer"
)

// TransferRequest represents a points transfer between two users
type TransferRequest struct {
	SenderID    string `json:"sender_id" validate:"required,max=64"`
	RecipientID string `json:"recipient_id" validate:"required,max=64"`
	Amount      int    `json:"amount" validate:"required,min=1"`
}

// HandleTransfer moves points from one user to another
func HandleTransfer(service transfer.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidBodyError)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		result, err := service.Transfer(ctx, req.SenderID, req.RecipientID, req.Amount)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			if status >= http.StatusInternalServerError {
				log.Error("Transfer failed", "error", err, "sender_id", req.SenderID)
			}
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
