package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fennwick/TallyBot_Go/internal/logger"
	"github.com/fennwick/TallyBot_Go/internal/wager"
)

// WagerHandler handles wager-game HTTP requests
type WagerHandler struct {
	service wager.Service
}

// NewWagerHandler creates a new wager handler
func NewWagerHandler(service wager.Service) *WagerHandler {
	return &WagerHandler{service: service}
}

// GuessRequest represents a guess-a-number wager
type GuessRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
	Guess  int    `json:"guess" validate:"required,min=1,max=6"`
	Bet    int    `json:"bet" validate:"required,min=10"`
}

// CoinFlipRequest represents a coin-flip wager
type CoinFlipRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
	Choice string `json:"choice" validate:"required,coinside"`
	Bet    int    `json:"bet" validate:"required,min=10"`
}

// ReelsRequest represents a reel-spin wager; the bet is fixed server-side
type ReelsRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
}

// HandleGuess processes a guess-a-number wager
func (h *WagerHandler) HandleGuess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidBodyError)
		return
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
		return
	}

	result, err := h.service.PlayGuess(ctx, req.UserID, req.Guess, req.Bet)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		if status >= http.StatusInternalServerError {
			log.Error("Guess wager failed", "error", err, "user_id", req.UserID)
		}
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleCoinFlip processes a coin-flip wager
func (h *WagerHandler) HandleCoinFlip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req CoinFlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidBodyError)
		return
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
		return
	}

	result, err := h.service.PlayCoinFlip(ctx, req.UserID, req.Choice, req.Bet)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		if status >= http.StatusInternalServerError {
			log.Error("Coin-flip wager failed", "error", err, "user_id", req.UserID)
		}
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleReels processes a reel-spin wager
func (h *WagerHandler) HandleReels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req ReelsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidBodyError)
		return
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
		return
	}

	result, err := h.service.PlayReels(ctx, req.UserID)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		if status >= http.StatusInternalServerError {
			log.Error("Reel spin failed", "error", err, "user_id", req.UserID)
		}
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
