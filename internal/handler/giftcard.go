package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fennwick/TallyBot_Go/internal/catalog"
	"github.com/fennwick/TallyBot_Go/internal/logger"
	"github.com/fennwick/TallyBot_Go/internal/transfer"
)

// GiftCardHandler handles gift-card HTTP requests
type GiftCardHandler struct {
	service transfer.Service
	catalog *catalog.Catalog
}

// NewGiftCardHandler creates a new gift-card handler
func NewGiftCardHandler(service transfer.Service, cat *catalog.Catalog) *GiftCardHandler {
	return &GiftCardHandler{service: service, catalog: cat}
}

// RedeemRequest represents a gift-card redemption
type RedeemRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
	Kind   string `json:"kind" validate:"required,max=32"`
}

// ConvertRequest represents a convert-back of all held gift cards
type ConvertRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
}

// HandleRedeem exchanges points for a gift card
func (h *GiftCardHandler) HandleRedeem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req RedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidBodyError)
		return
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
		return
	}

	result, err := h.service.RedeemGiftCard(ctx, req.UserID, req.Kind)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		if status >= http.StatusInternalServerError {
			log.Error("Gift card redemption failed", "error", err, "user_id", req.UserID, "kind", req.Kind)
		}
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleConvert converts all held gift cards back to points
func (h *GiftCardHandler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidBodyError)
		return
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
		return
	}

	result, err := h.service.ConvertBack(ctx, req.UserID)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		if status >= http.StatusInternalServerError {
			log.Error("Gift card conversion failed", "error", err, "user_id", req.UserID)
		}
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// CatalogResponse lists the redeemable gift cards
type CatalogResponse struct {
	GiftCards map[string]catalog.Entry `json:"gift_cards"`
}

// HandleCatalog returns the gift-card catalog
func (h *GiftCardHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CatalogResponse{GiftCards: h.catalog.Entries()})
}
