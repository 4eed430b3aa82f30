package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennwick/TallyBot_Go/internal/domain"
	"github.com/fennwick/TallyBot_Go/internal/transfer"
)

func TestHandleRedeem(t *testing.T) {
	st := newTestStore()
	seedBalance(t, st, "alice", 600)
	cat := newTestCatalog(t)
	h := NewGiftCardHandler(transfer.NewService(st, cat, nopFlusher{}), cat)

	rec := doJSONRequest(t, h.HandleRedeem, "POST", "/api/v1/giftcard/redeem", RedeemRequest{
		UserID: "alice",
		Kind:   "steam",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.RedeemResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 500, result.Cost)
	assert.Equal(t, 100, result.Balance)
}

func TestHandleRedeemErrors(t *testing.T) {
	st := newTestStore()
	seedBalance(t, st, "alice", 100)
	cat := newTestCatalog(t)
	h := NewGiftCardHandler(transfer.NewService(st, cat, nopFlusher{}), cat)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Unknown kind",
			body:           RedeemRequest{UserID: "alice", Kind: "xbox"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgUnknownGiftCardError,
		},
		{
			name:           "Insufficient funds",
			body:           RedeemRequest{UserID: "alice", Kind: "steam"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNotEnoughPointsError,
		},
		{
			name:           "Invalid JSON",
			body:           "not json",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidBodyError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSONRequest(t, h.HandleRedeem, "POST", "/api/v1/giftcard/redeem", tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleConvert(t *testing.T) {
	st := newTestStore()
	seedBalance(t, st, "alice", 1000)
	cat := newTestCatalog(t)
	svc := transfer.NewService(st, cat, nopFlusher{})
	h := NewGiftCardHandler(svc, cat)

	redeem := doJSONRequest(t, h.HandleRedeem, "POST", "/api/v1/giftcard/redeem", RedeemRequest{
		UserID: "alice",
		Kind:   "spotify",
	})
	require.Equal(t, http.StatusOK, redeem.Code)

	rec := doJSONRequest(t, h.HandleConvert, "POST", "/api/v1/giftcard/convert", ConvertRequest{UserID: "alice"})
	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.ConvertResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.CardsConverted)
	assert.Equal(t, 320, result.Refund) // floor(400 * 0.8)
	assert.Equal(t, 920, result.Balance)
}

func TestHandleConvertNothingHeld(t *testing.T) {
	st := newTestStore()
	cat := newTestCatalog(t)
	h := NewGiftCardHandler(transfer.NewService(st, cat, nopFlusher{}), cat)

	rec := doJSONRequest(t, h.HandleConvert, "POST", "/api/v1/giftcard/convert", ConvertRequest{UserID: "alice"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgNothingToConvertError)
}

func TestHandleCatalog(t *testing.T) {
	st := newTestStore()
	cat := newTestCatalog(t)
	h := NewGiftCardHandler(transfer.NewService(st, cat, nopFlusher{}), cat)

	rec := doJSONRequest(t, h.HandleCatalog, "GET", "/api/v1/giftcard/catalog", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.GiftCards, 2)
	assert.Equal(t, 500, resp.GiftCards["steam"].Cost)
}
