package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fennwick/TallyBot_Go/internal/catalog"
	"github.com/fennwick/TallyBot_Go/internal/domain"
)

// APIClient handles communication with the TallyBot Core API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIKey: apiKey,
	}
}

// doRequest performs an HTTP request with retry logic
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	url := fmt.Sprintf("%s%s", c.BaseURL, path)

	maxRetries := 3
	retryDelay := 500 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, url, bytes.NewBuffer(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// apiError reads the error payload from a non-OK response
func apiError(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("API error: %s", errResp.Error)
	}
	return fmt.Errorf("API returned status: %d", resp.StatusCode)
}

// ClaimDaily claims the daily reward for a user
func (c *APIClient) ClaimDaily(userID string) (*domain.ClaimResult, error) {
	req := map[string]string{"user_id": userID}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/claim", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var result domain.ClaimResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// GetAccount retrieves a user's account
func (c *APIClient) GetAccount(userID string) (*domain.Account, error) {
	params := url.Values{}
	params.Set("user_id", userID)

	path := fmt.Sprintf("/api/v1/account?%s", params.Encode())
	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var acctResp struct {
		UserID  string          `json:"user_id"`
		Account *domain.Account `json:"account"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&acctResp); err != nil {
		return nil, fmt.Errorf("failed to decode account: %w", err)
	}
	return acctResp.Account, nil
}

// Transfer moves points from one user to another
func (c *APIClient) Transfer(senderID, recipientID string, amount int) (*domain.TransferResult, error) {
	req := map[string]interface{}{
		"sender_id":    senderID,
		"recipient_id": recipientID,
		"amount":       amount,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/transfer", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var result domain.TransferResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// PlayGuess plays the guess-a-number game
func (c *APIClient) PlayGuess(userID string, guess, bet int) (*domain.GuessResult, error) {
	req := map[string]interface{}{
		"user_id": userID,
		"guess":   guess,
		"bet":     bet,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/wager/guess", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var result domain.GuessResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// PlayCoinFlip plays the coin-flip game
func (c *APIClient) PlayCoinFlip(userID, choice string, bet int) (*domain.FlipResult, error) {
	req := map[string]interface{}{
		"user_id": userID,
		"choice":  choice,
		"bet":     bet,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/wager/coinflip", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var result domain.FlipResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// PlayReels spins the reels
func (c *APIClient) PlayReels(userID string) (*domain.ReelsResult, error) {
	req := map[string]string{"user_id": userID}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/wager/reels", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var result domain.ReelsResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// RedeemGiftCard exchanges points for a gift card
func (c *APIClient) RedeemGiftCard(userID, kind string) (*domain.RedeemResult, error) {
	req := map[string]string{
		"user_id": userID,
		"kind":    kind,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/giftcard/redeem", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var result domain.RedeemResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// ConvertGiftCards converts all held gift cards back to points
func (c *APIClient) ConvertGiftCards(userID string) (*domain.ConvertResult, error) {
	req := map[string]string{"user_id": userID}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/giftcard/convert", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var result domain.ConvertResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// GetCatalog retrieves the gift-card catalog
func (c *APIClient) GetCatalog() (map[string]catalog.Entry, error) {
	resp, err := c.doRequest(http.MethodGet, "/api/v1/giftcard/catalog", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var catResp struct {
		GiftCards map[string]catalog.Entry `json:"gift_cards"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&catResp); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return catResp.GiftCards, nil
}

// GetLeaderboard retrieves the top balances
func (c *APIClient) GetLeaderboard(limit int) ([]domain.LeaderboardEntry, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	path := fmt.Sprintf("/api/v1/leaderboard?%s", params.Encode())
	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var lbResp struct {
		Entries []domain.LeaderboardEntry `json:"entries"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&lbResp); err != nil {
		return nil, fmt.Errorf("failed to decode leaderboard: %w", err)
	}
	return lbResp.Entries, nil
}
