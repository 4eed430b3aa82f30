package domain

import "time"

// ClaimResult is the outcome of a successful daily claim.
type ClaimResult struct {
	UserID      string    `json:"user_id"`
	Reward      int       `json:"reward"`
	Streak      int       `json:"streak"`
	Multiplier  float64   `json:"multiplier"`
	Balance     int       `json:"balance"`
	NextClaimAt time.Time `json:"next_claim_at"`
}

// GuessResult is the settled outcome of a guess-a-number wager.
type GuessResult struct {
	UserID  string `json:"user_id"`
	Guess   int    `json:"guess"`
	Rolled  int    `json:"rolled"`
	Bet     int    `json:"bet"`
	Won     bool   `json:"won"`
	Delta   int    `json:"delta"`
	Balance int    `json:"balance"`
}

// FlipResult is the settled outcome of a coin-flip wager.
type FlipResult struct {
	UserID  string `json:"user_id"`
	Choice  string `json:"choice"`
	Landed  string `json:"landed"`
	Bet     int    `json:"bet"`
	Won     bool   `json:"won"`
	Delta   int    `json:"delta"`
	Balance int    `json:"balance"`
}

// ReelsResult is the settled outcome of a reel spin.
type ReelsResult struct {
	UserID     string    `json:"user_id"`
	Reels      [3]string `json:"reels"`
	Multiplier float64   `json:"multiplier"`
	Bet        int       `json:"bet"`
	Payout     int       `json:"payout"`
	Delta      int       `json:"delta"`
	Balance    int       `json:"balance"`
}

// TransferResult reports both post-transfer balances.
type TransferResult struct {
	SenderID         string `json:"sender_id"`
	RecipientID      string `json:"recipient_id"`
	Amount           int    `json:"amount"`
	SenderBalance    int    `json:"sender_balance"`
	RecipientBalance int    `json:"recipient_balance"`
}

// RedeemResult reports a gift-card redemption.
type RedeemResult struct {
	UserID  string `json:"user_id"`
	Kind    string `json:"kind"`
	Cost    int    `json:"cost"`
	Balance int    `json:"balance"`
}

// ConvertResult reports a bulk conversion-back of redeemed cards.
type ConvertResult struct {
	UserID         string `json:"user_id"`
	CardsConverted int    `json:"cards_converted"`
	TotalValue     int    `json:"total_value"`
	Refund         int    `json:"refund"`
	Balance        int    `json:"balance"`
}

// LeaderboardEntry is one row of the balance leaderboard.
type LeaderboardEntry struct {
	UserID  string `json:"user_id"`
	Balance int    `json:"balance"`
}
