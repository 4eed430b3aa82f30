package domain

import "time"

// Account is a user's persisted economic state, keyed externally by an
// opaque platform user ID.
type Account struct {
	Balance     int        `json:"balance"`
	LastClaim   *time.Time `json:"last_claim,omitempty"`
	Streak      int        `json:"streak"`
	TotalEarned int        `json:"total_earned"`
	TotalSpent  int        `json:"total_spent"`

	// GiftCards is append-only until ConvertBack clears it. Redemption
	// intentionally does not debit TotalSpent and conversion credits
	// TotalEarned, so the two counters are lifetime display totals, not a
	// mirror of balance flow.
	GiftCards []GiftCard `json:"gift_cards"`
}

// GiftCard records a single redemption at the cost paid.
type GiftCard struct {
	Kind string `json:"kind"`
	Cost int    `json:"cost"`
}

// NewAccount returns a zeroed account with no claim history.
func NewAccount() *Account {
	return &Account{GiftCards: []GiftCard{}}
}

// Clone returns a deep copy safe to hand out past the store lock.
func (a *Account) Clone() *Account {
	c := *a
	if a.LastClaim != nil {
		t := *a.LastClaim
		c.LastClaim = &t
	}
	c.GiftCards = make([]GiftCard, len(a.GiftCards))
	copy(c.GiftCards, a.GiftCards)
	return &c
}

// Settings holds the global economy configuration persisted alongside
// accounts.
type Settings struct {
	DailyReward         int     `json:"daily_reward"`
	MaxStreakMultiplier float64 `json:"max_streak_multiplier"`
}

// Snapshot is the full persisted document: every account plus the
// settings in effect when it was written.
type Snapshot struct {
	Users    map[string]*Account `json:"users"`
	Settings Settings            `json:"settings"`
}
