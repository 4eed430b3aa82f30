package wager

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennwick/TallyBot_Go/internal/domain"
	"github.com/fennwick/TallyBot_Go/internal/store"
)

type nopFlusher struct{ count int }

func (f *nopFlusher) Flush() { f.count++ }

// fixedRNG returns a canned sequence of values, repeating the last one.
type fixedRNG struct {
	values []int
	idx    int
}

func (r *fixedRNG) next(int) int {
	v := r.values[r.idx]
	if r.idx < len(r.values)-1 {
		r.idx++
	}
	return v
}

func newTestService(rngValues ...int) (*service, *store.Store, *nopFlusher) {
	st := store.New(domain.Settings{DailyReward: 100, MaxStreakMultiplier: 2.0})
	fl := &nopFlusher{}
	svc := NewService(st, fl).(*service)
	if len(rngValues) > 0 {
		rng := &fixedRNG{values: rngValues}
		svc.rng = rng.next
	}
	return svc, st, fl
}

func fund(t *testing.T, st *store.Store, userID string, amount int) {
	t.Helper()
	require.NoError(t, st.Update(userID, func(acct *domain.Account) error {
		acct.Balance = amount
		return nil
	}))
}

func TestPlayGuessWin(t *testing.T) {
	// rng(6) returning 2 rolls a 3.
	svc, st, fl := newTestService(2)
	fund(t, st, "alice", 100)

	result, err := svc.PlayGuess(context.Background(), "alice", 3, 10)
	require.NoError(t, err)

	assert.True(t, result.Won)
	assert.Equal(t, 3, result.Rolled)
	assert.Equal(t, 50, result.Delta)
	assert.Equal(t, 150, result.Balance)

	acct := st.GetOrCreateAccount("alice")
	assert.Equal(t, 150, acct.Balance)
	assert.Equal(t, 50, acct.TotalEarned)
	assert.Zero(t, acct.TotalSpent)
	assert.Equal(t, 1, fl.count)
}

func TestPlayGuessLoss(t *testing.T) {
	svc, st, _ := newTestService(2)
	fund(t, st, "alice", 100)

	result, err := svc.PlayGuess(context.Background(), "alice", 4, 10)
	require.NoError(t, err)

	assert.False(t, result.Won)
	assert.Equal(t, -10, result.Delta)
	assert.Equal(t, 90, result.Balance)

	acct := st.GetOrCreateAccount("alice")
	assert.Equal(t, 10, acct.TotalSpent)
	assert.Zero(t, acct.TotalEarned)
}

func TestPlayGuessValidationBeforeBalanceCheck(t *testing.T) {
	svc, _, fl := newTestService(0)

	// Out-of-range guess and sub-minimum bet are rejected even though the
	// zero-balance account could never cover the bet.
	_, err := svc.PlayGuess(context.Background(), "broke", 7, 10)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = svc.PlayGuess(context.Background(), "broke", 3, 9)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = svc.PlayGuess(context.Background(), "broke", 3, 10)
	assert.True(t, errors.Is(err, domain.ErrInsufficientFunds))

	assert.Zero(t, fl.count)
}

func TestPlayCoinFlip(t *testing.T) {
	tests := []struct {
		name    string
		choice  string
		rng     int // 0 = heads, 1 = tails
		won     bool
		landed  string
		wantErr bool
	}{
		{"heads wins", "heads", 0, true, domain.SideHeads, false},
		{"tails alias wins", "T", 1, true, domain.SideTails, false},
		{"h alias loses", "h", 1, false, domain.SideTails, false},
		{"uppercase HEADS", "HEADS", 0, true, domain.SideHeads, false},
		{"invalid side", "edge", 0, false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st, _ := newTestService(tt.rng)
			fund(t, st, "bob", 100)

			result, err := svc.PlayCoinFlip(context.Background(), "bob", tt.choice, 10)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domain.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.landed, result.Landed)
			assert.Equal(t, tt.won, result.Won)
			if tt.won {
				assert.Equal(t, 20, result.Delta)
				assert.Equal(t, 120, result.Balance)
			} else {
				assert.Equal(t, -10, result.Delta)
				assert.Equal(t, 90, result.Balance)
			}
		})
	}
}

func TestPlayCoinFlipInsufficientFunds(t *testing.T) {
	svc, st, _ := newTestService(0)
	fund(t, st, "bob", 9)

	_, err := svc.PlayCoinFlip(context.Background(), "bob", "heads", 10)
	assert.True(t, errors.Is(err, domain.ErrInsufficientFunds))

	acct := st.GetOrCreateAccount("bob")
	assert.Equal(t, 9, acct.Balance)
}

// rollFor returns an rng value that lands spinReel on the given symbol.
func rollFor(symbol string) int {
	cumulative := 0
	for _, s := range reelOrder {
		if s == symbol {
			return cumulative
		}
		cumulative += SymbolWeights[s]
	}
	panic("unknown symbol " + symbol)
}

func TestPlayReelsTriples(t *testing.T) {
	tests := []struct {
		symbol     string
		multiplier float64
		payout     int
	}{
		{SymbolDiamond, 10.0, 300},
		{SymbolStar, 8.0, 240},
		{SymbolClover, 12.0, 360},
		{SymbolCherry, 3.0, 90},
		{SymbolLemon, 3.0, 90},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			roll := rollFor(tt.symbol)
			svc, st, _ := newTestService(roll, roll, roll)
			fund(t, st, "carol", 100)

			result, err := svc.PlayReels(context.Background(), "carol")
			require.NoError(t, err)

			assert.Equal(t, [3]string{tt.symbol, tt.symbol, tt.symbol}, result.Reels)
			assert.Equal(t, tt.multiplier, result.Multiplier)
			assert.Equal(t, tt.payout, result.Payout)
			assert.Equal(t, tt.payout-ReelsBet, result.Delta)
			assert.Equal(t, 100+tt.payout-ReelsBet, result.Balance)

			acct := st.GetOrCreateAccount("carol")
			assert.Equal(t, tt.payout, acct.TotalEarned)
			assert.Zero(t, acct.TotalSpent)
		})
	}
}

func TestPlayReelsTwoMatchFloorsPayout(t *testing.T) {
	// Two cherries and a lemon: 1.5x on a 30-point bet pays floor(45) = 45.
	cherry, lemon := rollFor(SymbolCherry), rollFor(SymbolLemon)
	svc, st, _ := newTestService(cherry, cherry, lemon)
	fund(t, st, "carol", 100)

	result, err := svc.PlayReels(context.Background(), "carol")
	require.NoError(t, err)

	assert.Equal(t, 1.5, result.Multiplier)
	assert.Equal(t, 45, result.Payout)
	assert.Equal(t, 15, result.Delta)
	assert.Equal(t, 115, result.Balance)

	acct := st.GetOrCreateAccount("carol")
	assert.Equal(t, 45, acct.TotalEarned)
}

func TestPlayReelsNoMatch(t *testing.T) {
	svc, st, _ := newTestService(rollFor(SymbolCherry), rollFor(SymbolLemon), rollFor(SymbolOrange))
	fund(t, st, "carol", 100)

	result, err := svc.PlayReels(context.Background(), "carol")
	require.NoError(t, err)

	assert.Zero(t, result.Multiplier)
	assert.Zero(t, result.Payout)
	assert.Equal(t, -ReelsBet, result.Delta)
	assert.Equal(t, 70, result.Balance)

	acct := st.GetOrCreateAccount("carol")
	assert.Equal(t, ReelsBet, acct.TotalSpent)
}

func TestPlayReelsInsufficientFunds(t *testing.T) {
	svc, st, fl := newTestService(0)
	fund(t, st, "carol", ReelsBet-1)

	_, err := svc.PlayReels(context.Background(), "carol")
	assert.True(t, errors.Is(err, domain.ErrInsufficientFunds))
	assert.Zero(t, fl.count)
}

func TestSpinReelDistributionCoversAllSymbols(t *testing.T) {
	// Walk the full weight range and confirm cumulative selection maps
	// every roll to a symbol with the configured weight.
	svc, _, _ := newTestService()
	counts := make(map[string]int)
	total := 0
	for _, s := range reelOrder {
		total += SymbolWeights[s]
	}

	for roll := 0; roll < total; roll++ {
		rng := &fixedRNG{values: []int{roll}}
		svc.rng = rng.next
		counts[svc.spinReel()]++
	}

	for _, s := range reelOrder {
		assert.Equal(t, SymbolWeights[s], counts[s], "weight for %s", s)
	}
}

func TestBalanceNeverNegative(t *testing.T) {
	// Losing wagers stop the moment funds run out.
	svc, st, _ := newTestService(5) // rolls 6, guess 1 always loses
	fund(t, st, "dave", 35)

	for i := 0; i < 10; i++ {
		_, err := svc.PlayGuess(context.Background(), "dave", 1, 10)
		if err != nil {
			assert.True(t, errors.Is(err, domain.ErrInsufficientFunds))
			break
		}
	}

	acct := st.GetOrCreateAccount("dave")
	assert.GreaterOrEqual(t, acct.Balance, 0)
	assert.Equal(t, 5, acct.Balance)
}
