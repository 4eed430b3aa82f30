package wager

import (
	"context"
	"fmt"
	"math"

	"github.com/fennwick/TallyBot_Go/internal/domain"
	"github.com/fennwick/TallyBot_Go/internal/logger"
)

// PlayReels spins three weighted reels at the fixed stake. The only
// precondition is balance sufficiency; there is no user input to
// validate.
func (s *service) PlayReels(ctx context.Context, userID string) (*domain.ReelsResult, error) {
	log := logger.FromContext(ctx)

	reels := [3]string{s.spinReel(), s.spinReel(), s.spinReel()}
	multiplier := reelsMultiplier(reels)

	var result *domain.ReelsResult
	err := s.store.Update(userID, func(acct *domain.Account) error {
		if acct.Balance < ReelsBet {
			return fmt.Errorf("%w: balance %d, bet %d", domain.ErrInsufficientFunds, acct.Balance, ReelsBet)
		}

		var payout, delta int
		if multiplier > 0 {
			payout = int(math.Floor(ReelsBet * multiplier))
			delta = payout - ReelsBet
			acct.Balance += delta
			acct.TotalEarned += payout
		} else {
			delta = -ReelsBet
			acct.Balance -= ReelsBet
			acct.TotalSpent += ReelsBet
		}

		result = &domain.ReelsResult{
			UserID:     userID,
			Reels:      reels,
			Multiplier: multiplier,
			Bet:        ReelsBet,
			Payout:     payout,
			Delta:      delta,
			Balance:    acct.Balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.settle(domain.GameReels, ReelsBet, multiplier > 0)
	log.Info("Reels settled", "user_id", userID, "reels", reels, "multiplier", multiplier)
	return result, nil
}

// spinReel performs weighted random selection of one symbol.
func (s *service) spinReel() string {
	totalWeight := 0
	for _, symbol := range reelOrder {
		totalWeight += SymbolWeights[symbol]
	}

	roll := s.rng(totalWeight)

	cumulative := 0
	for _, symbol := range reelOrder {
		cumulative += SymbolWeights[symbol]
		if roll < cumulative {
			return symbol
		}
	}

	// Unreachable: roll < totalWeight by construction.
	return reelOrder[0]
}

// reelsMultiplier returns the payout multiplier for a spin.
func reelsMultiplier(reels [3]string) float64 {
	if reels[0] == reels[1] && reels[1] == reels[2] {
		if m, ok := TripleMultipliers[reels[0]]; ok {
			return m
		}
		return DefaultTripleMultiplier
	}
	if reels[0] == reels[1] || reels[1] == reels[2] || reels[0] == reels[2] {
		return TwoMatchMultiplier
	}
	return 0
}
