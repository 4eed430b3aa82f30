package wager

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/fennwick/TallyBot_Go/internal/domain"
	"github.com/fennwick/TallyBot_Go/internal/logger"
	"github.com/fennwick/TallyBot_Go/internal/metrics"
	"github.com/fennwick/TallyBot_Go/internal/store"
)

// Flusher triggers snapshot persistence after a balance mutation.
type Flusher interface {
	Flush()
}

// Service defines the interface for wager operations
type Service interface {
	PlayGuess(ctx context.Context, userID string, guess, bet int) (*domain.GuessResult, error)
	PlayCoinFlip(ctx context.Context, userID, choice string, bet int) (*domain.FlipResult, error)
	PlayReels(ctx context.Context, userID string) (*domain.ReelsResult, error)
}

type service struct {
	store   *store.Store
	flusher Flusher
	rng     func(int) int // Injectable for testing
}

// NewService creates a new wager service
func NewService(st *store.Store, flusher Flusher) Service {
	return &service{
		store:   st,
		flusher: flusher,
		rng:     rand.Intn, //nolint:gosec // Game outcomes, not security critical
	}
}

// PlayGuess settles a guess-a-number wager. Input validation happens
// strictly before the balance check.
func (s *service) PlayGuess(ctx context.Context, userID string, guess, bet int) (*domain.GuessResult, error) {
	log := logger.FromContext(ctx)

	if guess < GuessMin || guess > GuessMax {
		return nil, fmt.Errorf("%w: guess must be between %d and %d", domain.ErrInvalidInput, GuessMin, GuessMax)
	}
	if bet < MinBet {
		return nil, fmt.Errorf("%w: minimum bet is %d points", domain.ErrInvalidInput, MinBet)
	}

	rolled := s.rng(GuessMax) + 1
	won := guess == rolled

	var result *domain.GuessResult
	err := s.store.Update(userID, func(acct *domain.Account) error {
		if acct.Balance < bet {
			return fmt.Errorf("%w: balance %d, bet %d", domain.ErrInsufficientFunds, acct.Balance, bet)
		}

		var delta int
		if won {
			payout := bet * GuessMultiplier
			acct.Balance += payout
			acct.TotalEarned += payout
			delta = payout
		} else {
			acct.Balance -= bet
			acct.TotalSpent += bet
			delta = -bet
		}

		result = &domain.GuessResult{
			UserID:  userID,
			Guess:   guess,
			Rolled:  rolled,
			Bet:     bet,
			Won:     won,
			Delta:   delta,
			Balance: acct.Balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.settle(domain.GameGuess, bet, won)
	log.Info("Guess settled", "user_id", userID, "guess", guess, "rolled", rolled, "won", won)
	return result, nil
}

// PlayCoinFlip settles a coin-flip wager. Choice is case-insensitive and
// accepts the single-letter aliases h/t.
func (s *service) PlayCoinFlip(ctx context.Context, userID, choice string, bet int) (*domain.FlipResult, error) {
	log := logger.FromContext(ctx)

	side, err := normalizeSide(choice)
	if err != nil {
		return nil, err
	}
	if bet < MinBet {
		return nil, fmt.Errorf("%w: minimum bet is %d points", domain.ErrInvalidInput, MinBet)
	}

	landed := domain.SideHeads
	if s.rng(2) == 1 {
		landed = domain.SideTails
	}
	won := side == landed

	var result *domain.FlipResult
	err = s.store.Update(userID, func(acct *domain.Account) error {
		if acct.Balance < bet {
			return fmt.Errorf("%w: balance %d, bet %d", domain.ErrInsufficientFunds, acct.Balance, bet)
		}

		var delta int
		if won {
			payout := bet * CoinFlipMultiplier
			acct.Balance += payout
			acct.TotalEarned += payout
			delta = payout
		} else {
			acct.Balance -= bet
			acct.TotalSpent += bet
			delta = -bet
		}

		result = &domain.FlipResult{
			UserID:  userID,
			Choice:  side,
			Landed:  landed,
			Bet:     bet,
			Won:     won,
			Delta:   delta,
			Balance: acct.Balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.settle(domain.GameCoinFlip, bet, won)
	log.Info("Coin flip settled", "user_id", userID, "choice", side, "landed", landed, "won", won)
	return result, nil
}

func normalizeSide(choice string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(choice)) {
	case domain.SideHeads, "h":
		return domain.SideHeads, nil
	case domain.SideTails, "t":
		return domain.SideTails, nil
	default:
		return "", fmt.Errorf("%w: choice must be heads or tails", domain.ErrInvalidInput)
	}
}

// settle records wager metrics and triggers persistence.
func (s *service) settle(game string, bet int, won bool) {
	outcome := "loss"
	if won {
		outcome = "win"
	}
	metrics.WagersTotal.WithLabelValues(game, outcome).Inc()
	metrics.PointsWagered.WithLabelValues(game).Add(float64(bet))
	s.flusher.Flush()
}
