package reward

import (
	"context"
	"math"
	"time"

	"github.com/fennwick/TallyBot_Go/internal/domain"
	"github.com/fennwick/TallyBot_Go/internal/logger"
	"github.com/fennwick/TallyBot_Go/internal/metrics"
	"github.com/fennwick/TallyBot_Go/internal/store"
)

// Flusher triggers snapshot persistence after a balance mutation.
type Flusher interface {
	Flush()
}

// Service defines the interface for daily claim operations
type Service interface {
	ClaimDaily(ctx context.Context, userID string) (*domain.ClaimResult, error)
}

type service struct {
	store   *store.Store
	flusher Flusher
	now     func() time.Time // Injectable for testing
}

// NewService creates a new reward service
func NewService(st *store.Store, flusher Flusher) Service {
	return &service{
		store:   st,
		flusher: flusher,
		now:     time.Now,
	}
}

// nextStreak computes the streak a claim at now would produce, or a
// ClaimOnCooldownError when the claim is not yet eligible. Pure function
// of the account's claim history.
func nextStreak(acct *domain.Account, now time.Time) (int, error) {
	if acct.LastClaim == nil {
		return 1, nil
	}

	elapsed := now.Sub(*acct.LastClaim)
	cooldown := domain.ClaimCooldownHours * time.Hour

	if elapsed < cooldown {
		next := acct.LastClaim.Add(cooldown)
		return 0, domain.ClaimOnCooldownError{
			NextClaimAt: next,
			Remaining:   next.Sub(now),
		}
	}
	if elapsed <= domain.ClaimContinuationHours*time.Hour {
		return acct.Streak + 1, nil
	}
	// Continuation window missed: streak starts over.
	return 1, nil
}

// Multiplier returns the reward multiplier for a streak, capped at max.
func Multiplier(streak int, max float64) float64 {
	return math.Min(1+float64(streak)*domain.StreakBonusStep, max)
}

// ClaimDaily applies a daily claim for userID. Each call that passes the
// cooldown check mutates state; callers must not retry blindly.
func (s *service) ClaimDaily(ctx context.Context, userID string) (*domain.ClaimResult, error) {
	log := logger.FromContext(ctx)

	settings := s.store.Settings()
	now := s.now()

	var result *domain.ClaimResult
	err := s.store.Update(userID, func(acct *domain.Account) error {
		streak, err := nextStreak(acct, now)
		if err != nil {
			return err
		}

		multiplier := Multiplier(streak, settings.MaxStreakMultiplier)
		amount := int(math.Floor(float64(settings.DailyReward) * multiplier))

		acct.Streak = streak
		acct.Balance += amount
		acct.TotalEarned += amount
		claimedAt := now
		acct.LastClaim = &claimedAt

		result = &domain.ClaimResult{
			UserID:      userID,
			Reward:      amount,
			Streak:      streak,
			Multiplier:  multiplier,
			Balance:     acct.Balance,
			NextClaimAt: now.Add(domain.ClaimCooldownHours * time.Hour),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ClaimsTotal.Inc()
	metrics.PointsClaimed.Add(float64(result.Reward))
	s.flusher.Flush()

	log.Info("Daily claim applied", "user_id", userID, "reward", result.Reward, "streak", result.Streak)
	return result, nil
}
