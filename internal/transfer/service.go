package transfer

import (
	"context"
	"fmt"
	"math"

	"github.com/fennwick/TallyBot_Go/internal/catalog"
	"github.com/fennwick/TallyBot_Go/internal/domain"
	"github.com/fennwick/TallyBot_Go/internal/logger"
	"github.com/fennwick/TallyBot_Go/internal/metrics"
	"github.com/fennwick/TallyBot_Go/internal/store"
)

// Flusher triggers snapshot persistence after a balance mutation.
type Flusher interface {
	Flush()
}

// Service defines the interface for transfer and conversion operations
type Service interface {
	Transfer(ctx context.Context, senderID, recipientID string, amount int) (*domain.TransferResult, error)
	RedeemGiftCard(ctx context.Context, userID, kind string) (*domain.RedeemResult, error)
	ConvertBack(ctx context.Context, userID string) (*domain.ConvertResult, error)
	AdjustBalance(ctx context.Context, userID string, amount int) (int, error)
}

type service struct {
	store   *store.Store
	catalog *catalog.Catalog
	flusher Flusher
}

// NewService creates a new transfer service
func NewService(st *store.Store, cat *catalog.Catalog, flusher Flusher) Service {
	return &service{
		store:   st,
		catalog: cat,
		flusher: flusher,
	}
}

// Transfer moves amount from sender to recipient. Both mutations happen
// in one critical section; no other operation can observe a half-applied
// transfer.
func (s *service) Transfer(ctx context.Context, senderID, recipientID string, amount int) (*domain.TransferResult, error) {
	log := logger.FromContext(ctx)

	if senderID == recipientID {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, domain.ErrMsgSelfTransfer)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %d", domain.ErrInvalidInput, amount)
	}

	var result *domain.TransferResult
	err := s.store.UpdatePair(senderID, recipientID, func(sender, recipient *domain.Account) error {
		if sender.Balance < amount {
			return fmt.Errorf("%w: balance %d, amount %d", domain.ErrInsufficientFunds, sender.Balance, amount)
		}

		sender.Balance -= amount
		sender.TotalSpent += amount
		recipient.Balance += amount
		recipient.TotalEarned += amount

		result = &domain.TransferResult{
			SenderID:         senderID,
			RecipientID:      recipientID,
			Amount:           amount,
			SenderBalance:    sender.Balance,
			RecipientBalance: recipient.Balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.PointsTransferred.Add(float64(amount))
	s.flusher.Flush()

	log.Info("Points transferred", "sender", senderID, "recipient", recipientID, "amount", amount)
	return result, nil
}

// RedeemGiftCard converts balance into a recorded gift-card entitlement.
// The redemption debits balance but not TotalSpent; see the Account doc.
func (s *service) RedeemGiftCard(ctx context.Context, userID, kind string) (*domain.RedeemResult, error) {
	log := logger.FromContext(ctx)

	entry, err := s.catalog.Get(kind)
	if err != nil {
		return nil, err
	}

	var result *domain.RedeemResult
	err = s.store.Update(userID, func(acct *domain.Account) error {
		if acct.Balance < entry.Cost {
			return fmt.Errorf("%w: balance %d, cost %d", domain.ErrInsufficientFunds, acct.Balance, entry.Cost)
		}

		acct.Balance -= entry.Cost
		acct.GiftCards = append(acct.GiftCards, domain.GiftCard{Kind: kind, Cost: entry.Cost})

		result = &domain.RedeemResult{
			UserID:  userID,
			Kind:    kind,
			Cost:    entry.Cost,
			Balance: acct.Balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.GiftCardsRedeemed.WithLabelValues(kind).Inc()
	s.flusher.Flush()

	log.Info("Gift card redeemed", "user_id", userID, "kind", kind, "cost", entry.Cost)
	return result, nil
}

// ConvertBack refunds all redeemed cards at the haircut rate in one bulk
// operation; partial conversion is not supported.
func (s *service) ConvertBack(ctx context.Context, userID string) (*domain.ConvertResult, error) {
	log := logger.FromContext(ctx)

	var result *domain.ConvertResult
	err := s.store.Update(userID, func(acct *domain.Account) error {
		if len(acct.GiftCards) == 0 {
			return domain.ErrNothingToConvert
		}

		totalValue := 0
		for _, card := range acct.GiftCards {
			totalValue += card.Cost
		}
		refund := int(math.Floor(float64(totalValue) * domain.ConvertBackRate))

		cards := len(acct.GiftCards)
		acct.Balance += refund
		acct.TotalEarned += refund
		acct.GiftCards = []domain.GiftCard{}

		result = &domain.ConvertResult{
			UserID:         userID,
			CardsConverted: cards,
			TotalValue:     totalValue,
			Refund:         refund,
			Balance:        acct.Balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ConversionsTotal.Inc()
	s.flusher.Flush()

	log.Info("Gift cards converted back", "user_id", userID, "cards", result.CardsConverted, "refund", result.Refund)
	return result, nil
}

// AdjustBalance credits or debits an account by amount (admin only).
// Debits that would take the balance negative are rejected.
func (s *service) AdjustBalance(ctx context.Context, userID string, amount int) (int, error) {
	log := logger.FromContext(ctx)

	if amount == 0 {
		return 0, fmt.Errorf("%w: amount must be non-zero", domain.ErrInvalidInput)
	}

	var balance int
	err := s.store.Update(userID, func(acct *domain.Account) error {
		if acct.Balance+amount < 0 {
			return fmt.Errorf("%w: balance %d, adjustment %d", domain.ErrInsufficientFunds, acct.Balance, amount)
		}
		acct.Balance += amount
		if amount > 0 {
			acct.TotalEarned += amount
		} else {
			acct.TotalSpent += -amount
		}
		balance = acct.Balance
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.flusher.Flush()
	log.Info("Balance adjusted", "user_id", userID, "amount", amount, "balance", balance)
	return balance, nil
}
