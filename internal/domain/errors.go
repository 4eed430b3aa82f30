package domain

import (
	"errors"
	"fmt"
	"time"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInvalidInput      = "invalid input"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgUnknownCard       = "unknown gift card"
	ErrMsgNothingToConvert  = "no gift cards to convert"
	ErrMsgSnapshotCorrupt   = "snapshot corrupt"
	ErrMsgSelfTransfer      = "cannot transfer points to yourself"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidInput      = errors.New(ErrMsgInvalidInput)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrUnknownCard       = errors.New(ErrMsgUnknownCard)
	ErrNothingToConvert  = errors.New(ErrMsgNothingToConvert)
	ErrSnapshotCorrupt   = errors.New(ErrMsgSnapshotCorrupt)
)

// ClaimOnCooldownError is returned when the daily claim is attempted
// within the 24h cooldown window. NextClaimAt is the exact instant the
// claim becomes eligible again.
type ClaimOnCooldownError struct {
	NextClaimAt time.Time
	Remaining   time.Duration
}

func (e ClaimOnCooldownError) Error() string {
	hours := int(e.Remaining.Hours())
	minutes := int(e.Remaining.Minutes()) % 60

	if hours > 0 {
		return fmt.Sprintf("daily claim on cooldown: %dh %dm remaining", hours, minutes)
	}
	return fmt.Sprintf("daily claim on cooldown: %dm remaining", minutes)
}

// Is allows errors.Is() to work with ClaimOnCooldownError
func (e ClaimOnCooldownError) Is(target error) bool {
	_, ok := target.(ClaimOnCooldownError)
	return ok
}
