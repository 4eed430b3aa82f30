package domain

// Game identifiers used in results, metrics labels and stats.
const (
	GameGuess    = "guess"
	GameCoinFlip = "coinflip"
	GameReels    = "reels"
)

// Coin flip sides
const (
	SideHeads = "heads"
	SideTails = "tails"
)

// Claim state machine windows, in hours since the last claim.
const (
	ClaimCooldownHours     = 24
	ClaimContinuationHours = 36
)

// StreakBonusStep is the per-streak increment applied to the reward
// multiplier before capping.
const StreakBonusStep = 0.1

// ConvertBackRate is the fraction of total card value refunded by a bulk
// conversion-back.
const ConvertBackRate = 0.8
