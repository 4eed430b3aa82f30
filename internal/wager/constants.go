package wager

// Betting limits
const (
	MinBet = 10

	// ReelsBet is the fixed stake for a reel spin.
	ReelsBet = 30
)

// Guess game bounds and payout
const (
	GuessMin        = 1
	GuessMax        = 6
	GuessMultiplier = 5
)

// CoinFlipMultiplier is the payout multiplier for a winning coin flip.
const CoinFlipMultiplier = 2

// Reel symbols
const (
	SymbolCherry  = "CHERRY"
	SymbolLemon   = "LEMON"
	SymbolOrange  = "ORANGE"
	SymbolDiamond = "DIAMOND"
	SymbolStar    = "STAR"
	SymbolClover  = "CLOVER"
)

// reelOrder fixes the iteration order for weighted selection.
var reelOrder = []string{
	SymbolCherry, SymbolLemon, SymbolOrange, SymbolDiamond, SymbolStar, SymbolClover,
}

// SymbolWeights are relative draw weights; normalized by their total.
var SymbolWeights = map[string]int{
	SymbolCherry:  30,
	SymbolLemon:   25,
	SymbolOrange:  20,
	SymbolDiamond: 15,
	SymbolStar:    8,
	SymbolClover:  2,
}

// TripleMultipliers defines the payout for three matching symbols.
// Symbols not listed pay the default triple multiplier.
var TripleMultipliers = map[string]float64{
	SymbolDiamond: 10.0,
	SymbolStar:    8.0,
	SymbolClover:  12.0,
}

// Payout multipliers for non-special outcomes
const (
	DefaultTripleMultiplier = 3.0
	TwoMatchMultiplier      = 1.5
)
