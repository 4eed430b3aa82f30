package discord

// Friendly message constants for Discord responses
const (
	// Economy
	MsgInsufficientFunds = "⚠️ **Not Enough Points!**\nYour balance can't cover this."
	MsgSelfTransfer      = "🙃 **Nice Try**\nYou can't send points to yourself."

	// Claims
	MsgClaimOnCooldown = "⏳ **Already Claimed!**\nYour next daily reward isn't ready yet."

	// Gift cards
	MsgUnknownGiftCard  = "❓ **Unknown Gift Card**\nUse `/giftcard list` to see what's available."
	MsgNothingToConvert = "🎁 **Nothing To Convert**\nYou aren't holding any gift cards."

	MsgGenericError = "❌ Something went wrong."
)

// Embed colors
const (
	ColorWin     = 0x2ecc71 // Green
	ColorLoss    = 0xe74c3c // Red
	ColorNeutral = 0x3498db // Blue
	ColorGold    = 0xf1c40f
	ColorAdmin   = 0x95a5a6
)
