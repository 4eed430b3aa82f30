package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Claim cooldown with remaining time",
			input:    "API error: daily claim on cooldown: 4h3m remaining",
			expected: MsgClaimOnCooldown + "\nCome back in: **4h3m**",
		},
		{
			name:     "Insufficient funds",
			input:    "API error: Not enough points",
			expected: MsgInsufficientFunds,
		},
		{
			name:     "Unknown gift card",
			input:    "API error: That gift card doesn't exist",
			expected: MsgUnknownGiftCard,
		},
		{
			name:     "Nothing to convert",
			input:    "API error: You have no gift cards to convert",
			expected: MsgNothingToConvert,
		},
		{
			name:     "Self transfer",
			input:    "API error: invalid input: cannot transfer points to yourself",
			expected: MsgSelfTransfer,
		},
		{
			name:     "Unknown error passes through",
			input:    "something odd happened",
			expected: "❌ something odd happened",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFriendlyError(tt.input))
		})
	}
}

func TestCommandsEqual(t *testing.T) {
	a := &discordgo.ApplicationCommand{
		Name:        "daily",
		Description: "Claim your daily points",
	}
	b := &discordgo.ApplicationCommand{
		Name:        "daily",
		Description: "Claim your daily points",
	}

	assert.True(t, commandsEqual(
		[]*discordgo.ApplicationCommand{a},
		[]*discordgo.ApplicationCommand{b},
	))

	b.Description = "changed"
	assert.False(t, commandsEqual(
		[]*discordgo.ApplicationCommand{a},
		[]*discordgo.ApplicationCommand{b},
	))

	assert.False(t, commandsEqual(
		[]*discordgo.ApplicationCommand{a},
		[]*discordgo.ApplicationCommand{},
	))
}

func TestOptionEqualComparesChoices(t *testing.T) {
	a := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "side",
		Description: "Heads or tails",
		Required:    true,
		Choices: []*discordgo.ApplicationCommandOptionChoice{
			{Name: "Heads", Value: "heads"},
		},
	}
	b := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "side",
		Description: "Heads or tails",
		Required:    true,
		Choices: []*discordgo.ApplicationCommandOptionChoice{
			{Name: "Heads", Value: "heads"},
		},
	}

	assert.True(t, optionEqual(a, b))

	b.Choices[0].Value = "tails"
	assert.False(t, optionEqual(a, b))
}
