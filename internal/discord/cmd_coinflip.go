package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// CoinFlipCommand returns the coin-flip command definition and handler
func CoinFlipCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	betMin := float64(10)

	cmd := &discordgo.ApplicationCommand{
		Name:        "coinflip",
		Description: "Call the toss and double your bet!",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "side",
				Description: "Heads or tails",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Heads", Value: "heads"},
					{Name: "Tails", Value: "tails"},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "bet",
				Description: "Points to wager (minimum 10)",
				Required:    true,
				MinValue:    &betMin,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		options := getOptions(i)
		side := options[0].StringValue()
		bet := int(options[1].IntValue())

		result, err := client.PlayCoinFlip(user.ID, side, bet)
		if err != nil {
			slog.Error("Failed to play coinflip", "error", err, "username", user.Username)
			respondFriendlyError(s, i, err.Error())
			return
		}

		coin := "🪙"
		var title, description string
		color := ColorLoss
		if result.Won {
			title = coin + " It's " + result.Landed + "!"
			description = fmt.Sprintf("You called it - **%d** points are yours!", result.Delta)
			color = ColorWin
		} else {
			title = coin + " It's " + result.Landed + "..."
			description = fmt.Sprintf("You called **%s**. Better luck next toss.", result.Choice)
		}

		embed := createEmbed(title, description, color, "")
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Bet", Value: fmt.Sprintf("%d points", result.Bet), Inline: true},
			{Name: "Balance", Value: fmt.Sprintf("%d points", result.Balance), Inline: true},
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
