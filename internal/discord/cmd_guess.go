package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// GuessCommand returns the guess-a-number command definition and handler
func GuessCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	guessMin := float64(1)
	guessMax := float64(6)
	betMin := float64(10)

	cmd := &discordgo.ApplicationCommand{
		Name:        "guess",
		Description: "Guess a number from 1 to 6 and win 5x your bet!",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "number",
				Description: "Your guess (1-6)",
				Required:    true,
				MinValue:    &guessMin,
				MaxValue:    guessMax,
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
		guess := int(options[0].IntValue())
		bet := int(options[1].IntValue())

		result, err := client.PlayGuess(user.ID, guess, bet)
		if err != nil {
			slog.Error("Failed to play guess", "error", err, "username", user.Username)
			respondFriendlyError(s, i, err.Error())
			return
		}

		var title, description string
		color := ColorLoss
		if result.Won {
			title = "🎲 You Guessed It!"
			description = fmt.Sprintf("The die showed **%d** - you win **%d** points!", result.Rolled, result.Delta)
			color = ColorWin
		} else {
			title = "🎲 Not This Time"
			description = fmt.Sprintf("You guessed **%d** but the die showed **%d**.", result.Guess, result.Rolled)
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
