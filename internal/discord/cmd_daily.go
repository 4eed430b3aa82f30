package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// DailyCommand returns the daily claim command definition and handler
func DailyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "daily",
		Description: "Claim your daily points",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)

		result, err := client.ClaimDaily(user.ID)
		if err != nil {
			slog.Error("Failed to claim daily", "error", err, "username", user.Username)
			respondFriendlyError(s, i, err.Error())
			return
		}

		description := fmt.Sprintf("You claimed **%d** points!", result.Reward)
		if result.Streak > 1 {
			description += fmt.Sprintf("\n🔥 Streak: **%d days** (%.1fx multiplier)", result.Streak, result.Multiplier)
		}

		embed := createEmbed("📅 Daily Claim", description, ColorGold, "")
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Balance", Value: fmt.Sprintf("%d points", result.Balance), Inline: true},
			{Name: "Next Claim", Value: fmt.Sprintf("<t:%d:R>", result.NextClaimAt.Unix()), Inline: true},
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
