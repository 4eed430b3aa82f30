package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// PointsCommand returns the balance lookup command definition and handler
func PointsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "points",
		Description: "Check your points balance",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Check another user's balance",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		target := getInteractionUser(i)
		options := getOptions(i)
		if len(options) > 0 {
			target = options[0].UserValue(s)
		}

		acct, err := client.GetAccount(target.ID)
		if err != nil {
			slog.Error("Failed to fetch account", "error", err, "user_id", target.ID)
			respondFriendlyError(s, i, err.Error())
			return
		}

		description := fmt.Sprintf("**%d** points", acct.Balance)
		embed := createEmbed(fmt.Sprintf("💰 %s's Balance", target.Username), description, ColorNeutral, "")
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Total Earned", Value: fmt.Sprintf("%d", acct.TotalEarned), Inline: true},
			{Name: "Total Spent", Value: fmt.Sprintf("%d", acct.TotalSpent), Inline: true},
			{Name: "Streak", Value: fmt.Sprintf("%d days", acct.Streak), Inline: true},
		}
		if n := len(acct.GiftCards); n > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "Gift Cards", Value: fmt.Sprintf("%d held", n), Inline: true,
			})
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
