package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/fennwick/TallyBot_Go/internal/domain"
)

// ReelsCommand returns the reel-spin command definition and handler
func ReelsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "reels",
		Description: "Spin three reels for a fixed 30 point bet!",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)

		result, err := client.PlayReels(user.ID)
		if err != nil {
			slog.Error("Failed to spin reels", "error", err, "username", user.Username)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := buildReelsEmbed(result, user.Username)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// buildReelsEmbed creates an embed for reel results
func buildReelsEmbed(result *domain.ReelsResult, username string) *discordgo.MessageEmbed {
	emojiMap := map[string]string{
		"CHERRY":  "🍒",
		"LEMON":   "🍋",
		"ORANGE":  "🍊",
		"DIAMOND": "💎",
		"STAR":    "⭐",
		"CLOVER":  "🍀",
	}

	reels := fmt.Sprintf("%s | %s | %s",
		emojiMap[result.Reels[0]],
		emojiMap[result.Reels[1]],
		emojiMap[result.Reels[2]],
	)

	var title string
	var color int
	switch {
	case result.Multiplier >= 10:
		title = "🌟 JACKPOT! 🌟"
		color = ColorGold
	case result.Payout > 0:
		title = "🎰 Reels - Win!"
		color = ColorWin
	default:
		title = "🎰 Reels"
		color = ColorLoss
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Reels", Value: reels, Inline: false},
		{Name: "Bet", Value: fmt.Sprintf("%d points", result.Bet), Inline: true},
		{Name: "Payout", Value: fmt.Sprintf("%d points", result.Payout), Inline: true},
		{Name: "Balance", Value: fmt.Sprintf("%d points", result.Balance), Inline: true},
	}

	if result.Multiplier > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Multiplier",
			Value:  fmt.Sprintf("%.1fx", result.Multiplier),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  title,
		Color:  color,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Player: %s", username),
		},
	}
}
