package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// LeaderboardCommand returns the leaderboard command definition and handler.
// Bound to the bot so it can resolve display names through the name cache.
func LeaderboardCommand(b *Bot) (*discordgo.ApplicationCommand, CommandHandler) {
	limitMin := float64(1)
	limitMax := float64(25)

	cmd := &discordgo.ApplicationCommand{
		Name:        "leaderboard",
		Description: "Show the richest users",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "limit",
				Description: "How many entries to show (default: 10)",
				Required:    false,
				MinValue:    &limitMin,
				MaxValue:    limitMax,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		limit := 10
		if options := getOptions(i); len(options) > 0 {
			limit = int(options[0].IntValue())
		}

		entries, err := client.GetLeaderboard(limit)
		if err != nil {
			slog.Error("Failed to fetch leaderboard", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		if len(entries) == 0 {
			embed := createEmbed("🏆 Leaderboard", "Nobody has any points yet!", ColorNeutral, "")
			sendEmbed(s, i, embed)
			return
		}

		medals := []string{"🥇", "🥈", "🥉"}
		var sb strings.Builder
		for rank, entry := range entries {
			prefix := fmt.Sprintf("**%d.**", rank+1)
			if rank < len(medals) {
				prefix = medals[rank]
			}
			name := b.Names.DisplayName(s, entry.UserID)
			fmt.Fprintf(&sb, "%s %s: **%d** points\n", prefix, name, entry.Balance)
		}

		embed := createEmbed("🏆 Leaderboard", sb.String(), ColorGold, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
