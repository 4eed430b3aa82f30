package discord

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GiftCardCommand returns the gift-card command definition and handler.
// Subcommands: redeem, convert, list.
func GiftCardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "giftcard",
		Description: "Redeem, convert or browse gift cards",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "redeem",
				Description: "Exchange points for a gift card",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "kind",
						Description: "Which gift card to redeem (see /giftcard list)",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "convert",
				Description: "Convert all your gift cards back to points (80% value)",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "Show the gift-card catalog",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		options := getOptions(i)
		if len(options) == 0 {
			respondError(s, i, MsgGenericError)
			return
		}

		switch options[0].Name {
		case "redeem":
			handleGiftCardRedeem(s, i, client, options[0])
		case "convert":
			handleGiftCardConvert(s, i, client)
		case "list":
			handleGiftCardList(s, i, client)
		default:
			respondError(s, i, MsgGenericError)
		}
	}

	return cmd, handler
}

func handleGiftCardRedeem(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, sub *discordgo.ApplicationCommandInteractionDataOption) {
	user := getInteractionUser(i)
	kind := strings.ToLower(sub.Options[0].StringValue())

	result, err := client.RedeemGiftCard(user.ID, kind)
	if err != nil {
		slog.Error("Failed to redeem gift card", "error", err, "username", user.Username, "kind", kind)
		respondFriendlyError(s, i, err.Error())
		return
	}

	title := cases.Title(language.English).String(result.Kind)
	description := fmt.Sprintf("You redeemed a **%s** gift card for **%d** points!", title, result.Cost)
	embed := createEmbed("🎁 Gift Card Redeemed", description, ColorGold, "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Balance", Value: fmt.Sprintf("%d points", result.Balance), Inline: true},
	}
	sendEmbed(s, i, embed)
}

func handleGiftCardConvert(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	user := getInteractionUser(i)

	result, err := client.ConvertGiftCards(user.ID)
	if err != nil {
		slog.Error("Failed to convert gift cards", "error", err, "username", user.Username)
		respondFriendlyError(s, i, err.Error())
		return
	}

	description := fmt.Sprintf("Converted **%d** gift card(s) worth **%d** points back into **%d** points.",
		result.CardsConverted, result.TotalValue, result.Refund)
	embed := createEmbed("♻️ Gift Cards Converted", description, ColorNeutral, "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Balance", Value: fmt.Sprintf("%d points", result.Balance), Inline: true},
	}
	sendEmbed(s, i, embed)
}

func handleGiftCardList(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	entries, err := client.GetCatalog()
	if err != nil {
		slog.Error("Failed to fetch gift-card catalog", "error", err)
		respondFriendlyError(s, i, err.Error())
		return
	}

	kinds := make([]string, 0, len(entries))
	for kind := range entries {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	var sb strings.Builder
	for _, kind := range kinds {
		fmt.Fprintf(&sb, "**%s** (`%s`): %d points\n", entries[kind].DisplayName, kind, entries[kind].Cost)
	}
	if sb.Len() == 0 {
		sb.WriteString("No gift cards available right now.")
	}

	embed := createEmbed("🎁 Gift Card Catalog", sb.String(), ColorNeutral, "")
	sendEmbed(s, i, embed)
}
