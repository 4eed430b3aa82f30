package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// GiveCommand returns the points transfer command definition and handler
func GiveCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	amountMin := float64(1)

	cmd := &discordgo.ApplicationCommand{
		Name:        "give",
		Description: "Give some of your points to another user",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Who receives the points",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "How many points to give",
				Required:    true,
				MinValue:    &amountMin,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		sender := getInteractionUser(i)
		options := getOptions(i)
		recipient := options[0].UserValue(s)
		amount := int(options[1].IntValue())

		if recipient.Bot {
			respondError(s, i, "Bots don't need points.")
			return
		}

		result, err := client.Transfer(sender.ID, recipient.ID, amount)
		if err != nil {
			slog.Error("Failed to transfer points", "error", err, "sender", sender.ID, "recipient", recipient.ID)
			respondFriendlyError(s, i, err.Error())
			return
		}

		description := fmt.Sprintf("**%d** points sent to <@%s>!", result.Amount, result.RecipientID)
		embed := createEmbed("💸 Points Sent", description, ColorWin, "")
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Your Balance", Value: fmt.Sprintf("%d points", result.SenderBalance), Inline: true},
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
