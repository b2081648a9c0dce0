package bot

import (
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/omit"

	"github.com/pajorstaer/rankshop/internal/service/balanceservice"
	"github.com/pajorstaer/rankshop/internal/service/catalogservice"
	"github.com/pajorstaer/rankshop/internal/service/orderservice"
	"github.com/pajorstaer/rankshop/internal/service/topupservice"
)

func (b *Bot) commandList() []discord.ApplicationCommandCreate {
	adminPerm := discord.PermissionAdministrator

	return []discord.ApplicationCommandCreate{
		discord.SlashCommandCreate{
			Name:                     "setup",
			Description:              "Post the rank shop panel in this channel (Admin Only)",
			DefaultMemberPermissions: omit.New(&adminPerm),
		},
		discord.SlashCommandCreate{
			Name:                     "product",
			Description:              "Manage catalog rank products (Admin Only)",
			DefaultMemberPermissions: omit.New(&adminPerm),
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionSubCommand{
					Name:        "add",
					Description: "Add a rank product to the catalog",
					Options: []discord.ApplicationCommandOption{
						discord.ApplicationCommandOptionString{
							Name:        "emoji",
							Description: "Emoji shown next to the product",
							Required:    true,
						},
						discord.ApplicationCommandOptionString{
							Name:        "name",
							Description: "Product name (unique)",
							Required:    true,
						},
						discord.ApplicationCommandOptionString{
							Name:        "rank",
							Description: "Role name granted on purchase",
							Required:    true,
						},
						discord.ApplicationCommandOptionInt{
							Name:        "price",
							Description: "Price in shop currency",
							Required:    true,
						},
					},
				},
				discord.ApplicationCommandOptionSubCommand{
					Name:        "remove",
					Description: "Remove a rank product from the catalog",
					Options: []discord.ApplicationCommandOption{
						discord.ApplicationCommandOptionString{
							Name:        "name",
							Description: "Product name",
							Required:    true,
						},
					},
				},
			},
		},
		discord.SlashCommandCreate{
			Name:                     "money",
			Description:              "Manage user balances (Admin Only)",
			DefaultMemberPermissions: omit.New(&adminPerm),
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionSubCommand{
					Name:        "add",
					Description: "Credit a user's balance",
					Options: []discord.ApplicationCommandOption{
						discord.ApplicationCommandOptionUser{
							Name:        "user",
							Description: "User to credit",
							Required:    true,
						},
						discord.ApplicationCommandOptionInt{
							Name:        "amount",
							Description: "Amount to add",
							Required:    true,
						},
					},
				},
				discord.ApplicationCommandOptionSubCommand{
					Name:        "remove",
					Description: "Deduct from a user's balance (floors at zero)",
					Options: []discord.ApplicationCommandOption{
						discord.ApplicationCommandOptionUser{
							Name:        "user",
							Description: "User to deduct from",
							Required:    true,
						},
						discord.ApplicationCommandOptionInt{
							Name:        "amount",
							Description: "Amount to deduct",
							Required:    true,
						},
					},
				},
			},
		},
		discord.SlashCommandCreate{
			Name:        "order",
			Description: "Order a custom rank with your own name and color",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "rank",
					Description: "Name of the rank you want",
					Required:    true,
				},
				discord.ApplicationCommandOptionString{
					Name:        "color",
					Description: "Hex color, e.g. #ff66cc",
					Required:    true,
				},
			},
		},
		discord.SlashCommandCreate{
			Name:        "topup",
			Description: "Top up your balance with a gift link",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "link",
					Description: "Paste your TrueMoney gift link",
					Required:    true,
				},
			},
		},
		discord.SlashCommandCreate{
			Name:        "balance",
			Description: "Check your balance",
		},
	}
}

func (b *Bot) registerCommands() {
	b.commandHandlers["setup"] = b.handleSetup
	b.commandHandlers["product"] = b.handleProduct
	b.commandHandlers["money"] = b.handleMoney
	b.commandHandlers["order"] = b.handleOrder
	b.commandHandlers["topup"] = b.handleTopup
	b.commandHandlers["balance"] = b.handleBalance

	b.componentHandlers[componentShopBuy] = b.handleShopBuy
	b.componentHandlers[componentShopBalance] = b.handleShopBalance
	b.componentHandlers[componentOrderPrefix] = b.handleOrderDecision
}

func (b *Bot) handleProduct(event *events.ApplicationCommandInteractionCreate) {
	if !b.isAdmin(event.User().ID) {
		replyEphemeral(event, msgNotAllowed)
		return
	}
	data := event.SlashCommandInteractionData()

	switch *data.SubCommandName {
	case "add":
		product, err := b.srv.CatalogService.AddProduct(b.ctx,
			data.String("emoji"), data.String("name"), data.String("rank"), data.Int("price"))
		switch {
		case errors.Is(err, catalogservice.ErrProductExists):
			replyEphemeral(event, "```A product with this name already exists```")
		case errors.Is(err, catalogservice.ErrInvalidPrice):
			replyEphemeral(event, "```Price must not be negative```")
		case err != nil:
			replyEphemeral(event, "```Something went wrong, try again later```")
		default:
			replyEphemeral(event, fmt.Sprintf("✅ Added rank product **%s** for %d", product.Name, product.Price))
		}
	case "remove":
		name := data.String("name")
		err := b.srv.CatalogService.RemoveProduct(b.ctx, name)
		switch {
		case errors.Is(err, catalogservice.ErrProductNotFound):
			replyEphemeral(event, "```No product with this name```")
		case err != nil:
			replyEphemeral(event, "```Something went wrong, try again later```")
		default:
			replyEphemeral(event, fmt.Sprintf("✅ Removed rank product **%s**", name))
		}
	}
}

func (b *Bot) handleMoney(event *events.ApplicationCommandInteractionCreate) {
	if !b.isAdmin(event.User().ID) {
		replyEphemeral(event, msgNotAllowed)
		return
	}
	data := event.SlashCommandInteractionData()
	userID := data.Snowflake("user").String()
	amount := data.Int("amount")

	switch *data.SubCommandName {
	case "add":
		err := b.srv.BalanceService.Credit(b.ctx, userID, amount)
		switch {
		case errors.Is(err, balanceservice.ErrInvalidAmount):
			replyEphemeral(event, "```Amount must be positive```")
		case err != nil:
			replyEphemeral(event, "```Something went wrong, try again later```")
		default:
			replyEphemeral(event, fmt.Sprintf("✅ Added %d to <@%s>", amount, userID))
		}
	case "remove":
		err := b.srv.BalanceService.DebitClamped(b.ctx, userID, amount)
		switch {
		case errors.Is(err, balanceservice.ErrInvalidAmount):
			replyEphemeral(event, "```Amount must be positive```")
		case err != nil:
			replyEphemeral(event, "```Something went wrong, try again later```")
		default:
			replyEphemeral(event, fmt.Sprintf("✅ Deducted %d from <@%s>", amount, userID))
		}
	}
}

func (b *Bot) handleOrder(event *events.ApplicationCommandInteractionCreate) {
	data := event.SlashCommandInteractionData()
	userID := event.User().ID.String()

	order, err := b.srv.OrderService.PlaceOrder(b.ctx, userID, data.String("rank"), data.String("color"))
	switch {
	case errors.Is(err, orderservice.ErrInvalidColor):
		replyEphemeral(event, "```❌ Invalid hex color (example: #ff66cc)```")
		return
	case errors.Is(err, orderservice.ErrInsufficientFunds):
		replyEphemeral(event, "```❌ Not enough money for the order fee```")
		return
	case err != nil:
		replyEphemeral(event, "```Something went wrong, try again later```")
		return
	}

	b.sendApprovalRequest(order)
	replyEphemeral(event, "**⏰ Order sent, waiting for admin approval!**")
}

func (b *Bot) handleTopup(event *events.ApplicationCommandInteractionCreate) {
	data := event.SlashCommandInteractionData()
	userID := event.User().ID.String()

	amount, err := b.srv.TopupService.ProcessTopup(b.ctx, userID, data.String("link"))
	switch {
	case errors.Is(err, topupservice.ErrTopupUnavailable):
		replyEphemeral(event, "```❌ Topups are currently disabled```")
	case errors.Is(err, topupservice.ErrTopupRejected):
		replyEphemeral(event, "```❌ Invalid gift link```")
	case err != nil:
		replyEphemeral(event, "```Something went wrong, try again later```")
	default:
		replyEphemeral(event, fmt.Sprintf("```✅ Topup successful +%d```", amount))
	}
}

func (b *Bot) handleBalance(event *events.ApplicationCommandInteractionCreate) {
	balance := b.srv.BalanceService.GetBalance(event.User().ID.String())
	replyEphemeral(event, fmt.Sprintf("**💰 Current balance: %d**", balance))
}
