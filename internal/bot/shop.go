package bot

import (
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	"go.uber.org/zap"

	"github.com/pajorstaer/rankshop/internal/domain"
	"github.com/pajorstaer/rankshop/internal/service/balanceservice"
	"github.com/pajorstaer/rankshop/internal/service/catalogservice"
)

const (
	componentShopBuy     = "shop:buy"
	componentShopBalance = "shop:balance"

	shopTitle    = "**𝔓𝔞𝔧𝔬𝔯𝔖𝔱𝔞𝔢𝔯**"
	shopImageURL = "https://i.imgur.com/pTT8u8Y.png"

	colorShopPanel = 0x9B59B6
)

// shopPanelMessage builds the panel: the shop embed, a product select menu
// when the catalog has entries, and the balance button.
func shopPanelMessage(products []domain.Product) discord.MessageCreate {
	embed := discord.NewEmbedBuilder().
		SetTitle(shopTitle).
		SetDescription("**💎 Rank shop + custom ranks**\n```Use /order for a custom rank, /topup to add funds```").
		SetColor(colorShopPanel).
		SetImage(shopImageURL).
		Build()

	msg := discord.MessageCreate{Embeds: []discord.Embed{embed}}

	if len(products) > 0 {
		options := make([]discord.StringSelectMenuOption, 0, len(products))
		for _, p := range products {
			options = append(options, discord.NewStringSelectMenuOption(p.Name, p.Name).
				WithDescription(fmt.Sprintf("Price %d", p.Price)).
				WithEmoji(discord.ComponentEmoji{Name: p.Emoji}))
		}
		msg.Components = append(msg.Components,
			discord.NewActionRow(discord.NewStringSelectMenu(componentShopBuy, "Pick a rank to buy 📖", options...)))
	}
	msg.Components = append(msg.Components,
		discord.NewActionRow(discord.NewButton(discord.ButtonStyleSecondary, "Check balance", componentShopBalance, "", 0).
			WithEmoji(discord.ComponentEmoji{Name: "💰"})))

	return msg
}

// handleSetup posts the shop panel as a plain channel message, so it survives
// restarts.
func (b *Bot) handleSetup(event *events.ApplicationCommandInteractionCreate) {
	if !b.isAdmin(event.User().ID) {
		replyEphemeral(event, msgNotAllowed)
		return
	}

	if err := event.CreateMessage(shopPanelMessage(b.srv.CatalogService.ListProducts())); err != nil {
		zap.L().Error("can't post shop panel", zap.Error(err))
	}
}

// resolvePurchase looks the product up and strictly debits the buyer. A non
// empty message means the purchase did not go through and nothing was charged.
func (b *Bot) resolvePurchase(name, userID string) (*domain.Product, string) {
	product, err := b.srv.CatalogService.GetProduct(name)
	switch {
	case errors.Is(err, catalogservice.ErrProductNotFound):
		return nil, "```This product is no longer on sale```"
	case err != nil:
		return nil, "```Something went wrong, try again later```"
	}

	err = b.srv.BalanceService.DebitStrict(b.ctx, userID, product.Price)
	switch {
	case errors.Is(err, balanceservice.ErrInsufficientBalance):
		return nil, "```❌ Not enough money```"
	case err != nil:
		return nil, "```Something went wrong, try again later```"
	}

	return product, ""
}

// handleShopBuy sells a catalog product: strict debit of the price, then the
// product's rank role is created if missing and assigned to the buyer.
func (b *Bot) handleShopBuy(event *events.ComponentInteractionCreate) {
	menu, ok := event.Data.(discord.StringSelectMenuInteractionData)
	if !ok || len(menu.Values) == 0 {
		return
	}

	userID := event.User().ID
	product, failMsg := b.resolvePurchase(menu.Values[0], userID.String())
	if failMsg != "" {
		replyComponentEphemeral(event, failMsg)
		return
	}

	guildID := event.GuildID()
	if guildID == nil {
		replyComponentEphemeral(event, "```This only works in a server```")
		return
	}

	if err := b.grantRole(*guildID, userID, product.Rank, 0); err != nil {
		zap.L().Error("can't grant rank role",
			zap.String("rank", product.Rank),
			zap.String("userID", userID.String()),
			zap.Error(err),
		)
		replyComponentEphemeral(event, "```Purchase recorded, but the role could not be assigned. Ping an admin```")
		return
	}

	replyComponentEphemeral(event, fmt.Sprintf("**✅ Rank `%s` purchased!**", product.Rank))
}

func (b *Bot) handleShopBalance(event *events.ComponentInteractionCreate) {
	balance := b.srv.BalanceService.GetBalance(event.User().ID.String())
	replyComponentEphemeral(event, fmt.Sprintf("**💰 Current balance: %d**", balance))
}

// grantRole assigns the named role to the member, creating the role first if
// the guild does not have it. A zero color keeps Discord's default.
func (b *Bot) grantRole(guildID, userID snowflake.ID, roleName string, color int) error {
	var roleID snowflake.ID

	roles, err := b.client.Rest.GetRoles(guildID, rest.WithCtx(b.ctx))
	if err != nil {
		return fmt.Errorf("can't list roles: %w", err)
	}
	for _, role := range roles {
		if role.Name == roleName {
			roleID = role.ID
			break
		}
	}

	if roleID == 0 {
		role, err := b.client.Rest.CreateRole(guildID, discord.RoleCreate{
			Name:  roleName,
			Color: color,
		}, rest.WithCtx(b.ctx))
		if err != nil {
			return fmt.Errorf("can't create role: %w", err)
		}
		roleID = role.ID
	}

	if err := b.client.Rest.AddMemberRole(guildID, userID, roleID, rest.WithCtx(b.ctx)); err != nil {
		return fmt.Errorf("can't assign role: %w", err)
	}
	return nil
}
