package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	"go.uber.org/zap"

	"github.com/pajorstaer/rankshop/internal/domain"
	"github.com/pajorstaer/rankshop/internal/service/orderservice"
)

const (
	componentOrderPrefix = "order:"

	decisionApprove = "approve"
	decisionDeny    = "deny"

	colorOrderPending  = 0xFFCC00
	colorOrderApproved = 0x2ECC71
	colorOrderDenied   = 0xE74C3C
)

// decoratedRankName wraps a rank in the ornament the custom-rank roles carry.
func decoratedRankName(rank string) string {
	return fmt.Sprintf("𐙚 ˚%sᡣ", rank)
}

// approvalRequestMessage renders a pending order with approve/deny buttons
// carrying the order id in their custom ids.
func approvalRequestMessage(order *domain.Order) discord.MessageCreate {
	embed := discord.NewEmbedBuilder().
		SetTitle("⏰ New rank order").
		SetDescription(fmt.Sprintf(
			"**Order:** #%d\n**User:** <@%s>\n**Rank:** %s\n**Color:** %s\n**Price:** %d",
			order.OrderID, order.UserID, order.RankName, order.Color, order.Price,
		)).
		SetColor(colorOrderPending).
		Build()

	return discord.MessageCreate{
		Embeds: []discord.Embed{embed},
		Components: []discord.LayoutComponent{
			discord.NewActionRow(
				discord.NewButton(discord.ButtonStyleSuccess, "Approve", fmt.Sprintf("%s%d:%s", componentOrderPrefix, order.OrderID, decisionApprove), "", 0),
				discord.NewButton(discord.ButtonStyleDanger, "Deny", fmt.Sprintf("%s%d:%s", componentOrderPrefix, order.OrderID, decisionDeny), "", 0),
			),
		},
	}
}

// sendApprovalRequest posts the pending order to the admin channel.
func (b *Bot) sendApprovalRequest(order *domain.Order) {
	if _, err := b.client.Rest.CreateMessage(b.adminChannelID, approvalRequestMessage(order), rest.WithCtx(b.ctx)); err != nil {
		zap.L().Error("can't post approval request",
			zap.Int("orderID", order.OrderID),
			zap.Error(err),
		)
	}
}

// handleOrderDecision resolves an approve/deny button press from the admin
// channel. Approval creates the decorated rank role and assigns it; denial
// refunds the order price. The buyer is notified either way.
func (b *Bot) handleOrderDecision(event *events.ComponentInteractionCreate) {
	if !b.isAdmin(event.User().ID) {
		replyComponentEphemeral(event, msgNotAllowed)
		return
	}

	parts := strings.Split(strings.TrimPrefix(event.Data.CustomID(), componentOrderPrefix), ":")
	if len(parts) != 2 {
		return
	}
	orderID, err := strconv.Atoi(parts[0])
	if err != nil {
		return
	}
	decision := parts[1]

	var order *domain.Order
	switch decision {
	case decisionApprove:
		order, err = b.srv.OrderService.ApproveOrder(b.ctx, orderID)
	case decisionDeny:
		order, err = b.srv.OrderService.DenyOrder(b.ctx, orderID)
	default:
		return
	}
	switch {
	case errors.Is(err, orderservice.ErrOrderNotFound):
		replyComponentEphemeral(event, "```This order no longer exists```")
		return
	case errors.Is(err, orderservice.ErrOrderAlreadyFinalized):
		replyComponentEphemeral(event, "```This order was already resolved```")
		return
	case err != nil:
		replyComponentEphemeral(event, "```Something went wrong, try again later```")
		return
	}

	if decision == decisionApprove {
		b.fulfillOrder(event, order)
	}

	b.notifyBuyer(order)
	replyComponentEphemeral(event, fmt.Sprintf("**Order #%d %s**", order.OrderID, strings.ToLower(order.Status)))
}

// fulfillOrder creates the custom rank role in the guild the decision came
// from and assigns it to the buyer.
func (b *Bot) fulfillOrder(event *events.ComponentInteractionCreate, order *domain.Order) {
	guildID := event.GuildID()
	if guildID == nil {
		return
	}

	color, err := strconv.ParseInt(strings.TrimPrefix(order.Color, "#"), 16, 32)
	if err != nil {
		zap.L().Error("can't parse order color",
			zap.Int("orderID", order.OrderID),
			zap.String("color", order.Color),
			zap.Error(err),
		)
		return
	}

	buyerID, err := snowflake.Parse(order.UserID)
	if err != nil {
		zap.L().Error("can't parse buyer id",
			zap.Int("orderID", order.OrderID),
			zap.String("userID", order.UserID),
			zap.Error(err),
		)
		return
	}

	if err := b.grantRole(*guildID, buyerID, decoratedRankName(order.RankName), int(color)); err != nil {
		zap.L().Error("can't fulfill order",
			zap.Int("orderID", order.OrderID),
			zap.Error(err),
		)
	}
}

// buyerNoticeMessage renders the decision outcome for the buyer channel.
func buyerNoticeMessage(order *domain.Order) discord.MessageCreate {
	var embed discord.Embed
	if order.Status == domain.ApprovedOrderStatus {
		embed = discord.NewEmbedBuilder().
			SetTitle("✅ Order approved").
			SetDescription(fmt.Sprintf("<@%s> your rank `%s` is ready!", order.UserID, order.RankName)).
			SetColor(colorOrderApproved).
			Build()
	} else {
		embed = discord.NewEmbedBuilder().
			SetTitle("❌ Order denied").
			SetDescription(fmt.Sprintf("<@%s> your order for `%s` was denied, %d refunded.", order.UserID, order.RankName, order.Price)).
			SetColor(colorOrderDenied).
			Build()
	}
	return discord.MessageCreate{Embeds: []discord.Embed{embed}}
}

// notifyBuyer posts the decision to the buyer channel.
func (b *Bot) notifyBuyer(order *domain.Order) {
	if _, err := b.client.Rest.CreateMessage(b.buyerChannelID, buyerNoticeMessage(order), rest.WithCtx(b.ctx)); err != nil {
		zap.L().Error("can't notify buyer",
			zap.Int("orderID", order.OrderID),
			zap.Error(err),
		)
	}
}
