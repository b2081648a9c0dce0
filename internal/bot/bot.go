package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/snowflake/v2"
	"go.uber.org/zap"

	"github.com/pajorstaer/rankshop/internal/config"
	"github.com/pajorstaer/rankshop/internal/service"
)

// Bot is the Discord transport. It translates slash commands and message
// components into ledger operations and typed service errors back into
// ephemeral replies; no service ever sees a Discord type.
type Bot struct {
	client *bot.Client
	srv    *service.Services
	ctx    context.Context

	adminChannelID snowflake.ID
	buyerChannelID snowflake.ID
	allowedUserID  snowflake.ID

	commandHandlers   map[string]func(event *events.ApplicationCommandInteractionCreate)
	componentHandlers map[string]func(event *events.ComponentInteractionCreate)
}

func New(cfg *config.Config, srv *service.Services) (*Bot, error) {
	b := &Bot{
		srv:               srv,
		commandHandlers:   map[string]func(event *events.ApplicationCommandInteractionCreate){},
		componentHandlers: map[string]func(event *events.ComponentInteractionCreate){},
	}

	var err error
	if b.adminChannelID, err = snowflake.Parse(cfg.AdminChannelID); err != nil {
		return nil, fmt.Errorf("invalid ADMIN_CHANNEL_ID: %w", err)
	}
	if b.buyerChannelID, err = snowflake.Parse(cfg.BuyerChannelID); err != nil {
		return nil, fmt.Errorf("invalid BUYER_CHANNEL_ID: %w", err)
	}
	if b.allowedUserID, err = snowflake.Parse(cfg.AllowedUserID); err != nil {
		return nil, fmt.Errorf("invalid ALLOWED_USER_ID: %w", err)
	}

	b.registerCommands()

	client, err := disgo.New(cfg.BotToken,
		bot.WithGatewayConfigOpts(
			gateway.WithIntents(
				gateway.IntentGuilds,
				gateway.IntentGuildMembers,
			),
		),
		bot.WithCacheConfigOpts(
			cache.WithCaches(cache.FlagGuilds, cache.FlagRoles, cache.FlagMembers),
		),
		bot.WithEventListenerFunc(b.onApplicationCommandInteraction),
		bot.WithEventListenerFunc(b.onComponentInteraction),
		bot.WithEventListenerFunc(b.onReady),
	)
	if err != nil {
		return nil, fmt.Errorf("can't create discord client: %w", err)
	}
	b.client = client

	return b, nil
}

// Start opens the gateway and overwrites the application commands. ctx also
// bounds the service calls made from interaction handlers.
func (b *Bot) Start(ctx context.Context) error {
	b.ctx = ctx

	if err := b.client.OpenGateway(ctx); err != nil {
		return fmt.Errorf("can't open gateway: %w", err)
	}

	if _, err := b.client.Rest.SetGlobalCommands(b.client.ApplicationID, b.commandList()); err != nil {
		return fmt.Errorf("can't register commands: %w", err)
	}

	return nil
}

func (b *Bot) Close(ctx context.Context) {
	b.client.Close(ctx)
}

func (b *Bot) onReady(event *events.Ready) {
	zap.L().Info("discord gateway ready", zap.String("username", event.User.Username))
}

func (b *Bot) onApplicationCommandInteraction(event *events.ApplicationCommandInteractionCreate) {
	if h, ok := b.commandHandlers[event.Data.CommandName()]; ok {
		go h(event)
	}
}

func (b *Bot) onComponentInteraction(event *events.ComponentInteractionCreate) {
	customID := event.Data.CustomID()
	for prefix, h := range b.componentHandlers {
		if strings.HasPrefix(customID, prefix) {
			go h(event)
			return
		}
	}
}

func (b *Bot) isAdmin(userID snowflake.ID) bool {
	return userID == b.allowedUserID
}

const msgNotAllowed = "```You are not allowed to use this command```"

func ephemeralMessage(content string) discord.MessageCreate {
	return discord.MessageCreate{
		Content: content,
		Flags:   discord.MessageFlagEphemeral,
	}
}

// replyEphemeral answers the interaction with a short private message.
func replyEphemeral(event *events.ApplicationCommandInteractionCreate, content string) {
	if err := event.CreateMessage(ephemeralMessage(content)); err != nil {
		zap.L().Error("can't respond to interaction", zap.Error(err))
	}
}

func replyComponentEphemeral(event *events.ComponentInteractionCreate, content string) {
	if err := event.CreateMessage(ephemeralMessage(content)); err != nil {
		zap.L().Error("can't respond to interaction", zap.Error(err))
	}
}
