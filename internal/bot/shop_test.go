package bot

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pajorstaer/rankshop/internal/domain"
	"github.com/pajorstaer/rankshop/internal/service"
	"github.com/pajorstaer/rankshop/internal/store"
)

func newTestBot(t *testing.T) *Bot {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return &Bot{
		srv: service.New(st, 50, nil),
		ctx: context.Background(),
	}
}

func TestEphemeralMessage(t *testing.T) {
	msg := ephemeralMessage("hello")
	assert.Equal(t, "hello", msg.Content)
	assert.Equal(t, discord.MessageFlagEphemeral, msg.Flags)
}

func TestShopPanelMessage(t *testing.T) {
	products := []domain.Product{
		{Emoji: "💎", Name: "VIP", Rank: "VIP-Role", Price: 100},
		{Emoji: "🔥", Name: "MVP", Rank: "MVP-Role", Price: 200},
	}

	msg := shopPanelMessage(products)

	require.Len(t, msg.Embeds, 1)
	require.Len(t, msg.Components, 2)

	row, ok := msg.Components[0].(discord.ActionRowComponent)
	require.True(t, ok)
	require.Len(t, row.Components, 1)
	menu, ok := row.Components[0].(discord.StringSelectMenuComponent)
	require.True(t, ok)
	assert.Equal(t, componentShopBuy, menu.CustomID)
	require.Len(t, menu.Options, 2)
	assert.Equal(t, "VIP", menu.Options[0].Value)
	assert.Equal(t, "MVP", menu.Options[1].Value)

	row, ok = msg.Components[1].(discord.ActionRowComponent)
	require.True(t, ok)
	require.Len(t, row.Components, 1)
	button, ok := row.Components[0].(discord.ButtonComponent)
	require.True(t, ok)
	assert.Equal(t, componentShopBalance, button.CustomID)
}

func TestShopPanelMessageEmptyCatalog(t *testing.T) {
	msg := shopPanelMessage(nil)

	require.Len(t, msg.Components, 1)
	row, ok := msg.Components[0].(discord.ActionRowComponent)
	require.True(t, ok)
	require.Len(t, row.Components, 1)
	_, ok = row.Components[0].(discord.ButtonComponent)
	assert.True(t, ok)
}

func TestResolvePurchase(t *testing.T) {
	b := newTestBot(t)
	_, err := b.srv.CatalogService.AddProduct(b.ctx, "💎", "VIP", "VIP-Role", 100)
	require.NoError(t, err)
	require.NoError(t, b.srv.BalanceService.Credit(b.ctx, "100", 150))

	t.Run("unknown product", func(t *testing.T) {
		product, failMsg := b.resolvePurchase("Ghost", "100")
		assert.Nil(t, product)
		assert.NotEmpty(t, failMsg)
		assert.Equal(t, 150, b.srv.BalanceService.GetBalance("100"))
	})

	t.Run("insufficient balance", func(t *testing.T) {
		product, failMsg := b.resolvePurchase("VIP", "200")
		assert.Nil(t, product)
		assert.NotEmpty(t, failMsg)
		assert.Equal(t, 0, b.srv.BalanceService.GetBalance("200"))
	})

	t.Run("success debits the price", func(t *testing.T) {
		product, failMsg := b.resolvePurchase("VIP", "100")
		require.NotNil(t, product)
		assert.Empty(t, failMsg)
		assert.Equal(t, "VIP-Role", product.Rank)
		assert.Equal(t, 50, b.srv.BalanceService.GetBalance("100"))
	})
}
