package bot

import (
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pajorstaer/rankshop/internal/domain"
)

func TestDecoratedRankName(t *testing.T) {
	assert.Equal(t, "𐙚 ˚Shadowᡣ", decoratedRankName("Shadow"))
	assert.Equal(t, "𐙚 ˚ᡣ", decoratedRankName(""))
}

func TestApprovalRequestMessage(t *testing.T) {
	order := &domain.Order{
		OrderID:  7,
		UserID:   "319183949206185984",
		RankName: "Shadow",
		Color:    "#ff66cc",
		Price:    50,
		Status:   domain.PendingOrderStatus,
	}

	msg := approvalRequestMessage(order)

	require.Len(t, msg.Embeds, 1)
	assert.Contains(t, msg.Embeds[0].Description, "#7")
	assert.Contains(t, msg.Embeds[0].Description, "Shadow")
	assert.Contains(t, msg.Embeds[0].Description, "#ff66cc")

	require.Len(t, msg.Components, 1)
	row, ok := msg.Components[0].(discord.ActionRowComponent)
	require.True(t, ok)
	require.Len(t, row.Components, 2)

	approve, ok := row.Components[0].(discord.ButtonComponent)
	require.True(t, ok)
	assert.Equal(t, "order:7:approve", approve.CustomID)
	assert.Equal(t, discord.ButtonStyleSuccess, approve.Style)

	deny, ok := row.Components[1].(discord.ButtonComponent)
	require.True(t, ok)
	assert.Equal(t, "order:7:deny", deny.CustomID)
	assert.Equal(t, discord.ButtonStyleDanger, deny.Style)
}

func TestBuyerNoticeMessage(t *testing.T) {
	approved := &domain.Order{OrderID: 1, UserID: "100", RankName: "Shadow", Price: 50, Status: domain.ApprovedOrderStatus}
	msg := buyerNoticeMessage(approved)
	require.Len(t, msg.Embeds, 1)
	assert.Equal(t, "✅ Order approved", msg.Embeds[0].Title)
	assert.Contains(t, msg.Embeds[0].Description, "<@100>")

	denied := &domain.Order{OrderID: 2, UserID: "200", RankName: "Ghost", Price: 50, Status: domain.DeniedOrderStatus}
	msg = buyerNoticeMessage(denied)
	require.Len(t, msg.Embeds, 1)
	assert.Equal(t, "❌ Order denied", msg.Embeds[0].Title)
	assert.Contains(t, msg.Embeds[0].Description, "50 refunded")
}
