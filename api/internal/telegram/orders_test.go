package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tally-bot/api/internal/extract"
)

var testCatalog = extract.Catalog{
	"chai":   10,
	"chips":  10,
	"samosa": 15,
}

func TestOrderAmount(t *testing.T) {
	t.Parallel()

	items := []extract.Item{
		{Item: "chai", Quantity: 2},
		{Item: "samosa", Quantity: 1},
	}
	assert.Equal(t, 35.0, orderAmount(items, testCatalog))
	assert.Equal(t, 0.0, orderAmount(nil, testCatalog))
}

func TestFormatBill(t *testing.T) {
	t.Parallel()

	items := []extract.Item{
		{Item: "chai", Quantity: 2},
		{Item: "samosa", Quantity: 1},
	}
	got := formatBill(items, testCatalog, 135)

	assert.Equal(t, "🧾 Added to your tab:\n  2 × chai — Rs 20\n  1 × samosa — Rs 15\nRunning total: Rs 135", got)
}

func TestFormatMenuSorted(t *testing.T) {
	t.Parallel()

	got := formatMenu(testCatalog)
	assert.Equal(t, "Today's menu:\n  chai — Rs 10\n  chips — Rs 10\n  samosa — Rs 15\nTap a button to add one, or just type your order.", got)
}

func TestMakeMenuKeyboard(t *testing.T) {
	t.Parallel()

	kb := makeMenuKeyboard(testCatalog)

	// three items, two buttons per row
	assert.Len(t, kb.InlineKeyboard, 2)
	assert.Len(t, kb.InlineKeyboard[0], 2)
	assert.Len(t, kb.InlineKeyboard[1], 1)

	first := kb.InlineKeyboard[0][0]
	assert.Equal(t, "chai · Rs 10", first.Text)
	assert.Equal(t, "add:chai", *first.CallbackData)
}
