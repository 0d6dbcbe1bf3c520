package telegram

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tally-bot/api/internal/extract"
)

// handleOrderText is the free-text path: run the extraction pipeline over
// the message, record what it found, answer with an itemized bill.
func (r *Router) handleOrderText(msg *tgbotapi.Message) {
	cid := msg.Chat.ID
	uid := msg.From.ID

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cat := r.catalog(ctx)
	ext := extract.New(extract.Config{Timeout: r.LLMTimeout}, r.Models.Get(cid))

	items, err := ext.Parse(ctx, msg.Text, cat)
	if err != nil {
		// Covers extract.ErrExhausted; upstream details stay in the logs.
		r.send(cid, "Didn't catch anything from the menu there. Try \"2 chai\" or /menu.")
		return
	}

	r.recordOrder(ctx, cid, uid, items, cat)
}

func (r *Router) recordOrder(ctx context.Context, chatID, userID int64, items []extract.Item, cat extract.Catalog) {
	amount := orderAmount(items, cat)

	if err := r.Tabs.AddOrder(ctx, chatID, userID, items, amount); err != nil {
		log.Printf("telegram: record order: %v", err)
		r.send(chatID, "Got the order but couldn't save it. Try again.")
		return
	}

	total, err := r.Tabs.Total(ctx, chatID, userID)
	if err != nil {
		log.Printf("telegram: total after order: %v", err)
		total = amount
	}
	r.send(chatID, formatBill(items, cat, total))
}

func orderAmount(items []extract.Item, cat extract.Catalog) float64 {
	var sum float64
	for _, it := range items {
		sum += float64(it.Quantity) * cat[it.Item]
	}
	return sum
}

func formatBill(items []extract.Item, cat extract.Catalog, total float64) string {
	var b strings.Builder
	b.WriteString("🧾 Added to your tab:\n")
	for _, it := range items {
		fmt.Fprintf(&b, "  %d × %s — Rs %g\n", it.Quantity, it.Item, float64(it.Quantity)*cat[it.Item])
	}
	fmt.Fprintf(&b, "Running total: Rs %g", total)
	return b.String()
}

func formatMenu(cat extract.Catalog) string {
	names := make([]string, 0, len(cat))
	for n := range cat {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Today's menu:\n")
	for _, n := range names {
		fmt.Fprintf(&b, "  %s — Rs %g\n", n, cat[n])
	}
	b.WriteString("Tap a button to add one, or just type your order.")
	return b.String()
}
