package telegram

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tally-bot/api/internal/extract"
)

func (r *Router) handleCallback(cb tgbotapi.CallbackQuery) {
	cid := cb.Message.Chat.ID
	uid := cb.From.ID
	_, _ = r.Bot.Request(tgbotapi.NewCallback(cb.ID, "")) // ack

	// "add:<item>" comes from the /menu keyboard: one unit, no extraction.
	if name, ok := strings.CutPrefix(cb.Data, "add:"); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cat := r.catalog(ctx)
		if _, known := cat[name]; !known {
			r.send(cid, "That item is off the menu now. /menu for the current one.")
			return
		}
		r.recordOrder(ctx, cid, uid, []extract.Item{{Item: name, Quantity: 1}}, cat)
	}
}
