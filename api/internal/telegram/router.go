package telegram

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tally-bot/api/internal/extract"
	"tally-bot/api/internal/llm/gemini"
	"tally-bot/api/internal/store"
)

type Router struct {
	Bot    *tgbotapi.BotAPI
	Models *extract.Manager

	// For /model: new engines are built from the same key.
	GeminiAPIKey string
	GeminiModel  string
	LLMTimeout   time.Duration

	Menu *store.MenuRepo
	Tabs *store.TabRepo

	// AdminID may edit the menu; zero disables edits.
	AdminID int64
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.CallbackQuery != nil {
		r.handleCallback(*upd.CallbackQuery)
		return
	}
	if upd.Message == nil {
		return
	}

	if upd.Message.IsCommand() {
		r.HandleCommand(upd)
		return
	}

	if txt := strings.TrimSpace(upd.Message.Text); txt != "" {
		r.handleOrderText(upd.Message)
	}
}

func (r *Router) HandleCommand(upd tgbotapi.Update) {
	msg := upd.Message
	cid := msg.Chat.ID
	uid := msg.From.ID

	switch msg.Command() {
	case "start":
		r.send(cid, "Send me your order in plain words — \"2 chai\", \"ek samosa aur chips\" — and I'll keep your tab.\n"+
			"Commands: /menu /total /paid /model /health")

	case "health":
		r.send(cid, "✅ OK")

	case "menu":
		r.sendMenu(cid)

	case "total":
		total, err := r.Tabs.Total(context.Background(), cid, uid)
		if err != nil {
			log.Printf("telegram: total: %v", err)
			r.send(cid, "Couldn't fetch your tab right now, try again.")
			return
		}
		r.send(cid, fmt.Sprintf("Your tab: Rs %g", total))

	case "paid":
		err := r.Tabs.Reset(context.Background(), cid, uid)
		if err == store.ErrNotFound {
			r.send(cid, "Nothing on your tab.")
			return
		}
		if err != nil {
			log.Printf("telegram: reset: %v", err)
			r.send(cid, "Couldn't reset your tab right now, try again.")
			return
		}
		r.send(cid, "✅ Settled. Tab is back to zero.")

	case "model":
		r.handleModelCommand(cid, msg.Text)

	case "additem", "removeitem":
		r.handleMenuEdit(cid, uid, msg.Command(), msg.Text)

	default:
		r.send(cid, "Unknown command. Try /menu, /total or /paid.")
	}
}

// handleModelCommand switches the Gemini model for this chat.
//
//	/model            -> show current
//	/model <name>     -> switch, e.g. /model gemini-2.5-pro
func (r *Router) handleModelCommand(chatID int64, cmd string) {
	args := strings.Fields(strings.TrimSpace(strings.TrimPrefix(cmd, "/model")))
	cur := r.Models.Get(chatID)
	if len(args) == 0 {
		r.send(chatID, "Current model: "+cur.GetModel()+"\nUsage: /model <name>")
		return
	}
	name := strings.TrimSpace(args[0])
	r.Models.Set(chatID, gemini.New(r.GeminiAPIKey, name))
	r.send(chatID, "✅ Model: "+name)
}

func (r *Router) handleMenuEdit(chatID, userID int64, cmd, text string) {
	if r.AdminID == 0 || userID != r.AdminID {
		r.send(chatID, "Only the canteen admin can edit the menu.")
		return
	}
	args := strings.Fields(strings.TrimSpace(strings.TrimPrefix(text, "/"+cmd)))

	switch cmd {
	case "additem":
		if len(args) != 2 {
			r.send(chatID, "Usage: /additem <name> <price>")
			return
		}
		name := strings.ToLower(args[0])
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil || price < 0 {
			r.send(chatID, "Price must be a non-negative number.")
			return
		}
		if err := r.Menu.Upsert(context.Background(), name, price); err != nil {
			log.Printf("telegram: additem: %v", err)
			r.send(chatID, "Couldn't save the item, try again.")
			return
		}
		r.send(chatID, fmt.Sprintf("✅ %s — Rs %g", name, price))

	case "removeitem":
		if len(args) != 1 {
			r.send(chatID, "Usage: /removeitem <name>")
			return
		}
		name := strings.ToLower(args[0])
		err := r.Menu.Remove(context.Background(), name)
		if err == store.ErrNotFound {
			r.send(chatID, "No such item on the menu.")
			return
		}
		if err != nil {
			log.Printf("telegram: removeitem: %v", err)
			r.send(chatID, "Couldn't remove the item, try again.")
			return
		}
		r.send(chatID, "✅ Removed "+name)
	}
}

func (r *Router) sendMenu(chatID int64) {
	cat := r.catalog(context.Background())
	msg := tgbotapi.NewMessage(chatID, formatMenu(cat))
	msg.ReplyMarkup = makeMenuKeyboard(cat)
	_, _ = r.Bot.Send(msg)
}

// catalog loads the menu from Postgres. On error or an empty table the
// built-in defaults keep the bot usable.
func (r *Router) catalog(ctx context.Context) extract.Catalog {
	cat, err := r.Menu.Items(ctx)
	if err != nil {
		log.Printf("telegram: menu load failed, using defaults: %v", err)
		return extract.DefaultCatalog
	}
	if len(cat) == 0 {
		return extract.DefaultCatalog
	}
	return cat
}

func (r *Router) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	_, _ = r.Bot.Send(msg)
}
