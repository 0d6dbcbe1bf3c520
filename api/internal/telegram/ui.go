package telegram

import (
	"fmt"
	"sort"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tally-bot/api/internal/extract"
)

// makeMenuKeyboard builds one-tap "add one" buttons, two per row.
func makeMenuKeyboard(cat extract.Catalog) tgbotapi.InlineKeyboardMarkup {
	names := make([]string, 0, len(cat))
	for n := range cat {
		names = append(names, n)
	}
	sort.Strings(names)

	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, n := range names {
		label := fmt.Sprintf("%s · Rs %g", n, cat[n])
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, "add:"+n))
		if len(row) == 2 {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(row...))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
