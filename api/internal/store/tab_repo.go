package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"tally-bot/api/internal/extract"
)

// TabRepo keeps per-user running totals plus an append-only order ledger.
// Users are keyed by (chat_id, user_id) so the same person can run separate
// tabs in separate groups.
type TabRepo struct{ DB *sql.DB }

func NewTabRepo(db *sql.DB) *TabRepo { return &TabRepo{DB: db} }

// AddOrder records one accepted extraction: a ledger row and a running-total
// bump, in a single transaction.
func (r *TabRepo) AddOrder(ctx context.Context, chatID, userID int64, items []extract.Item, amount float64) error {
	js, _ := json.Marshal(items)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const insOrder = `
insert into orders (chat_id, user_id, items_json, amount)
values ($1, $2, $3, $4)`
	if _, err := tx.ExecContext(ctx, insOrder, chatID, userID, js, amount); err != nil {
		return err
	}

	const upsertTab = `
insert into tabs (chat_id, user_id, total) values ($1, $2, $3)
on conflict (chat_id, user_id) do update
set total = tabs.total + excluded.total,
    updated_at = now()`
	if _, err := tx.ExecContext(ctx, upsertTab, chatID, userID, amount); err != nil {
		return err
	}

	return tx.Commit()
}

// Total returns the running total; a user with no tab owes zero.
func (r *TabRepo) Total(ctx context.Context, chatID, userID int64) (float64, error) {
	const q = `select total from tabs where chat_id = $1 and user_id = $2`
	var total float64
	err := r.DB.QueryRowContext(ctx, q, chatID, userID).Scan(&total)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return total, err
}

// Reset zeroes the tab after settling up. The ledger keeps its history.
func (r *TabRepo) Reset(ctx context.Context, chatID, userID int64) error {
	const q = `update tabs set total = 0, updated_at = now() where chat_id = $1 and user_id = $2`
	res, err := r.DB.ExecContext(ctx, q, chatID, userID)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return ErrNotFound
	}
	return nil
}
