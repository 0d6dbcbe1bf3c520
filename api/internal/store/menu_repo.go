package store

import (
	"context"
	"database/sql"

	"tally-bot/api/internal/extract"
)

var ErrNotFound = sql.ErrNoRows

// MenuRepo reads and edits the item->price catalog.
type MenuRepo struct{ DB *sql.DB }

func NewMenuRepo(db *sql.DB) *MenuRepo { return &MenuRepo{DB: db} }

// Items returns the whole catalog. An empty table yields an empty (non-nil)
// catalog; callers decide whether to fall back to extract.DefaultCatalog.
func (r *MenuRepo) Items(ctx context.Context) (extract.Catalog, error) {
	const q = `select name, price from menu_items order by name`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cat := extract.Catalog{}
	for rows.Next() {
		var (
			name  string
			price float64
		)
		if err := rows.Scan(&name, &price); err != nil {
			return nil, err
		}
		cat[name] = price
	}
	return cat, rows.Err()
}

func (r *MenuRepo) Upsert(ctx context.Context, name string, price float64) error {
	const q = `
insert into menu_items (name, price) values ($1, $2)
on conflict (name) do update set price = excluded.price`
	_, err := r.DB.ExecContext(ctx, q, name, price)
	return err
}

func (r *MenuRepo) Remove(ctx context.Context, name string) error {
	const q = `delete from menu_items where name = $1`
	res, err := r.DB.ExecContext(ctx, q, name)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return ErrNotFound
	}
	return nil
}
