package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/nstepura/pantry-keeper/internal/errs"
	"github.com/nstepura/pantry-keeper/internal/model"
)

// InventoryRepo implements InventoryRepository using PostgreSQL.
type InventoryRepo struct{ db *DB }

// NewInventoryRepo constructs an inventory repository.
func NewInventoryRepo(db *DB) *InventoryRepo { return &InventoryRepo{db: db} }

// ListByUser returns the user's rows ordered oldest-added first. The order
// fixes the tie-break when several rows qualify for one requirement line.
func (r *InventoryRepo) ListByUser(ctx context.Context, userID string) ([]model.InventoryItem, error) {
	const q = `
SELECT id, user_id, ingredient_name, quantity, unit, expiration_date, date_added
FROM inventory
WHERE user_id=$1
ORDER BY date_added, id`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

// GetItem returns a single row scoped to the owner.
func (r *InventoryRepo) GetItem(ctx context.Context, userID string, itemID uuid.UUID) (*model.InventoryItem, error) {
	const q = `
SELECT id, user_id, ingredient_name, quantity, unit, expiration_date, date_added
FROM inventory WHERE user_id=$1 AND id=$2`
	row := r.db.Pool.QueryRow(ctx, q, userID, itemID)
	var it model.InventoryItem
	if err := row.Scan(&it.ID, &it.UserID, &it.IngredientName, &it.Quantity, &it.Unit, &it.ExpirationDate, &it.DateAdded); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &it, nil
}

// Insert stores a new row.
func (r *InventoryRepo) Insert(ctx context.Context, item *model.InventoryItem) error {
	const q = `
INSERT INTO inventory (id, user_id, ingredient_name, quantity, unit, expiration_date, date_added)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Pool.Exec(ctx, q,
		item.ID, item.UserID, item.IngredientName, item.Quantity, item.Unit, item.ExpirationDate, item.DateAdded)
	return err
}

// UpdateQuantity sets a new quantity on an existing row.
func (r *InventoryRepo) UpdateQuantity(ctx context.Context, userID string, itemID uuid.UUID, quantity decimal.Decimal) error {
	const q = `UPDATE inventory SET quantity=$3 WHERE id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, itemID, userID, quantity)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes a row.
func (r *InventoryRepo) Delete(ctx context.Context, userID string, itemID uuid.UUID) error {
	const q = `DELETE FROM inventory WHERE id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, itemID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// scanItems drains an inventory row set.
func scanItems(rows pgx.Rows) ([]model.InventoryItem, error) {
	var out []model.InventoryItem
	for rows.Next() {
		var it model.InventoryItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.IngredientName, &it.Quantity, &it.Unit, &it.ExpirationDate, &it.DateAdded); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
