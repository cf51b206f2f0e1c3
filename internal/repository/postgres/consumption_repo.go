package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/nstepura/pantry-keeper/internal/feasibility"
	"github.com/nstepura/pantry-keeper/internal/model"
	"github.com/nstepura/pantry-keeper/internal/quantity"
)

// ConsumptionRepo implements ConsumptionRepository using PostgreSQL. The
// whole "mark as made" unit runs in one transaction: deductions and the
// feed append commit or roll back together.
type ConsumptionRepo struct {
	db  *DB
	cmp quantity.Comparator
}

// NewConsumptionRepo constructs a consumption repository with the matching
// comparator shared with the classifier.
func NewConsumptionRepo(db *DB, cmp quantity.Comparator) *ConsumptionRepo {
	return &ConsumptionRepo{db: db, cmp: cmp}
}

// MakeRecipe deducts the recipe's requirement lines from the user's
// inventory and appends the feed event. Rows are locked up front with
// FOR UPDATE over the user's whole inventory, so two transactions for the
// same user serialize and the later one observes the earlier one's commit.
// Lines with no satisfying row are skipped; insufficiency is advisory and
// computed separately by the classifier.
func (r *ConsumptionRepo) MakeRecipe(
	ctx context.Context, userID string, recipe *model.Recipe, event *model.FeedEvent,
) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	// Same scan order as InventoryRepo.ListByUser: oldest stock first.
	const sel = `
SELECT id, user_id, ingredient_name, quantity, unit, expiration_date, date_added
FROM inventory
WHERE user_id=$1
ORDER BY date_added, id
FOR UPDATE`
	rows, err := tx.Query(ctx, sel, userID)
	if err != nil {
		return err
	}
	items, err := scanItems(rows)
	rows.Close()
	if err != nil {
		return err
	}

	const upd = `UPDATE inventory SET quantity=$3 WHERE id=$1 AND user_id=$2`
	const del = `DELETE FROM inventory WHERE id=$1 AND user_id=$2`

	for _, req := range recipe.Ingredients {
		idx, ok := feasibility.FindMatch(items, req, r.cmp)
		if !ok {
			continue
		}
		rest := items[idx].Quantity.Sub(req.Quantity)
		if rest.IsPositive() {
			if _, err = tx.Exec(ctx, upd, items[idx].ID, userID, rest); err != nil {
				return err
			}
			// Keep the working snapshot live so a later line for the
			// same ingredient sees the reduced amount.
			items[idx].Quantity = rest
		} else {
			if _, err = tx.Exec(ctx, del, items[idx].ID, userID); err != nil {
				return err
			}
			items = append(items[:idx], items[idx+1:]...)
		}
	}

	const ins = `
INSERT INTO feed_events (id, user_id, recipe_id, content, likes, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.Exec(ctx, ins,
		event.ID, event.UserID, event.RecipeID, event.Content, event.Likes, event.CreatedAt); err != nil {
		return err
	}
	return nil
}
