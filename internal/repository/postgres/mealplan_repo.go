package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/nstepura/pantry-keeper/internal/errs"
	"github.com/nstepura/pantry-keeper/internal/model"
)

// MealPlanRepo implements MealPlanRepository using PostgreSQL.
type MealPlanRepo struct{ db *DB }

// NewMealPlanRepo constructs a meal plan repository.
func NewMealPlanRepo(db *DB) *MealPlanRepo { return &MealPlanRepo{db: db} }

// Insert stores a new plan entry.
func (r *MealPlanRepo) Insert(ctx context.Context, plan *model.MealPlan) error {
	const q = `
INSERT INTO meal_plans (id, user_id, recipe_id, plan_date)
VALUES ($1, $2, $3, $4)`
	_, err := r.db.Pool.Exec(ctx, q, plan.ID, plan.UserID, plan.RecipeID, plan.Date)
	return err
}

// GetByID returns a single entry scoped to the owner.
func (r *MealPlanRepo) GetByID(ctx context.Context, userID string, id uuid.UUID) (*model.MealPlan, error) {
	const q = `
SELECT id, user_id, recipe_id, plan_date
FROM meal_plans WHERE user_id=$1 AND id=$2`
	row := r.db.Pool.QueryRow(ctx, q, userID, id)
	var p model.MealPlan
	if err := row.Scan(&p.ID, &p.UserID, &p.RecipeID, &p.Date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListByUser returns the user's entries ordered by date.
func (r *MealPlanRepo) ListByUser(ctx context.Context, userID string) ([]model.MealPlan, error) {
	const q = `
SELECT id, user_id, recipe_id, plan_date
FROM meal_plans
WHERE user_id=$1
ORDER BY plan_date, id`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MealPlan
	for rows.Next() {
		var p model.MealPlan
		if err := rows.Scan(&p.ID, &p.UserID, &p.RecipeID, &p.Date); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes an entry.
func (r *MealPlanRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	const q = `DELETE FROM meal_plans WHERE id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
