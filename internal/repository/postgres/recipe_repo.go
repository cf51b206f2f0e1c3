package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/nstepura/pantry-keeper/internal/errs"
	"github.com/nstepura/pantry-keeper/internal/model"
)

// RecipeRepo implements RecipeRepository using PostgreSQL. Requirement
// lines and nutrition live in JSONB columns so their insertion order
// survives round-trips.
type RecipeRepo struct{ db *DB }

// NewRecipeRepo constructs a recipe catalog repository.
func NewRecipeRepo(db *DB) *RecipeRepo { return &RecipeRepo{db: db} }

// ListAll returns the whole catalog.
func (r *RecipeRepo) ListAll(ctx context.Context) ([]model.Recipe, error) {
	const q = `
SELECT id, name, ingredients, nutrition, dietary_tags
FROM recipes
ORDER BY name, id`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Recipe
	for rows.Next() {
		var rec model.Recipe
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Ingredients, &rec.Nutrition, &rec.DietaryTags); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetByID returns a single recipe.
func (r *RecipeRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	const q = `
SELECT id, name, ingredients, nutrition, dietary_tags
FROM recipes WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var rec model.Recipe
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Ingredients, &rec.Nutrition, &rec.DietaryTags); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrRecipeNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// Insert stores a new catalog entry (seeder path).
func (r *RecipeRepo) Insert(ctx context.Context, recipe *model.Recipe) error {
	const q = `
INSERT INTO recipes (id, name, ingredients, nutrition, dietary_tags)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Pool.Exec(ctx, q,
		recipe.ID, recipe.Name, recipe.Ingredients, recipe.Nutrition, recipe.DietaryTags)
	return err
}
