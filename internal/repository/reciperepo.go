package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/nstepura/pantry-keeper/internal/model"
)

// RecipeRepository provides read access to the fixed recipe catalog.
// Writes happen only through catalog administration (the seeder).
type RecipeRepository interface {
	// ListAll returns every catalog entry.
	ListAll(ctx context.Context) ([]model.Recipe, error)

	// GetByID returns a single recipe or errs.ErrRecipeNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error)

	// Insert stores a new catalog entry.
	Insert(ctx context.Context, recipe *model.Recipe) error
}
