package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/nstepura/pantry-keeper/internal/model"
)

// MealPlanRepository stores scheduled recipes per user.
type MealPlanRepository interface {
	// Insert stores a new meal plan entry.
	Insert(ctx context.Context, plan *model.MealPlan) error

	// GetByID returns a single entry scoped to the owner.
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*model.MealPlan, error)

	// ListByUser returns the user's entries ordered by date.
	ListByUser(ctx context.Context, userID string) ([]model.MealPlan, error)

	// Delete removes an entry.
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}
