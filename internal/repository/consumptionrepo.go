package repository

import (
	"context"

	"github.com/nstepura/pantry-keeper/internal/model"
)

// ConsumptionRepository applies the "mark as made" deduction and the feed
// append as one atomic unit against the user's inventory.
type ConsumptionRepository interface {
	// MakeRecipe deducts the recipe's requirement lines from the user's
	// inventory and appends the feed event, all in a single transaction.
	// Requirement lines with no satisfying row are skipped silently; that
	// is a business rule, not an error. Two calls for the same user are
	// serialized with respect to each other. Any storage failure rolls
	// the whole unit back and returns the error.
	MakeRecipe(ctx context.Context, userID string, recipe *model.Recipe, event *model.FeedEvent) error
}
