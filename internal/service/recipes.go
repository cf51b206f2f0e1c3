package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/nstepura/pantry-keeper/internal/errs"
	"github.com/nstepura/pantry-keeper/internal/feasibility"
	"github.com/nstepura/pantry-keeper/internal/model"
	"github.com/nstepura/pantry-keeper/internal/quantity"
	"github.com/nstepura/pantry-keeper/internal/repository"
)

// madeContent is the fixed feed description for a consumption event.
const madeContent = "made this recipe!"

// RecipeService exposes the catalog read path, the feasibility
// classification, and the consumption transaction.
type RecipeService interface {
	// ListCatalog returns the full recipe catalog.
	ListCatalog(ctx context.Context) ([]model.Recipe, error)
	// Classify partitions the catalog against the user's current inventory
	// snapshot. Pure read; not linearizable with concurrent MarkAsMade.
	Classify(ctx context.Context, userID string) (feasibility.Result, error)
	// MarkAsMade deducts the recipe's ingredients from the user's
	// inventory and returns the feed event it appended. Fails with
	// errs.ErrRecipeNotFound when the id does not resolve; insufficient
	// inventory is never an error.
	MarkAsMade(ctx context.Context, userID string, recipeID uuid.UUID) (*model.FeedEvent, error)
}

type RecipeServiceImpl struct {
	recipes     repository.RecipeRepository
	inventory   repository.InventoryRepository
	consumption repository.ConsumptionRepository
	cmp         quantity.Comparator
	now         func() time.Time
}

// NewRecipeService constructs RecipeService. The comparator is shared by
// classification and consumption so both paths match identically.
func NewRecipeService(
	recipes repository.RecipeRepository,
	inventory repository.InventoryRepository,
	consumption repository.ConsumptionRepository,
	cmp quantity.Comparator,
) *RecipeServiceImpl {
	return &RecipeServiceImpl{
		recipes:     recipes,
		inventory:   inventory,
		consumption: consumption,
		cmp:         cmp,
		now:         time.Now,
	}
}

// ListCatalog returns every recipe definition.
func (s *RecipeServiceImpl) ListCatalog(ctx context.Context) ([]model.Recipe, error) {
	return s.recipes.ListAll(ctx)
}

// Classify loads the inventory snapshot and the catalog, then runs the pure
// classifier over them.
func (s *RecipeServiceImpl) Classify(ctx context.Context, userID string) (feasibility.Result, error) {
	if userID == "" {
		return feasibility.Result{}, fmt.Errorf("%w: empty userID", errs.ErrValidation)
	}
	inventory, err := s.inventory.ListByUser(ctx, userID)
	if err != nil {
		return feasibility.Result{}, fmt.Errorf("load inventory: %w", err)
	}
	catalog, err := s.recipes.ListAll(ctx)
	if err != nil {
		return feasibility.Result{}, fmt.Errorf("load catalog: %w", err)
	}
	return feasibility.Classify(inventory, catalog, s.cmp), nil
}

// MarkAsMade resolves the recipe, builds the feed event, and delegates the
// atomic deduction+append to the consumption repository.
func (s *RecipeServiceImpl) MarkAsMade(ctx context.Context, userID string, recipeID uuid.UUID) (*model.FeedEvent, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty userID", errs.ErrValidation)
	}
	if recipeID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty recipeID", errs.ErrValidation)
	}
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	event := &model.FeedEvent{
		ID:        id,
		UserID:    userID,
		RecipeID:  recipe.ID,
		Content:   madeContent,
		Likes:     0,
		CreatedAt: s.now().UTC(),
	}
	if err := s.consumption.MakeRecipe(ctx, userID, recipe, event); err != nil {
		return nil, fmt.Errorf("make recipe: %w", err)
	}
	return event, nil
}
