package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/nstepura/pantry-keeper/internal/errs"
	"github.com/nstepura/pantry-keeper/internal/model"
	"github.com/nstepura/pantry-keeper/internal/repository"
)

// MealPlanService schedules catalog recipes onto calendar dates.
type MealPlanService interface {
	// Add schedules a recipe for the user on a date.
	Add(ctx context.Context, userID string, recipeID uuid.UUID, date time.Time) (*model.MealPlan, error)
	// Get returns a single entry.
	Get(ctx context.Context, userID string, id uuid.UUID) (*model.MealPlan, error)
	// ListForUser returns the user's entries ordered by date.
	ListForUser(ctx context.Context, userID string) ([]model.MealPlan, error)
	// Delete removes an entry.
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type MealPlanServiceImpl struct {
	plans   repository.MealPlanRepository
	recipes repository.RecipeRepository
}

// NewMealPlanService constructs MealPlanService.
func NewMealPlanService(plans repository.MealPlanRepository, recipes repository.RecipeRepository) *MealPlanServiceImpl {
	return &MealPlanServiceImpl{plans: plans, recipes: recipes}
}

// Add validates the recipe exists, then stores the plan entry.
func (s *MealPlanServiceImpl) Add(ctx context.Context, userID string, recipeID uuid.UUID, date time.Time) (*model.MealPlan, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty userID", errs.ErrValidation)
	}
	if recipeID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty recipeID", errs.ErrValidation)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: empty date", errs.ErrValidation)
	}
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	plan := &model.MealPlan{ID: id, UserID: userID, RecipeID: recipeID, Date: date}
	if err := s.plans.Insert(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Get fetches a single entry by id.
func (s *MealPlanServiceImpl) Get(ctx context.Context, userID string, id uuid.UUID) (*model.MealPlan, error) {
	if userID == "" || id == uuid.Nil {
		return nil, fmt.Errorf("%w: empty userID/id", errs.ErrValidation)
	}
	return s.plans.GetByID(ctx, userID, id)
}

// ListForUser returns the user's entries.
func (s *MealPlanServiceImpl) ListForUser(ctx context.Context, userID string) ([]model.MealPlan, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty userID", errs.ErrValidation)
	}
	return s.plans.ListByUser(ctx, userID)
}

// Delete removes an entry.
func (s *MealPlanServiceImpl) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	if userID == "" || id == uuid.Nil {
		return fmt.Errorf("%w: empty userID/id", errs.ErrValidation)
	}
	return s.plans.Delete(ctx, userID, id)
}
