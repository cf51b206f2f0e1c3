// Package service contains application services for the pantry, the recipe
// catalog, the social feed, and meal plans.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/nstepura/pantry-keeper/internal/errs"
	"github.com/nstepura/pantry-keeper/internal/model"
	"github.com/nstepura/pantry-keeper/internal/repository"
)

// InventoryService defines pantry operations for a single user.
type InventoryService interface {
	// AddIngredient validates and stores a new pantry row, returning its id.
	AddIngredient(ctx context.Context, userID string, in AddIngredientInput) (*model.InventoryItem, error)
	// GetIngredient returns a single row by id.
	GetIngredient(ctx context.Context, userID string, itemID uuid.UUID) (*model.InventoryItem, error)
	// ListIngredients returns the user's current holdings.
	ListIngredients(ctx context.Context, userID string) ([]model.InventoryItem, error)
	// UpdateQuantity replaces a row's quantity and returns the updated row.
	UpdateQuantity(ctx context.Context, userID string, itemID uuid.UUID, qty decimal.Decimal) (*model.InventoryItem, error)
	// DeleteIngredient removes a row.
	DeleteIngredient(ctx context.Context, userID string, itemID uuid.UUID) error
}

// AddIngredientInput carries the caller-supplied fields of a new pantry row.
type AddIngredientInput struct {
	IngredientName string
	Quantity       decimal.Decimal
	Unit           string
	ExpirationDate *time.Time
}

type InventoryServiceImpl struct {
	repo repository.InventoryRepository
	now  func() time.Time
}

// NewInventoryService constructs InventoryService.
func NewInventoryService(repo repository.InventoryRepository) *InventoryServiceImpl {
	return &InventoryServiceImpl{repo: repo, now: time.Now}
}

// AddIngredient validates input, stamps dateAdded, and stores the row.
// Validation rules:
// - userID and ingredientName non-empty
// - quantity > 0 (a row never exists at zero or below)
// - unit non-empty
func (s *InventoryServiceImpl) AddIngredient(ctx context.Context, userID string, in AddIngredientInput) (*model.InventoryItem, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty userID", errs.ErrValidation)
	}
	if in.IngredientName == "" {
		return nil, fmt.Errorf("%w: empty ingredient name", errs.ErrValidation)
	}
	if !in.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: quantity must be positive", errs.ErrValidation)
	}
	if in.Unit == "" {
		return nil, fmt.Errorf("%w: empty unit", errs.ErrValidation)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	item := &model.InventoryItem{
		ID:             id,
		UserID:         userID,
		IngredientName: in.IngredientName,
		Quantity:       in.Quantity,
		Unit:           in.Unit,
		ExpirationDate: in.ExpirationDate,
		DateAdded:      s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetIngredient fetches a single row by id.
func (s *InventoryServiceImpl) GetIngredient(ctx context.Context, userID string, itemID uuid.UUID) (*model.InventoryItem, error) {
	if userID == "" || itemID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty userID/id", errs.ErrValidation)
	}
	return s.repo.GetItem(ctx, userID, itemID)
}

// ListIngredients returns the user's current holdings, oldest first.
func (s *InventoryServiceImpl) ListIngredients(ctx context.Context, userID string) ([]model.InventoryItem, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty userID", errs.ErrValidation)
	}
	return s.repo.ListByUser(ctx, userID)
}

// UpdateQuantity replaces a row's quantity. Zero is not a stored state:
// callers that want a row gone use DeleteIngredient.
func (s *InventoryServiceImpl) UpdateQuantity(ctx context.Context, userID string, itemID uuid.UUID, qty decimal.Decimal) (*model.InventoryItem, error) {
	if userID == "" || itemID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty userID/id", errs.ErrValidation)
	}
	if !qty.IsPositive() {
		return nil, fmt.Errorf("%w: quantity must be positive", errs.ErrValidation)
	}
	if err := s.repo.UpdateQuantity(ctx, userID, itemID, qty); err != nil {
		return nil, err
	}
	return s.repo.GetItem(ctx, userID, itemID)
}

// DeleteIngredient removes a row.
func (s *InventoryServiceImpl) DeleteIngredient(ctx context.Context, userID string, itemID uuid.UUID) error {
	if userID == "" || itemID == uuid.Nil {
		return fmt.Errorf("%w: empty userID/id", errs.ErrValidation)
	}
	return s.repo.Delete(ctx, userID, itemID)
}
