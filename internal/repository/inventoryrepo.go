// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/nstepura/pantry-keeper/internal/model"
)

// InventoryRepository provides per-user access to pantry rows.
type InventoryRepository interface {
	// ListByUser returns the user's current holdings ordered by
	// (date_added, id): oldest stock first. Every scan of a user's
	// inventory uses this order so matching is deterministic.
	ListByUser(ctx context.Context, userID string) ([]model.InventoryItem, error)

	// GetItem returns a single row by id scoped to the owner.
	GetItem(ctx context.Context, userID string, itemID uuid.UUID) (*model.InventoryItem, error)

	// Insert stores a new row. Quantity must be > 0.
	Insert(ctx context.Context, item *model.InventoryItem) error

	// UpdateQuantity sets a new positive quantity on an existing row.
	UpdateQuantity(ctx context.Context, userID string, itemID uuid.UUID, quantity decimal.Decimal) error

	// Delete removes a row entirely.
	Delete(ctx context.Context, userID string, itemID uuid.UUID) error
}
