// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// InventoryItem is a single pantry row owned by exactly one user.
// An item present in the store always has Quantity > 0; a deduction that
// reaches zero deletes the row instead of keeping it at zero.
type InventoryItem struct {
	ID             uuid.UUID       // PK
	UserID         string          // opaque owner reference, immutable
	IngredientName string          // case-sensitive, matched exactly against recipe lines
	Quantity       decimal.Decimal // always > 0 while the row exists
	Unit           string          // opaque unit string, exact-match only
	ExpirationDate *time.Time      // informational, not used by matching
	DateAdded      time.Time       // informational; also the consumption scan order
}

// Ingredient is one requirement line inside a recipe definition.
type Ingredient struct {
	IngredientName string          `json:"ingredientName"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
}

// Nutrition holds informational per-recipe nutrition facts. The core never
// consumes these; they ride along for display.
type Nutrition struct {
	Calories      float64  `json:"calories,omitempty"`
	Protein       float64  `json:"protein,omitempty"`
	Carbohydrates float64  `json:"carbohydrates,omitempty"`
	Fat           float64  `json:"fat,omitempty"`
	Fiber         float64  `json:"fiber,omitempty"`
	Sugar         float64  `json:"sugar,omitempty"`
	Sodium        float64  `json:"sodium,omitempty"`
	VitaminA      float64  `json:"vitaminA,omitempty"`
	VitaminC      float64  `json:"vitaminC,omitempty"`
	Iron          float64  `json:"iron,omitempty"`
	Calcium       float64  `json:"calcium,omitempty"`
	Potassium     *float64 `json:"potassium,omitempty"`
	Cholesterol   *float64 `json:"cholesterol,omitempty"`
	SaturatedFat  *float64 `json:"saturatedFat,omitempty"`
	TransFat      *float64 `json:"transFat,omitempty"`
	VitaminD      *float64 `json:"vitaminD,omitempty"`
}

// Recipe is an immutable, pre-seeded catalog entry shared across users.
// Ingredient order is irrelevant to evaluation but preserved for display.
type Recipe struct {
	ID          uuid.UUID
	Name        string
	Ingredients []Ingredient
	Nutrition   Nutrition
	DietaryTags []string
}

// FeedEvent is an append-only "user made recipe X" record. It is created
// exactly once per successful consumption transaction and never mutated
// by this core; the likes counter belongs to the social-feed collaborator.
type FeedEvent struct {
	ID        uuid.UUID
	UserID    string
	RecipeID  uuid.UUID
	Content   string
	Likes     int
	CreatedAt time.Time
}

// MealPlan schedules a recipe for a user on a given date.
type MealPlan struct {
	ID       uuid.UUID
	UserID   string
	RecipeID uuid.UUID
	Date     time.Time // date component only
}
