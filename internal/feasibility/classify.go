// Package feasibility partitions the recipe catalog into recipes a user can
// make now, recipes that are almost within reach, and the rest.
package feasibility

import (
	"github.com/gofrs/uuid/v5"

	"github.com/nstepura/pantry-keeper/internal/model"
	"github.com/nstepura/pantry-keeper/internal/quantity"
)

// almostThreshold is the fixed upper bound on missing requirement lines for
// a recipe to still count as almost makeable.
const almostThreshold = 2

// Result is the derived partition of the catalog. Possible and Almost are
// disjoint and keep catalog order; recipes missing more than the threshold
// appear in neither.
type Result struct {
	Possible []uuid.UUID
	Almost   []uuid.UUID
}

// FindMatch returns the index of the first inventory row satisfying the
// requirement line, scanning in slice order. The match is existential: a
// single row must cover the full line, rows of the same ingredient are not
// pooled. The consumption transaction reuses this predicate so read and
// write paths can never disagree on what "satisfiable" means.
func FindMatch(inventory []model.InventoryItem, req model.Ingredient, cmp quantity.Comparator) (int, bool) {
	need := quantity.New(req.Quantity, req.Unit)
	for i := range inventory {
		if inventory[i].IngredientName != req.IngredientName {
			continue
		}
		if cmp.Satisfies(quantity.New(inventory[i].Quantity, inventory[i].Unit), need) {
			return i, true
		}
	}
	return 0, false
}

// MissingCount reports how many requirement lines of the recipe have no
// satisfying inventory row.
func MissingCount(inventory []model.InventoryItem, recipe *model.Recipe, cmp quantity.Comparator) int {
	missing := 0
	for _, req := range recipe.Ingredients {
		if _, ok := FindMatch(inventory, req, cmp); !ok {
			missing++
		}
	}
	return missing
}

// Classify maps an inventory snapshot and the catalog to a feasibility
// partition. Pure: no side effects, and the same inputs always produce the
// same partition. A recipe with zero requirement lines is trivially
// possible and never almost.
func Classify(inventory []model.InventoryItem, catalog []model.Recipe, cmp quantity.Comparator) Result {
	res := Result{}
	for i := range catalog {
		switch missing := MissingCount(inventory, &catalog[i], cmp); {
		case missing == 0:
			res.Possible = append(res.Possible, catalog[i].ID)
		case missing <= almostThreshold:
			res.Almost = append(res.Almost, catalog[i].ID)
		}
	}
	return res
}
