package feasibility

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/nstepura/pantry-keeper/internal/model"
	"github.com/nstepura/pantry-keeper/internal/quantity"
)

func inv(name, amount, unit string) model.InventoryItem {
	return model.InventoryItem{
		ID:             uuid.Must(uuid.NewV4()),
		UserID:         "u1",
		IngredientName: name,
		Quantity:       decimal.RequireFromString(amount),
		Unit:           unit,
	}
}

func req(name, amount, unit string) model.Ingredient {
	return model.Ingredient{
		IngredientName: name,
		Quantity:       decimal.RequireFromString(amount),
		Unit:           unit,
	}
}

func recipe(name string, reqs ...model.Ingredient) model.Recipe {
	return model.Recipe{ID: uuid.Must(uuid.NewV4()), Name: name, Ingredients: reqs}
}

func contains(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

var cmp = quantity.ExactUnit{}

func TestClassify_PancakesExample(t *testing.T) {
	t.Parallel()
	// inventory = [{flour, 2, cup}, {egg, 1, unit}]; pancakes misses milk
	// entirely and has too few eggs -> missing 2 -> almost, not possible.
	inventory := []model.InventoryItem{inv("flour", "2", "cup"), inv("egg", "1", "unit")}
	pancakes := recipe("Pancakes", req("flour", "1", "cup"), req("egg", "2", "unit"), req("milk", "1", "cup"))

	if got := MissingCount(inventory, &pancakes, cmp); got != 2 {
		t.Fatalf("missing count = %d, want 2", got)
	}
	res := Classify(inventory, []model.Recipe{pancakes}, cmp)
	if contains(res.Possible, pancakes.ID) || !contains(res.Almost, pancakes.ID) {
		t.Fatalf("pancakes should be almost only: %+v", res)
	}
}

func TestClassify_OmeletteExample(t *testing.T) {
	t.Parallel()
	inventory := []model.InventoryItem{inv("flour", "2", "cup"), inv("egg", "1", "unit")}
	omelette := recipe("Omelette", req("egg", "1", "unit"))

	res := Classify(inventory, []model.Recipe{omelette}, cmp)
	if !contains(res.Possible, omelette.ID) || contains(res.Almost, omelette.ID) {
		t.Fatalf("omelette should be possible only: %+v", res)
	}
}

func TestClassify_TooManyMissingExcluded(t *testing.T) {
	t.Parallel()
	r := recipe("Paella",
		req("rice", "2", "cup"), req("saffron", "1", "pinch"),
		req("shrimp", "300", "g"), req("peas", "1", "cup"))

	res := Classify(nil, []model.Recipe{r}, cmp)
	if contains(res.Possible, r.ID) || contains(res.Almost, r.ID) {
		t.Fatalf("recipe missing 4 lines must be in neither bucket: %+v", res)
	}
}

func TestClassify_ZeroIngredientRecipeIsPossible(t *testing.T) {
	t.Parallel()
	r := recipe("Glass of Water")

	res := Classify(nil, []model.Recipe{r}, cmp)
	if !contains(res.Possible, r.ID) {
		t.Fatalf("zero-ingredient recipe must be vacuously possible")
	}
	if contains(res.Almost, r.ID) {
		t.Fatalf("zero-ingredient recipe must never be almost")
	}
}

func TestClassify_BucketsAreDisjoint(t *testing.T) {
	t.Parallel()
	inventory := []model.InventoryItem{inv("egg", "6", "unit"), inv("milk", "1", "cup")}
	catalog := []model.Recipe{
		recipe("Boiled Eggs", req("egg", "2", "unit")),
		recipe("Custard", req("egg", "4", "unit"), req("milk", "2", "cup"), req("sugar", "100", "g")),
		recipe("Bread", req("flour", "3", "cup"), req("yeast", "7", "g"), req("salt", "1", "tsp")),
	}

	res := Classify(inventory, catalog, cmp)
	for _, id := range res.Possible {
		if contains(res.Almost, id) {
			t.Fatalf("recipe %s in both buckets", id)
		}
	}
	if len(res.Possible) != 1 || len(res.Almost) != 1 {
		t.Fatalf("want 1 possible, 1 almost; got %d/%d", len(res.Possible), len(res.Almost))
	}
}

func TestClassify_ExistentialMatchDoesNotPoolRows(t *testing.T) {
	t.Parallel()
	// Two half-cup rows cannot jointly satisfy a one-cup line.
	inventory := []model.InventoryItem{inv("milk", "0.5", "cup"), inv("milk", "0.5", "cup")}
	r := recipe("Porridge", req("milk", "1", "cup"))

	res := Classify(inventory, []model.Recipe{r}, cmp)
	if contains(res.Possible, r.ID) {
		t.Fatalf("rows must not be summed across the same ingredient")
	}
	if !contains(res.Almost, r.ID) {
		t.Fatalf("single missing line should classify as almost")
	}
}

func TestClassify_UnitMismatchIsMissing(t *testing.T) {
	t.Parallel()
	inventory := []model.InventoryItem{inv("milk", "1000", "ml")}
	r := recipe("Porridge", req("milk", "1", "cup"))

	if got := MissingCount(inventory, &r, cmp); got != 1 {
		t.Fatalf("unit mismatch must count as missing, got %d", got)
	}
}

func TestClassify_OrderIndependent(t *testing.T) {
	t.Parallel()
	inventory := []model.InventoryItem{
		inv("egg", "1", "unit"), inv("egg", "4", "unit"), inv("flour", "2", "cup"),
	}
	r := recipe("Cake", req("egg", "3", "unit"), req("flour", "1", "cup"))
	reversed := []model.InventoryItem{inventory[2], inventory[1], inventory[0]}

	a := Classify(inventory, []model.Recipe{r}, cmp)
	b := Classify(reversed, []model.Recipe{r}, cmp)
	if contains(a.Possible, r.ID) != contains(b.Possible, r.ID) {
		t.Fatalf("classification must not depend on inventory iteration order")
	}
	if !contains(a.Possible, r.ID) {
		t.Fatalf("cake should be possible")
	}
}

func TestClassify_Idempotent(t *testing.T) {
	t.Parallel()
	inventory := []model.InventoryItem{inv("egg", "2", "unit")}
	catalog := []model.Recipe{
		recipe("Boiled Eggs", req("egg", "2", "unit")),
		recipe("Pancakes", req("flour", "1", "cup"), req("egg", "2", "unit")),
	}

	a := Classify(inventory, catalog, cmp)
	b := Classify(inventory, catalog, cmp)
	if len(a.Possible) != len(b.Possible) || len(a.Almost) != len(b.Almost) {
		t.Fatalf("repeated classification diverged: %+v vs %+v", a, b)
	}
	for i := range a.Possible {
		if a.Possible[i] != b.Possible[i] {
			t.Fatalf("possible order diverged")
		}
	}
}

func TestFindMatch_FirstMatchInScanOrder(t *testing.T) {
	t.Parallel()
	oldRow := inv("egg", "2", "unit")
	newRow := inv("egg", "6", "unit")
	inventory := []model.InventoryItem{oldRow, newRow}

	idx, ok := FindMatch(inventory, req("egg", "2", "unit"), cmp)
	if !ok || idx != 0 {
		t.Fatalf("want first qualifying row (idx 0), got idx=%d ok=%v", idx, ok)
	}

	// A larger requirement skips rows that cannot cover it alone.
	idx, ok = FindMatch(inventory, req("egg", "5", "unit"), cmp)
	if !ok || idx != 1 {
		t.Fatalf("want idx 1 for the only covering row, got idx=%d ok=%v", idx, ok)
	}
}
