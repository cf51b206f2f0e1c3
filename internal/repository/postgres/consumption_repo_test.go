package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/nstepura/pantry-keeper/internal/model"
	"github.com/nstepura/pantry-keeper/internal/quantity"
)

const lockQuery = `SELECT id, user_id, ingredient_name, quantity, unit, expiration_date, date_added\s+FROM inventory\s+WHERE user_id=\$1\s+ORDER BY date_added, id\s+FOR UPDATE`

func consumptionFixture(t *testing.T) (*ConsumptionRepo, pgxmock.PgxPoolIface) {
	t.Helper()
	db, mock := newDB(t)
	return NewConsumptionRepo(db, quantity.ExactUnit{}), mock
}

func feedEvent(userID string, recipeID uuid.UUID) *model.FeedEvent {
	return &model.FeedEvent{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    userID,
		RecipeID:  recipeID,
		Content:   "made this recipe!",
		Likes:     0,
		CreatedAt: time.Now().UTC(),
	}
}

func TestConsumptionRepo_MakeRecipe_DeductsAndAppends(t *testing.T) {
	r, mock := consumptionFixture(t)
	defer mock.Close()

	ctx := context.Background()
	flourID := uuid.Must(uuid.NewV4())
	eggID := uuid.Must(uuid.NewV4())
	added := time.Now().UTC()

	recipe := &model.Recipe{
		ID:   uuid.Must(uuid.NewV4()),
		Name: "Omelette",
		Ingredients: []model.Ingredient{
			{IngredientName: "flour", Quantity: decimal.RequireFromString("1"), Unit: "cup"},
			{IngredientName: "egg", Quantity: decimal.RequireFromString("1"), Unit: "unit"},
		},
	}
	ev := feedEvent("u1", recipe.ID)

	mock.ExpectBegin()
	mock.ExpectQuery(lockQuery).
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows(invCols).
			AddRow(flourID, "u1", "flour", decimal.RequireFromString("2"), "cup", (*time.Time)(nil), added).
			AddRow(eggID, "u1", "egg", decimal.RequireFromString("1"), "unit", (*time.Time)(nil), added))
	// flour: 2 - 1 = 1 remains -> update
	mock.ExpectExec(`UPDATE inventory SET quantity=\$3 WHERE id=\$1 AND user_id=\$2`).
		WithArgs(flourID, "u1", decimal.RequireFromString("1")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	// egg: 1 - 1 = 0 -> row deleted, never kept at zero
	mock.ExpectExec(`DELETE FROM inventory WHERE id=\$1 AND user_id=\$2`).
		WithArgs(eggID, "u1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`INSERT INTO feed_events \(id, user_id, recipe_id, content, likes, created_at\)`).
		WithArgs(ev.ID, ev.UserID, ev.RecipeID, ev.Content, ev.Likes, ev.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, r.MakeRecipe(ctx, "u1", recipe, ev))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConsumptionRepo_MakeRecipe_SkipsUnsatisfiableLines(t *testing.T) {
	r, mock := consumptionFixture(t)
	defer mock.Close()

	eggID := uuid.Must(uuid.NewV4())
	added := time.Now().UTC()

	// Pancakes on an almost-possible inventory: only flour is deductible;
	// egg (insufficient) and milk (absent) are skipped without error.
	recipe := &model.Recipe{
		ID:   uuid.Must(uuid.NewV4()),
		Name: "Pancakes",
		Ingredients: []model.Ingredient{
			{IngredientName: "egg", Quantity: decimal.RequireFromString("2"), Unit: "unit"},
			{IngredientName: "milk", Quantity: decimal.RequireFromString("1"), Unit: "cup"},
		},
	}
	ev := feedEvent("u1", recipe.ID)

	mock.ExpectBegin()
	mock.ExpectQuery(lockQuery).
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows(invCols).
			AddRow(eggID, "u1", "egg", decimal.RequireFromString("1"), "unit", (*time.Time)(nil), added))
	mock.ExpectExec(`INSERT INTO feed_events`).
		WithArgs(ev.ID, ev.UserID, ev.RecipeID, ev.Content, ev.Likes, ev.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, r.MakeRecipe(context.Background(), "u1", recipe, ev))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConsumptionRepo_MakeRecipe_LiveSnapshotAcrossDuplicateLines(t *testing.T) {
	r, mock := consumptionFixture(t)
	defer mock.Close()

	eggID := uuid.Must(uuid.NewV4())
	added := time.Now().UTC()

	// Two lines for the same ingredient: the second must see the reduced
	// quantity, so 3 - 2 = 1, then the 2-unit line no longer matches.
	recipe := &model.Recipe{
		ID:   uuid.Must(uuid.NewV4()),
		Name: "Double Egg",
		Ingredients: []model.Ingredient{
			{IngredientName: "egg", Quantity: decimal.RequireFromString("2"), Unit: "unit"},
			{IngredientName: "egg", Quantity: decimal.RequireFromString("2"), Unit: "unit"},
		},
	}
	ev := feedEvent("u1", recipe.ID)

	mock.ExpectBegin()
	mock.ExpectQuery(lockQuery).
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows(invCols).
			AddRow(eggID, "u1", "egg", decimal.RequireFromString("3"), "unit", (*time.Time)(nil), added))
	mock.ExpectExec(`UPDATE inventory SET quantity=\$3 WHERE id=\$1 AND user_id=\$2`).
		WithArgs(eggID, "u1", decimal.RequireFromString("1")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`INSERT INTO feed_events`).
		WithArgs(ev.ID, ev.UserID, ev.RecipeID, ev.Content, ev.Likes, ev.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, r.MakeRecipe(context.Background(), "u1", recipe, ev))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConsumptionRepo_MakeRecipe_RollsBackOnWriteError(t *testing.T) {
	r, mock := consumptionFixture(t)
	defer mock.Close()

	eggID := uuid.Must(uuid.NewV4())
	added := time.Now().UTC()
	boom := errors.New("connection reset")

	recipe := &model.Recipe{
		ID:   uuid.Must(uuid.NewV4()),
		Name: "Omelette",
		Ingredients: []model.Ingredient{
			{IngredientName: "egg", Quantity: decimal.RequireFromString("1"), Unit: "unit"},
		},
	}
	ev := feedEvent("u1", recipe.ID)

	mock.ExpectBegin()
	mock.ExpectQuery(lockQuery).
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows(invCols).
			AddRow(eggID, "u1", "egg", decimal.RequireFromString("1"), "unit", (*time.Time)(nil), added))
	mock.ExpectExec(`DELETE FROM inventory WHERE id=\$1 AND user_id=\$2`).
		WithArgs(eggID, "u1").
		WillReturnError(boom)
	mock.ExpectRollback()

	err := r.MakeRecipe(context.Background(), "u1", recipe, ev)
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConsumptionRepo_MakeRecipe_ZeroIngredientRecipeOnlyAppends(t *testing.T) {
	r, mock := consumptionFixture(t)
	defer mock.Close()

	recipe := &model.Recipe{ID: uuid.Must(uuid.NewV4()), Name: "Glass of Water"}
	ev := feedEvent("u1", recipe.ID)

	mock.ExpectBegin()
	mock.ExpectQuery(lockQuery).
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows(invCols))
	mock.ExpectExec(`INSERT INTO feed_events`).
		WithArgs(ev.ID, ev.UserID, ev.RecipeID, ev.Content, ev.Likes, ev.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, r.MakeRecipe(context.Background(), "u1", recipe, ev))
	require.NoError(t, mock.ExpectationsWereMet())
}
