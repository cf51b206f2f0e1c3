package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/nstepura/pantry-keeper/internal/model"
)

var feedCols = []string{"id", "user_id", "recipe_id", "content", "likes", "created_at"}

func TestFeedRepo_Append_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewFeedRepo(db)

	ev := &model.FeedEvent{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    "u1",
		RecipeID:  uuid.Must(uuid.NewV4()),
		Content:   "made this recipe!",
		CreatedAt: time.Now().UTC(),
	}
	mock.ExpectExec(`INSERT INTO feed_events \(id, user_id, recipe_id, content, likes, created_at\)`).
		WithArgs(ev.ID, ev.UserID, ev.RecipeID, ev.Content, ev.Likes, ev.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, r.Append(context.Background(), ev))
}

func TestFeedRepo_ListRecent_NewestFirst(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewFeedRepo(db)

	now := time.Now().UTC()
	newer := uuid.Must(uuid.NewV4())
	older := uuid.Must(uuid.NewV4())
	recipeID := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`SELECT id, user_id, recipe_id, content, likes, created_at\s+FROM feed_events\s+ORDER BY created_at DESC, id DESC\s+LIMIT \$1`).
		WithArgs(50).
		WillReturnRows(pgxmock.NewRows(feedCols).
			AddRow(newer, "u1", recipeID, "made this recipe!", 0, now).
			AddRow(older, "u2", recipeID, "made this recipe!", 3, now.Add(-time.Hour)))

	out, err := r.ListRecent(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, newer, out[0].ID)
	require.Equal(t, 3, out[1].Likes)
}
