package postgres

import (
	"context"

	"github.com/nstepura/pantry-keeper/internal/model"
)

// FeedRepo implements FeedRepository using PostgreSQL. Rows are append-only;
// no update or delete statement exists in this package.
type FeedRepo struct{ db *DB }

// NewFeedRepo constructs a feed repository.
func NewFeedRepo(db *DB) *FeedRepo { return &FeedRepo{db: db} }

// Append stores a new event.
func (r *FeedRepo) Append(ctx context.Context, event *model.FeedEvent) error {
	const q = `
INSERT INTO feed_events (id, user_id, recipe_id, content, likes, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Pool.Exec(ctx, q,
		event.ID, event.UserID, event.RecipeID, event.Content, event.Likes, event.CreatedAt)
	return err
}

// ListRecent returns up to limit events, newest first.
func (r *FeedRepo) ListRecent(ctx context.Context, limit int) ([]model.FeedEvent, error) {
	const q = `
SELECT id, user_id, recipe_id, content, likes, created_at
FROM feed_events
ORDER BY created_at DESC, id DESC
LIMIT $1`
	rows, err := r.db.Pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.FeedEvent
	for rows.Next() {
		var ev model.FeedEvent
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.RecipeID, &ev.Content, &ev.Likes, &ev.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
