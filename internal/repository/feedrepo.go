package repository

import (
	"context"

	"github.com/nstepura/pantry-keeper/internal/model"
)

// FeedRepository is the append-only log of consumption events. The core
// never updates or deletes events; moderation belongs to the feed
// collaborator.
type FeedRepository interface {
	// Append stores a new event.
	Append(ctx context.Context, event *model.FeedEvent) error

	// ListRecent returns up to limit events, newest first.
	ListRecent(ctx context.Context, limit int) ([]model.FeedEvent, error)
}
