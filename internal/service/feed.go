package service

import (
	"context"

	"github.com/nstepura/pantry-keeper/internal/model"
	"github.com/nstepura/pantry-keeper/internal/repository"
)

// FeedService exposes the read side of the consumption event log.
type FeedService interface {
	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit int) ([]model.FeedEvent, error)
}

type FeedServiceImpl struct {
	repo     repository.FeedRepository
	maxLimit int
}

// NewFeedService constructs FeedService with a page-size cap.
func NewFeedService(repo repository.FeedRepository, maxLimit int) *FeedServiceImpl {
	if maxLimit <= 0 {
		maxLimit = 100
	}
	return &FeedServiceImpl{repo: repo, maxLimit: maxLimit}
}

// Recent clamps the limit and delegates to the repository.
func (s *FeedServiceImpl) Recent(ctx context.Context, limit int) ([]model.FeedEvent, error) {
	if limit <= 0 || limit > s.maxLimit {
		limit = s.maxLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
