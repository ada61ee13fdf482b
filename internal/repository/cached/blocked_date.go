package cached

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/velora-studio/booking-api/internal/model"
	"github.com/velora-studio/booking-api/internal/repository"
)

// BlockedDateRepository caches blocked-date membership checks, which sit on
// the hot slot-query path. Writes go through and invalidate the cached entry
// so a toggle is visible immediately.
type BlockedDateRepository struct {
	inner repository.BlockedDateRepository
	cache *gocache.Cache
}

func NewBlockedDateRepository(inner repository.BlockedDateRepository, ttl time.Duration) *BlockedDateRepository {
	return &BlockedDateRepository{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (r *BlockedDateRepository) Add(ctx context.Context, date model.Date) error {
	if err := r.inner.Add(ctx, date); err != nil {
		return err
	}
	r.cache.Delete(date.String())
	return nil
}

func (r *BlockedDateRepository) Remove(ctx context.Context, date model.Date) error {
	if err := r.inner.Remove(ctx, date); err != nil {
		return err
	}
	r.cache.Delete(date.String())
	return nil
}

func (r *BlockedDateRepository) IsBlocked(ctx context.Context, date model.Date) (bool, error) {
	if cached, found := r.cache.Get(date.String()); found {
		return cached.(bool), nil
	}

	blocked, err := r.inner.IsBlocked(ctx, date)
	if err != nil {
		return false, err
	}
	r.cache.SetDefault(date.String(), blocked)
	return blocked, nil
}

func (r *BlockedDateRepository) List(ctx context.Context) ([]*model.BlockedDate, error) {
	return r.inner.List(ctx)
}
