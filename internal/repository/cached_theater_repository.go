package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/OfekRoodich/popcorn-palace/internal/domain"
	"github.com/OfekRoodich/popcorn-palace/pkg/redis"
)

const (
	theaterDetailKeyPrefix = "theater:detail:"
	theaterListKey         = "theater:list"

	theaterCacheTTL = 5 * time.Minute
)

// CachedTheaterRepository wraps TheaterRepository with Redis caching
type CachedTheaterRepository struct {
	repo  TheaterRepository
	cache *redis.Client
}

// NewCachedTheaterRepository creates a new CachedTheaterRepository
func NewCachedTheaterRepository(repo TheaterRepository, cache *redis.Client) *CachedTheaterRepository {
	return &CachedTheaterRepository{
		repo:  repo,
		cache: cache,
	}
}

// Create creates a new theater and invalidates the list cache
func (r *CachedTheaterRepository) Create(ctx context.Context, theater *domain.Theater) error {
	if err := r.repo.Create(ctx, theater); err != nil {
		return err
	}
	r.cache.Del(ctx, theaterListKey)
	return nil
}

// GetByID retrieves a theater by ID with caching
func (r *CachedTheaterRepository) GetByID(ctx context.Context, id int) (*domain.Theater, error) {
	cacheKey := theaterDetailKeyPrefix + strconv.Itoa(id)
	cached, err := r.cache.Get(ctx, cacheKey).Result()
	if err == nil && cached != "" {
		var theater domain.Theater
		if err := json.Unmarshal([]byte(cached), &theater); err == nil {
			return &theater, nil
		}
	}

	theater, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if theater == nil {
		return nil, nil
	}

	if data, err := json.Marshal(theater); err == nil {
		r.cache.Set(ctx, cacheKey, data, theaterCacheTTL)
	}

	return theater, nil
}

// List retrieves all theaters with caching
func (r *CachedTheaterRepository) List(ctx context.Context) ([]*domain.Theater, error) {
	cached, err := r.cache.Get(ctx, theaterListKey).Result()
	if err == nil && cached != "" {
		var theaters []*domain.Theater
		if err := json.Unmarshal([]byte(cached), &theaters); err == nil {
			return theaters, nil
		}
	}

	theaters, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(theaters); err == nil {
		r.cache.Set(ctx, theaterListKey, data, theaterCacheTTL)
	}

	return theaters, nil
}

// Update updates a theater and invalidates its caches
func (r *CachedTheaterRepository) Update(ctx context.Context, theater *domain.Theater) error {
	if err := r.repo.Update(ctx, theater); err != nil {
		return err
	}
	r.invalidate(ctx, theater.ID)
	return nil
}

// Delete deletes a theater and invalidates its caches
func (r *CachedTheaterRepository) Delete(ctx context.Context, id int) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

// NameExists always hits the database
func (r *CachedTheaterRepository) NameExists(ctx context.Context, name string, excludeID int) (bool, error) {
	return r.repo.NameExists(ctx, name, excludeID)
}

func (r *CachedTheaterRepository) invalidate(ctx context.Context, id int) {
	r.cache.Del(ctx, theaterDetailKeyPrefix+strconv.Itoa(id), theaterListKey)
}

// Ensure CachedTheaterRepository implements TheaterRepository
var _ TheaterRepository = (*CachedTheaterRepository)(nil)
