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
	movieDetailKeyPrefix = "movie:detail:"
	movieListKey         = "movie:list"

	movieCacheTTL = 5 * time.Minute
)

// CachedMovieRepository wraps MovieRepository with Redis caching.
// Reads go through the cache; writes pass through and invalidate.
type CachedMovieRepository struct {
	repo  MovieRepository
	cache *redis.Client
}

// NewCachedMovieRepository creates a new CachedMovieRepository
func NewCachedMovieRepository(repo MovieRepository, cache *redis.Client) *CachedMovieRepository {
	return &CachedMovieRepository{
		repo:  repo,
		cache: cache,
	}
}

// Create creates a new movie and invalidates the list cache
func (r *CachedMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	if err := r.repo.Create(ctx, movie); err != nil {
		return err
	}
	r.cache.Del(ctx, movieListKey)
	return nil
}

// GetByID retrieves a movie by ID with caching
func (r *CachedMovieRepository) GetByID(ctx context.Context, id int) (*domain.Movie, error) {
	cacheKey := movieDetailKeyPrefix + strconv.Itoa(id)
	cached, err := r.cache.Get(ctx, cacheKey).Result()
	if err == nil && cached != "" {
		var movie domain.Movie
		if err := json.Unmarshal([]byte(cached), &movie); err == nil {
			return &movie, nil
		}
	}

	movie, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, nil
	}

	if data, err := json.Marshal(movie); err == nil {
		r.cache.Set(ctx, cacheKey, data, movieCacheTTL)
	}

	return movie, nil
}

// List retrieves all movies with caching
func (r *CachedMovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	cached, err := r.cache.Get(ctx, movieListKey).Result()
	if err == nil && cached != "" {
		var movies []*domain.Movie
		if err := json.Unmarshal([]byte(cached), &movies); err == nil {
			return movies, nil
		}
	}

	movies, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(movies); err == nil {
		r.cache.Set(ctx, movieListKey, data, movieCacheTTL)
	}

	return movies, nil
}

// Update updates a movie and invalidates its caches
func (r *CachedMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	if err := r.repo.Update(ctx, movie); err != nil {
		return err
	}
	r.invalidate(ctx, movie.ID)
	return nil
}

// Delete deletes a movie and invalidates its caches
func (r *CachedMovieRepository) Delete(ctx context.Context, id int) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

// TitleExists always hits the database; uniqueness checks must not
// race against stale cache entries
func (r *CachedMovieRepository) TitleExists(ctx context.Context, title string, excludeID int) (bool, error) {
	return r.repo.TitleExists(ctx, title, excludeID)
}

func (r *CachedMovieRepository) invalidate(ctx context.Context, id int) {
	r.cache.Del(ctx, movieDetailKeyPrefix+strconv.Itoa(id), movieListKey)
}

// Ensure CachedMovieRepository implements MovieRepository
var _ MovieRepository = (*CachedMovieRepository)(nil)
