package service

import (
	"context"

	"github.com/OfekRoodich/popcorn-palace/internal/domain"
	"github.com/OfekRoodich/popcorn-palace/internal/dto"
	"github.com/OfekRoodich/popcorn-palace/internal/repository"
)

// movieService implements MovieService
type movieService struct {
	movieRepo repository.MovieRepository
}

// NewMovieService creates a new MovieService
func NewMovieService(movieRepo repository.MovieRepository) MovieService {
	return &movieService{movieRepo: movieRepo}
}

// Create adds a movie to the catalog
func (s *movieService) Create(ctx context.Context, req *dto.CreateMovieRequest) (*domain.Movie, error) {
	movie := req.ToDomain()
	if err := movie.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.movieRepo.TitleExists(ctx, movie.Title, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateTitle
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}

	return movie, nil
}

// GetByID retrieves a movie by ID
func (s *movieService) GetByID(ctx context.Context, id int) (*domain.Movie, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, domain.ErrMovieNotFound
	}
	return movie, nil
}

// List retrieves all movies
func (s *movieService) List(ctx context.Context) ([]*domain.Movie, error) {
	return s.movieRepo.List(ctx)
}

// Update updates a movie
func (s *movieService) Update(ctx context.Context, id int, req *dto.UpdateMovieRequest) (*domain.Movie, error) {
	movie, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(movie)
	if err := movie.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.movieRepo.TitleExists(ctx, movie.Title, movie.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateTitle
	}

	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return nil, err
	}

	return movie, nil
}

// Delete removes a movie and its showtimes
func (s *movieService) Delete(ctx context.Context, id int) error {
	return s.movieRepo.Delete(ctx, id)
}
