package service

import (
	"context"

	"github.com/OfekRoodich/popcorn-palace/internal/domain"
	"github.com/OfekRoodich/popcorn-palace/internal/dto"
	"github.com/OfekRoodich/popcorn-palace/internal/repository"
)

// theaterService implements TheaterService
type theaterService struct {
	theaterRepo repository.TheaterRepository
}

// NewTheaterService creates a new TheaterService
func NewTheaterService(theaterRepo repository.TheaterRepository) TheaterService {
	return &theaterService{theaterRepo: theaterRepo}
}

// Create adds a theater
func (s *theaterService) Create(ctx context.Context, req *dto.CreateTheaterRequest) (*domain.Theater, error) {
	theater := req.ToDomain()
	if err := theater.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.theaterRepo.NameExists(ctx, theater.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateTheaterName
	}

	if err := s.theaterRepo.Create(ctx, theater); err != nil {
		return nil, err
	}

	return theater, nil
}

// GetByID retrieves a theater by ID
func (s *theaterService) GetByID(ctx context.Context, id int) (*domain.Theater, error) {
	theater, err := s.theaterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if theater == nil {
		return nil, domain.ErrTheaterNotFound
	}
	return theater, nil
}

// List retrieves all theaters
func (s *theaterService) List(ctx context.Context) ([]*domain.Theater, error) {
	return s.theaterRepo.List(ctx)
}

// Update updates a theater. Dimension changes apply to grids of
// showtimes scheduled after the change, never to existing grids.
func (s *theaterService) Update(ctx context.Context, id int, req *dto.UpdateTheaterRequest) (*domain.Theater, error) {
	theater, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(theater)
	if err := theater.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.theaterRepo.NameExists(ctx, theater.Name, theater.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateTheaterName
	}

	if err := s.theaterRepo.Update(ctx, theater); err != nil {
		return nil, err
	}

	return theater, nil
}

// Delete removes a theater. Its showtimes and their bookings go with it.
func (s *theaterService) Delete(ctx context.Context, id int) error {
	return s.theaterRepo.Delete(ctx, id)
}
