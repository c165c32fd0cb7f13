package service

import (
	"context"
	"time"

	"github.com/OfekRoodich/popcorn-palace/internal/domain"
	"github.com/OfekRoodich/popcorn-palace/internal/dto"
	"github.com/OfekRoodich/popcorn-palace/internal/repository"
)

// showtimeService implements ShowtimeService
type showtimeService struct {
	showtimeRepo repository.ShowtimeRepository
	movieRepo    repository.MovieRepository
	theaterRepo  repository.TheaterRepository
}

// NewShowtimeService creates a new ShowtimeService
func NewShowtimeService(
	showtimeRepo repository.ShowtimeRepository,
	movieRepo repository.MovieRepository,
	theaterRepo repository.TheaterRepository,
) ShowtimeService {
	return &showtimeService{
		showtimeRepo: showtimeRepo,
		movieRepo:    movieRepo,
		theaterRepo:  theaterRepo,
	}
}

// deriveEndTime returns the explicit end time when given, otherwise
// start plus the movie's duration in minutes
func deriveEndTime(start time.Time, explicit *time.Time, movie *domain.Movie) time.Time {
	if explicit != nil {
		return *explicit
	}
	return start.Add(time.Duration(movie.Duration) * time.Minute)
}

func validateStartTime(start time.Time) error {
	if start.Before(domain.MinStartTime) {
		return domain.ErrStartTimeTooEarly
	}
	if !start.After(time.Now()) {
		return domain.ErrStartTimeInPast
	}
	return nil
}

// Create schedules a showtime
func (s *showtimeService) Create(ctx context.Context, req *dto.CreateShowtimeRequest) (*domain.Showtime, error) {
	if req.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	if err := validateStartTime(req.StartTime); err != nil {
		return nil, err
	}

	movie, err := s.movieRepo.GetByID(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, domain.ErrMovieNotFound
	}

	theater, err := s.theaterRepo.GetByID(ctx, req.TheaterID)
	if err != nil {
		return nil, err
	}
	if theater == nil {
		return nil, domain.ErrTheaterNotFound
	}

	endTime := deriveEndTime(req.StartTime, req.EndTime, movie)
	if !endTime.After(req.StartTime) {
		return nil, domain.ErrInvalidTimeRange
	}

	showtime := &domain.Showtime{
		MovieID:    movie.ID,
		TheaterID:  theater.ID,
		StartTime:  req.StartTime,
		EndTime:    endTime,
		Price:      req.Price,
		SeatMatrix: domain.NewSeatMatrix(theater.Rows, theater.Cols),
	}

	if err := s.showtimeRepo.Create(ctx, showtime); err != nil {
		return nil, err
	}

	return showtime, nil
}

// GetByID retrieves a showtime by ID
func (s *showtimeService) GetByID(ctx context.Context, id int) (*domain.Showtime, error) {
	showtime, err := s.showtimeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if showtime == nil {
		return nil, domain.ErrShowtimeNotFound
	}
	return showtime, nil
}

// GetDetail retrieves a showtime with its movie and theater resolved
func (s *showtimeService) GetDetail(ctx context.Context, id int) (*domain.Showtime, *domain.Movie, *domain.Theater, error) {
	showtime, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}

	movie, err := s.movieRepo.GetByID(ctx, showtime.MovieID)
	if err != nil {
		return nil, nil, nil, err
	}

	theater, err := s.theaterRepo.GetByID(ctx, showtime.TheaterID)
	if err != nil {
		return nil, nil, nil, err
	}

	return showtime, movie, theater, nil
}

// List retrieves showtimes matching the filter
func (s *showtimeService) List(ctx context.Context, filter *dto.ShowtimeListFilter) ([]*domain.Showtime, error) {
	repoFilter := &repository.ShowtimeFilter{}
	if filter != nil {
		repoFilter.TheaterID = filter.TheaterID
		repoFilter.MovieID = filter.MovieID
	}
	return s.showtimeRepo.List(ctx, repoFilter)
}

// Update applies a partial update to a showtime. Moving it to a
// different theater reallocates the seat grid and is refused while
// seats are booked; the repository enforces that against the live
// grid, not the copy read here.
func (s *showtimeService) Update(ctx context.Context, id int, req *dto.UpdateShowtimeRequest) (*domain.Showtime, error) {
	showtime, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	movie, err := s.movieRepo.GetByID(ctx, showtime.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, domain.ErrMovieNotFound
	}

	if req.MovieID != nil && *req.MovieID != showtime.MovieID {
		movie, err = s.movieRepo.GetByID(ctx, *req.MovieID)
		if err != nil {
			return nil, err
		}
		if movie == nil {
			return nil, domain.ErrMovieNotFound
		}
		showtime.MovieID = movie.ID
	}

	if req.TheaterID != nil && *req.TheaterID != showtime.TheaterID {
		theater, err := s.theaterRepo.GetByID(ctx, *req.TheaterID)
		if err != nil {
			return nil, err
		}
		if theater == nil {
			return nil, domain.ErrTheaterNotFound
		}

		showtime.TheaterID = theater.ID
		showtime.SeatMatrix = domain.NewSeatMatrix(theater.Rows, theater.Cols)
		showtime.BookedCount = 0
	}

	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, domain.ErrInvalidPrice
		}
		showtime.Price = *req.Price
	}

	startTime := showtime.StartTime
	if req.StartTime != nil {
		if err := validateStartTime(*req.StartTime); err != nil {
			return nil, err
		}
		startTime = *req.StartTime
	}
	showtime.StartTime = startTime

	// The end time follows the movie duration unless explicitly given
	showtime.EndTime = deriveEndTime(startTime, req.EndTime, movie)
	if !showtime.EndTime.After(showtime.StartTime) {
		return nil, domain.ErrInvalidTimeRange
	}

	if err := s.showtimeRepo.Update(ctx, showtime); err != nil {
		return nil, err
	}

	return showtime, nil
}

// Delete removes a showtime and its bookings
func (s *showtimeService) Delete(ctx context.Context, id int) error {
	return s.showtimeRepo.Delete(ctx, id)
}
