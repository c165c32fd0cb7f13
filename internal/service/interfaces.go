package service

import (
	"context"

	"github.com/OfekRoodich/popcorn-palace/internal/domain"
	"github.com/OfekRoodich/popcorn-palace/internal/dto"
)

// MovieService defines the interface for movie business logic
type MovieService interface {
	// Create adds a movie to the catalog
	Create(ctx context.Context, req *dto.CreateMovieRequest) (*domain.Movie, error)
	// GetByID retrieves a movie by ID
	GetByID(ctx context.Context, id int) (*domain.Movie, error)
	// List retrieves all movies
	List(ctx context.Context) ([]*domain.Movie, error)
	// Update updates a movie
	Update(ctx context.Context, id int, req *dto.UpdateMovieRequest) (*domain.Movie, error)
	// Delete removes a movie and its showtimes
	Delete(ctx context.Context, id int) error
}

// TheaterService defines the interface for theater business logic
type TheaterService interface {
	// Create adds a theater
	Create(ctx context.Context, req *dto.CreateTheaterRequest) (*domain.Theater, error)
	// GetByID retrieves a theater by ID
	GetByID(ctx context.Context, id int) (*domain.Theater, error)
	// List retrieves all theaters
	List(ctx context.Context) ([]*domain.Theater, error)
	// Update updates a theater
	Update(ctx context.Context, id int, req *dto.UpdateTheaterRequest) (*domain.Theater, error)
	// Delete removes a theater unless seats are booked in it
	Delete(ctx context.Context, id int) error
}

// ShowtimeService defines the interface for showtime business logic
type ShowtimeService interface {
	// Create schedules a showtime, deriving end time from the movie
	// duration when not supplied
	Create(ctx context.Context, req *dto.CreateShowtimeRequest) (*domain.Showtime, error)
	// GetByID retrieves a showtime by ID
	GetByID(ctx context.Context, id int) (*domain.Showtime, error)
	// GetDetail retrieves a showtime with its movie and theater resolved
	GetDetail(ctx context.Context, id int) (*domain.Showtime, *domain.Movie, *domain.Theater, error)
	// List retrieves showtimes matching the filter
	List(ctx context.Context, filter *dto.ShowtimeListFilter) ([]*domain.Showtime, error)
	// Update applies a partial update to a showtime
	Update(ctx context.Context, id int, req *dto.UpdateShowtimeRequest) (*domain.Showtime, error)
	// Delete removes a showtime and its bookings
	Delete(ctx context.Context, id int) error
}

// BookingService defines the interface for booking business logic
type BookingService interface {
	// Create books a single seat
	Create(ctx context.Context, req *dto.CreateBookingRequest) (*domain.Booking, error)
	// BookSeats books multiple seats on one showtime, all or nothing
	BookSeats(ctx context.Context, showtimeID int, req *dto.BookSeatsRequest) ([]*domain.Booking, error)
	// GetByID retrieves a booking by ID
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// Cancel releases the booked seat and removes the booking
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
}
