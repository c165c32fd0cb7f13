package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/OfekRoodich/popcorn-palace/internal/domain"
)

// MovieRepository defines the interface for movie data access
type MovieRepository interface {
	// Create creates a new movie
	Create(ctx context.Context, movie *domain.Movie) error
	// GetByID retrieves a movie by ID
	GetByID(ctx context.Context, id int) (*domain.Movie, error)
	// List retrieves all movies
	List(ctx context.Context) ([]*domain.Movie, error)
	// Update updates a movie
	Update(ctx context.Context, movie *domain.Movie) error
	// Delete deletes a movie by ID
	Delete(ctx context.Context, id int) error
	// TitleExists checks if a title is already taken by another movie
	TitleExists(ctx context.Context, title string, excludeID int) (bool, error)
}

// TheaterRepository defines the interface for theater data access
type TheaterRepository interface {
	// Create creates a new theater
	Create(ctx context.Context, theater *domain.Theater) error
	// GetByID retrieves a theater by ID
	GetByID(ctx context.Context, id int) (*domain.Theater, error)
	// List retrieves all theaters
	List(ctx context.Context) ([]*domain.Theater, error)
	// Update updates a theater
	Update(ctx context.Context, theater *domain.Theater) error
	// Delete deletes a theater by ID, cascading to its showtimes and bookings
	Delete(ctx context.Context, id int) error
	// NameExists checks if a name is already taken by another theater
	NameExists(ctx context.Context, name string, excludeID int) (bool, error)
}

// ShowtimeFilter contains filter options for listing showtimes
type ShowtimeFilter struct {
	TheaterID int
	MovieID   int
}

// ShowtimeRepository defines the interface for showtime data access.
// Create and Update own the overlap check: the theater row is locked
// for the duration of the check-and-write so two concurrent schedules
// for the same theater serialize.
type ShowtimeRepository interface {
	// Create atomically checks for overlap and inserts the showtime
	Create(ctx context.Context, showtime *domain.Showtime) error
	// GetByID retrieves a showtime by ID
	GetByID(ctx context.Context, id int) (*domain.Showtime, error)
	// List retrieves showtimes matching the filter
	List(ctx context.Context, filter *ShowtimeFilter) ([]*domain.Showtime, error)
	// Update atomically checks for overlap (excluding the showtime
	// itself) and updates. The showtime row is locked; the stored grid
	// and count win over the caller's copy unless the theater changes,
	// which is refused while any seat is booked
	Update(ctx context.Context, showtime *domain.Showtime) error
	// Delete deletes a showtime by ID, cascading to its bookings
	Delete(ctx context.Context, id int) error
}

// BookingRepository defines the interface for booking data access.
// Seat mutations run in one transaction with the showtime row locked.
type BookingRepository interface {
	// Create books one seat: lock showtime, check cell, mutate grid,
	// recount, insert ledger row, insert outbox row
	Create(ctx context.Context, booking *domain.Booking) error
	// BookSeats books multiple seats for one showtime, all or nothing
	BookSeats(ctx context.Context, showtimeID int, userID string, seatNumbers []int) ([]*domain.Booking, error)
	// GetByID retrieves a booking by ID
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// ListByShowtime retrieves all bookings for a showtime
	ListByShowtime(ctx context.Context, showtimeID int) ([]*domain.Booking, error)
	// Cancel releases the seat and deletes the ledger row
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
}

// OutboxRepository defines the interface for outbox data access
type OutboxRepository interface {
	// Create creates a new outbox message
	Create(ctx context.Context, msg *domain.OutboxMessage) error
	// CreateTx creates a new outbox message within a transaction
	CreateTx(ctx context.Context, tx pgx.Tx, msg *domain.OutboxMessage) error
	// GetPendingMessages gets pending messages to be published
	GetPendingMessages(ctx context.Context, limit int) ([]*domain.OutboxMessage, error)
	// GetFailedMessages gets failed messages that can be retried
	GetFailedMessages(ctx context.Context, limit int) ([]*domain.OutboxMessage, error)
	// MarkAsPublished marks a message as successfully published
	MarkAsPublished(ctx context.Context, id string) error
	// MarkAsFailed marks a message as failed
	MarkAsFailed(ctx context.Context, id string, errMsg string) error
	// ResetForRetry moves a failed message back to pending
	ResetForRetry(ctx context.Context, id string) error
	// DeletePublished deletes old published messages for cleanup
	DeletePublished(ctx context.Context, olderThanDays int) (int64, error)
}
