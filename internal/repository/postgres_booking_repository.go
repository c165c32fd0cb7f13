package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/OfekRoodich/popcorn-palace/internal/domain"
	"github.com/OfekRoodich/popcorn-palace/pkg/telemetry"
)

// PostgresBookingRepository implements BookingRepository using PostgreSQL.
// Every seat mutation locks the showtime row, works on the grid, recounts
// it, and writes the ledger and outbox rows in the same transaction.
type PostgresBookingRepository struct {
	pool       *pgxpool.Pool
	outboxRepo *PostgresOutboxRepository
}

// NewPostgresBookingRepository creates a new PostgresBookingRepository
func NewPostgresBookingRepository(pool *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		pool:       pool,
		outboxRepo: NewPostgresOutboxRepository(pool),
	}
}

// lockShowtimeTx loads the showtime with its row locked for the
// duration of the transaction
func lockShowtimeTx(ctx context.Context, tx pgx.Tx, showtimeID int) (*domain.Showtime, error) {
	query := fmt.Sprintf(`SELECT %s FROM showtimes WHERE id = $1 FOR UPDATE`, showtimeColumns)
	showtime, err := scanShowtime(tx.QueryRow(ctx, query, showtimeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShowtimeNotFound
		}
		return nil, fmt.Errorf("failed to lock showtime: %w", err)
	}
	return showtime, nil
}

// saveGridTx writes the mutated grid back with booked_count recomputed
// from a full recount of the grid
func saveGridTx(ctx context.Context, tx pgx.Tx, showtime *domain.Showtime) error {
	matrixJSON, err := json.Marshal(showtime.SeatMatrix)
	if err != nil {
		return fmt.Errorf("failed to encode seat matrix: %w", err)
	}

	showtime.BookedCount = showtime.SeatMatrix.CountBooked()

	query := `UPDATE showtimes SET seat_matrix = $2, booked_count = $3, updated_at = $4 WHERE id = $1`
	_, err = tx.Exec(ctx, query, showtime.ID, matrixJSON, showtime.BookedCount, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save seat matrix: %w", err)
	}
	return nil
}

// insertBookingTx inserts one ledger row
func insertBookingTx(ctx context.Context, tx pgx.Tx, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (id, showtime_id, seat_number, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := tx.Exec(ctx, query,
		booking.ID,
		booking.ShowtimeID,
		booking.SeatNumber,
		booking.UserID,
		booking.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// Create books one seat in a single transaction
func (r *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	ctx, span := telemetry.StartSpan(ctx, "booking.create")
	defer span.End()
	span.SetAttributes(
		attribute.Int("showtime.id", booking.ShowtimeID),
		attribute.Int("seat.number", booking.SeatNumber),
	)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	showtime, err := lockShowtimeTx(ctx, tx, booking.ShowtimeID)
	if err != nil {
		return err
	}

	if err := showtime.SeatMatrix.Book(booking.SeatNumber); err != nil {
		return err
	}

	if err := saveGridTx(ctx, tx, showtime); err != nil {
		return err
	}

	if err := insertBookingTx(ctx, tx, booking); err != nil {
		return err
	}

	outboxMsg, err := domain.BookingOutboxEvent(domain.BookingEventCreated, booking)
	if err != nil {
		return fmt.Errorf("failed to create outbox event: %w", err)
	}
	if err := r.outboxRepo.CreateTx(ctx, tx, outboxMsg); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// BookSeats books multiple seats for one showtime in a single
// transaction. If any seat is taken or out of range, nothing is booked.
func (r *PostgresBookingRepository) BookSeats(ctx context.Context, showtimeID int, userID string, seatNumbers []int) ([]*domain.Booking, error) {
	ctx, span := telemetry.StartSpan(ctx, "booking.book_seats")
	defer span.End()
	span.SetAttributes(
		attribute.Int("showtime.id", showtimeID),
		attribute.Int("seat.count", len(seatNumbers)),
	)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	showtime, err := lockShowtimeTx(ctx, tx, showtimeID)
	if err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0, len(seatNumbers))
	for _, seatNumber := range seatNumbers {
		if err := showtime.SeatMatrix.Book(seatNumber); err != nil {
			return nil, err
		}

		booking := domain.NewBooking(showtimeID, seatNumber, userID)
		if err := insertBookingTx(ctx, tx, booking); err != nil {
			return nil, err
		}

		outboxMsg, err := domain.BookingOutboxEvent(domain.BookingEventCreated, booking)
		if err != nil {
			return nil, fmt.Errorf("failed to create outbox event: %w", err)
		}
		if err := r.outboxRepo.CreateTx(ctx, tx, outboxMsg); err != nil {
			return nil, err
		}

		bookings = append(bookings, booking)
	}

	if err := saveGridTx(ctx, tx, showtime); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return bookings, nil
}

// GetByID retrieves a booking by ID
func (r *PostgresBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, showtime_id, seat_number, user_id, created_at FROM bookings WHERE id = $1`

	booking := &domain.Booking{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.ShowtimeID,
		&booking.SeatNumber,
		&booking.UserID,
		&booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

// ListByShowtime retrieves all bookings for a showtime
func (r *PostgresBookingRepository) ListByShowtime(ctx context.Context, showtimeID int) ([]*domain.Booking, error) {
	query := `
		SELECT id, showtime_id, seat_number, user_id, created_at
		FROM bookings
		WHERE showtime_id = $1
		ORDER BY seat_number ASC
	`

	rows, err := r.pool.Query(ctx, query, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		booking := &domain.Booking{}
		err := rows.Scan(
			&booking.ID,
			&booking.ShowtimeID,
			&booking.SeatNumber,
			&booking.UserID,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Cancel releases the seat and deletes the ledger row in one transaction
func (r *PostgresBookingRepository) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, span := telemetry.StartSpan(ctx, "booking.cancel")
	defer span.End()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	booking := &domain.Booking{}
	err = tx.QueryRow(ctx,
		`SELECT id, showtime_id, seat_number, user_id, created_at FROM bookings WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(
		&booking.ID,
		&booking.ShowtimeID,
		&booking.SeatNumber,
		&booking.UserID,
		&booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	showtime, err := lockShowtimeTx(ctx, tx, booking.ShowtimeID)
	if err != nil {
		return nil, err
	}

	if err := showtime.SeatMatrix.Release(booking.SeatNumber); err != nil {
		return nil, err
	}

	if err := saveGridTx(ctx, tx, showtime); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to delete booking: %w", err)
	}

	outboxMsg, err := domain.BookingOutboxEvent(domain.BookingEventCancelled, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create outbox event: %w", err)
	}
	if err := r.outboxRepo.CreateTx(ctx, tx, outboxMsg); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return booking, nil
}

// Ensure PostgresBookingRepository implements BookingRepository
var _ BookingRepository = (*PostgresBookingRepository)(nil)
