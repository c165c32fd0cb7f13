package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/OfekRoodich/popcorn-palace/internal/domain"
)

// PostgresShowtimeRepository implements ShowtimeRepository using PostgreSQL
type PostgresShowtimeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresShowtimeRepository creates a new PostgresShowtimeRepository
func NewPostgresShowtimeRepository(pool *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{pool: pool}
}

const showtimeColumns = `id, movie_id, theater_id, start_time, end_time, price, seat_matrix, booked_count, created_at, updated_at`

func scanShowtime(row pgx.Row) (*domain.Showtime, error) {
	showtime := &domain.Showtime{}
	var matrixJSON []byte

	err := row.Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.TheaterID,
		&showtime.StartTime,
		&showtime.EndTime,
		&showtime.Price,
		&matrixJSON,
		&showtime.BookedCount,
		&showtime.CreatedAt,
		&showtime.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(matrixJSON, &showtime.SeatMatrix); err != nil {
		return nil, fmt.Errorf("failed to decode seat matrix: %w", err)
	}

	return showtime, nil
}

// lockTheaterTx locks the theater row so concurrent scheduling for the
// same theater serializes on it
func lockTheaterTx(ctx context.Context, tx pgx.Tx, theaterID int) error {
	var id int
	err := tx.QueryRow(ctx, `SELECT id FROM theaters WHERE id = $1 FOR UPDATE`, theaterID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTheaterNotFound
		}
		return fmt.Errorf("failed to lock theater: %w", err)
	}
	return nil
}

// hasOverlapTx counts showtimes in the theater intersecting the half-open
// range [start, end), excluding excludeID when non-zero
func hasOverlapTx(ctx context.Context, tx pgx.Tx, theaterID int, start, end time.Time, excludeID int) (bool, error) {
	query := `
		SELECT COUNT(*) FROM showtimes
		WHERE theater_id = $1
		  AND start_time < $3
		  AND end_time > $2
		  AND id != $4
	`

	var count int
	err := tx.QueryRow(ctx, query, theaterID, start, end, excludeID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check overlap: %w", err)
	}
	return count > 0, nil
}

// Create atomically checks for overlap and inserts the showtime
func (r *PostgresShowtimeRepository) Create(ctx context.Context, showtime *domain.Showtime) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockTheaterTx(ctx, tx, showtime.TheaterID); err != nil {
		return err
	}

	overlap, err := hasOverlapTx(ctx, tx, showtime.TheaterID, showtime.StartTime, showtime.EndTime, 0)
	if err != nil {
		return err
	}
	if overlap {
		return domain.ErrShowtimeOverlap
	}

	matrixJSON, err := json.Marshal(showtime.SeatMatrix)
	if err != nil {
		return fmt.Errorf("failed to encode seat matrix: %w", err)
	}

	query := `
		INSERT INTO showtimes (movie_id, theater_id, start_time, end_time, price, seat_matrix, booked_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id
	`

	now := time.Now()
	showtime.CreatedAt = now
	showtime.UpdatedAt = now

	err = tx.QueryRow(ctx, query,
		showtime.MovieID,
		showtime.TheaterID,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Price,
		matrixJSON,
		showtime.BookedCount,
		now,
	).Scan(&showtime.ID)
	if err != nil {
		return fmt.Errorf("failed to create showtime: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a showtime by ID
func (r *PostgresShowtimeRepository) GetByID(ctx context.Context, id int) (*domain.Showtime, error) {
	query := fmt.Sprintf(`SELECT %s FROM showtimes WHERE id = $1`, showtimeColumns)
	showtime, err := scanShowtime(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get showtime: %w", err)
	}
	return showtime, nil
}

// List retrieves showtimes matching the filter
func (r *PostgresShowtimeRepository) List(ctx context.Context, filter *ShowtimeFilter) ([]*domain.Showtime, error) {
	query := fmt.Sprintf(`SELECT %s FROM showtimes`, showtimeColumns)
	var args []interface{}
	argIndex := 1

	if filter != nil {
		if filter.TheaterID > 0 {
			query += fmt.Sprintf(" WHERE theater_id = $%d", argIndex)
			args = append(args, filter.TheaterID)
			argIndex++
		}
		if filter.MovieID > 0 {
			if argIndex == 1 {
				query += fmt.Sprintf(" WHERE movie_id = $%d", argIndex)
			} else {
				query += fmt.Sprintf(" AND movie_id = $%d", argIndex)
			}
			args = append(args, filter.MovieID)
			argIndex++
		}
	}

	query += " ORDER BY start_time ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list showtimes: %w", err)
	}
	defer rows.Close()

	var showtimes []*domain.Showtime
	for rows.Next() {
		showtime, err := scanShowtime(rows)
		if err != nil {
			return nil, err
		}
		showtimes = append(showtimes, showtime)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return showtimes, nil
}

// Update atomically checks for overlap (excluding the showtime itself)
// and updates the showtime. The showtime row is locked for the duration
// so the write cannot race a booking: the grid and count on the caller's
// copy may be stale, the locked row is the source of truth for seats.
func (r *PostgresShowtimeRepository) Update(ctx context.Context, showtime *domain.Showtime) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var (
		currentTheaterID int
		currentMatrix    []byte
		currentBooked    int
	)
	err = tx.QueryRow(ctx,
		`SELECT theater_id, seat_matrix, booked_count FROM showtimes WHERE id = $1 FOR UPDATE`,
		showtime.ID,
	).Scan(&currentTheaterID, &currentMatrix, &currentBooked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrShowtimeNotFound
		}
		return fmt.Errorf("failed to lock showtime: %w", err)
	}

	if err := lockTheaterTx(ctx, tx, showtime.TheaterID); err != nil {
		return err
	}

	overlap, err := hasOverlapTx(ctx, tx, showtime.TheaterID, showtime.StartTime, showtime.EndTime, showtime.ID)
	if err != nil {
		return err
	}
	if overlap {
		return domain.ErrShowtimeOverlap
	}

	matrixJSON := currentMatrix
	if showtime.TheaterID != currentTheaterID {
		// Moving theaters reallocates the grid, so every ledger row
		// would lose its cell. Refused while any seat is booked.
		if currentBooked > 0 {
			return domain.ErrShowtimeHasBookedSeats
		}
		matrixJSON, err = json.Marshal(showtime.SeatMatrix)
		if err != nil {
			return fmt.Errorf("failed to encode seat matrix: %w", err)
		}
	} else {
		if err := json.Unmarshal(currentMatrix, &showtime.SeatMatrix); err != nil {
			return fmt.Errorf("failed to decode seat matrix: %w", err)
		}
		showtime.BookedCount = currentBooked
	}

	query := `
		UPDATE showtimes SET
			movie_id = $2, theater_id = $3, start_time = $4, end_time = $5,
			price = $6, seat_matrix = $7, booked_count = $8, updated_at = $9
		WHERE id = $1
	`

	showtime.UpdatedAt = time.Now()
	_, err = tx.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.TheaterID,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Price,
		matrixJSON,
		showtime.BookedCount,
		showtime.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update showtime: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Delete deletes a showtime by ID, cascading to its bookings
func (r *PostgresShowtimeRepository) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM showtimes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete showtime: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrShowtimeNotFound
	}
	return nil
}

// Ensure PostgresShowtimeRepository implements ShowtimeRepository
var _ ShowtimeRepository = (*PostgresShowtimeRepository)(nil)
