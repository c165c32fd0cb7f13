package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/OfekRoodich/popcorn-palace/internal/domain"
)

// PostgresTheaterRepository implements TheaterRepository using PostgreSQL
type PostgresTheaterRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTheaterRepository creates a new PostgresTheaterRepository
func NewPostgresTheaterRepository(pool *pgxpool.Pool) *PostgresTheaterRepository {
	return &PostgresTheaterRepository{pool: pool}
}

const theaterColumns = `id, name, number_of_rows, number_of_columns, created_at, updated_at`

func scanTheater(row pgx.Row) (*domain.Theater, error) {
	theater := &domain.Theater{}
	err := row.Scan(
		&theater.ID,
		&theater.Name,
		&theater.Rows,
		&theater.Cols,
		&theater.CreatedAt,
		&theater.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return theater, nil
}

// Create creates a new theater
func (r *PostgresTheaterRepository) Create(ctx context.Context, theater *domain.Theater) error {
	query := `
		INSERT INTO theaters (name, number_of_rows, number_of_columns, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id
	`

	now := time.Now()
	theater.CreatedAt = now
	theater.UpdatedAt = now

	err := r.pool.QueryRow(ctx, query, theater.Name, theater.Rows, theater.Cols, now).Scan(&theater.ID)
	if err != nil {
		return fmt.Errorf("failed to create theater: %w", err)
	}

	return nil
}

// GetByID retrieves a theater by ID
func (r *PostgresTheaterRepository) GetByID(ctx context.Context, id int) (*domain.Theater, error) {
	query := fmt.Sprintf(`SELECT %s FROM theaters WHERE id = $1`, theaterColumns)
	theater, err := scanTheater(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get theater: %w", err)
	}
	return theater, nil
}

// List retrieves all theaters
func (r *PostgresTheaterRepository) List(ctx context.Context) ([]*domain.Theater, error) {
	query := fmt.Sprintf(`SELECT %s FROM theaters ORDER BY id ASC`, theaterColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list theaters: %w", err)
	}
	defer rows.Close()

	var theaters []*domain.Theater
	for rows.Next() {
		theater, err := scanTheater(rows)
		if err != nil {
			return nil, err
		}
		theaters = append(theaters, theater)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return theaters, nil
}

// Update updates a theater. Existing showtime grids keep their
// original dimensions; only future showtimes pick up the new layout.
func (r *PostgresTheaterRepository) Update(ctx context.Context, theater *domain.Theater) error {
	query := `
		UPDATE theaters SET
			name = $2, number_of_rows = $3, number_of_columns = $4, updated_at = $5
		WHERE id = $1
	`

	theater.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		theater.ID,
		theater.Name,
		theater.Rows,
		theater.Cols,
		theater.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update theater: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTheaterNotFound
	}
	return nil
}

// Delete deletes a theater by ID, cascading to its showtimes and bookings
func (r *PostgresTheaterRepository) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM theaters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete theater: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTheaterNotFound
	}
	return nil
}

// NameExists checks if a name is already taken by another theater
func (r *PostgresTheaterRepository) NameExists(ctx context.Context, name string, excludeID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM theaters WHERE name = $1 AND id != $2)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, name, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check theater name: %w", err)
	}
	return exists, nil
}

// Ensure PostgresTheaterRepository implements TheaterRepository
var _ TheaterRepository = (*PostgresTheaterRepository)(nil)
