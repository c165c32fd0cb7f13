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

// PostgresMovieRepository implements MovieRepository using PostgreSQL
type PostgresMovieRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMovieRepository creates a new PostgresMovieRepository
func NewPostgresMovieRepository(pool *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{pool: pool}
}

const movieColumns = `id, title, genre, duration, rating, release_year, created_at, updated_at`

func scanMovie(row pgx.Row) (*domain.Movie, error) {
	movie := &domain.Movie{}
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.Duration,
		&movie.Rating,
		&movie.ReleaseYear,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return movie, nil
}

func scanMovies(rows pgx.Rows) ([]*domain.Movie, error) {
	var movies []*domain.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return movies, nil
}

// Create creates a new movie
func (r *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `
		INSERT INTO movies (title, genre, duration, rating, release_year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id
	`

	now := time.Now()
	movie.CreatedAt = now
	movie.UpdatedAt = now

	err := r.pool.QueryRow(ctx, query,
		movie.Title,
		movie.Genre,
		movie.Duration,
		movie.Rating,
		movie.ReleaseYear,
		now,
	).Scan(&movie.ID)
	if err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}

	return nil
}

// GetByID retrieves a movie by ID
func (r *PostgresMovieRepository) GetByID(ctx context.Context, id int) (*domain.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies WHERE id = $1`, movieColumns)
	movie, err := scanMovie(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	return movie, nil
}

// List retrieves all movies
func (r *PostgresMovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies ORDER BY id ASC`, movieColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

// Update updates a movie
func (r *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `
		UPDATE movies SET
			title = $2, genre = $3, duration = $4, rating = $5,
			release_year = $6, updated_at = $7
		WHERE id = $1
	`

	movie.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Genre,
		movie.Duration,
		movie.Rating,
		movie.ReleaseYear,
		movie.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

// Delete deletes a movie by ID, cascading to its showtimes and bookings
func (r *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

// TitleExists checks if a title is already taken by another movie
func (r *PostgresMovieRepository) TitleExists(ctx context.Context, title string, excludeID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM movies WHERE title = $1 AND id != $2)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, title, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check title: %w", err)
	}
	return exists, nil
}

// Ensure PostgresMovieRepository implements MovieRepository
var _ MovieRepository = (*PostgresMovieRepository)(nil)
