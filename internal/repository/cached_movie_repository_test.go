package repository

import (
	"context"
	"testing"

	"github.com/OfekRoodich/popcorn-palace/internal/domain"
)

// MockMovieRepository is an in-memory MovieRepository for testing
type MockMovieRepository struct {
	movies       map[int]*domain.Movie
	nextID       int
	getByIDCount int
	listCount    int
}

func NewMockMovieRepository() *MockMovieRepository {
	return &MockMovieRepository{
		movies: make(map[int]*domain.Movie),
		nextID: 1,
	}
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	movie.ID = m.nextID
	m.nextID++
	m.movies[movie.ID] = movie
	return nil
}

func (m *MockMovieRepository) GetByID(ctx context.Context, id int) (*domain.Movie, error) {
	m.getByIDCount++
	movie, ok := m.movies[id]
	if !ok {
		return nil, nil
	}
	return movie, nil
}

func (m *MockMovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	m.listCount++
	var movies []*domain.Movie
	for _, movie := range m.movies {
		movies = append(movies, movie)
	}
	return movies, nil
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	if _, ok := m.movies[movie.ID]; !ok {
		return domain.ErrMovieNotFound
	}
	m.movies[movie.ID] = movie
	return nil
}

func (m *MockMovieRepository) Delete(ctx context.Context, id int) error {
	if _, ok := m.movies[id]; !ok {
		return domain.ErrMovieNotFound
	}
	delete(m.movies, id)
	return nil
}

func (m *MockMovieRepository) TitleExists(ctx context.Context, title string, excludeID int) (bool, error) {
	for _, movie := range m.movies {
		if movie.Title == title && movie.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

var _ MovieRepository = (*MockMovieRepository)(nil)

func TestMockMovieRepository_GetByID(t *testing.T) {
	repo := NewMockMovieRepository()
	ctx := context.Background()

	movie := &domain.Movie{Title: "Dune", Genre: "Sci-Fi", Duration: 155, Rating: 8.0, ReleaseYear: 2021}
	if err := repo.Create(ctx, movie); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(ctx, movie.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got == nil || got.Title != "Dune" {
		t.Errorf("GetByID() = %v, want Dune", got)
	}

	missing, err := repo.GetByID(ctx, 999)
	if err != nil {
		t.Fatalf("GetByID(999) error = %v", err)
	}
	if missing != nil {
		t.Errorf("GetByID(999) = %v, want nil", missing)
	}
}

func TestMockMovieRepository_TitleExists(t *testing.T) {
	repo := NewMockMovieRepository()
	ctx := context.Background()

	movie := &domain.Movie{Title: "Heat", Genre: "Crime", Duration: 170, Rating: 8.3, ReleaseYear: 1995}
	if err := repo.Create(ctx, movie); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	exists, err := repo.TitleExists(ctx, "Heat", 0)
	if err != nil {
		t.Fatalf("TitleExists() error = %v", err)
	}
	if !exists {
		t.Error("TitleExists(Heat, 0) = false, want true")
	}

	// Excluding the movie itself must not count as a duplicate
	exists, err = repo.TitleExists(ctx, "Heat", movie.ID)
	if err != nil {
		t.Fatalf("TitleExists() error = %v", err)
	}
	if exists {
		t.Error("TitleExists(Heat, own id) = true, want false")
	}
}
