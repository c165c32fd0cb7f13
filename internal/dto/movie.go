package dto

import (
	"time"

	"github.com/OfekRoodich/popcorn-palace/internal/domain"
)

// CreateMovieRequest represents the request to add a movie to the catalog
type CreateMovieRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Genre       string  `json:"genre" binding:"required,min=1,max=100"`
	Duration    int     `json:"duration" binding:"required"`
	Rating      float64 `json:"rating"`
	ReleaseYear int     `json:"releaseYear" binding:"required"`
}

// Validate validates the CreateMovieRequest
func (r *CreateMovieRequest) Validate() (bool, string) {
	if r.Title == "" {
		return false, "Movie title is required"
	}
	if r.Genre == "" {
		return false, "Movie genre is required"
	}
	if r.Duration <= 0 {
		return false, "Duration must be greater than 0"
	}
	if r.Rating < 0 || r.Rating > 10 {
		return false, "Rating must be between 0 and 10"
	}
	if r.ReleaseYear < domain.MinReleaseYear || r.ReleaseYear > time.Now().Year() {
		return false, "Release year must be between 1900 and the current year"
	}
	return true, ""
}

// ToDomain converts the request to a domain movie
func (r *CreateMovieRequest) ToDomain() *domain.Movie {
	return &domain.Movie{
		Title:       r.Title,
		Genre:       r.Genre,
		Duration:    r.Duration,
		Rating:      r.Rating,
		ReleaseYear: r.ReleaseYear,
	}
}

// UpdateMovieRequest represents the request to update a movie
type UpdateMovieRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1,max=255"`
	Genre       *string  `json:"genre" binding:"omitempty,min=1,max=100"`
	Duration    *int     `json:"duration"`
	Rating      *float64 `json:"rating"`
	ReleaseYear *int     `json:"releaseYear"`
}

// Validate validates the UpdateMovieRequest
func (r *UpdateMovieRequest) Validate() (bool, string) {
	if r.Title != nil && *r.Title == "" {
		return false, "Movie title cannot be empty"
	}
	if r.Genre != nil && *r.Genre == "" {
		return false, "Movie genre cannot be empty"
	}
	if r.Duration != nil && *r.Duration <= 0 {
		return false, "Duration must be greater than 0"
	}
	if r.Rating != nil && (*r.Rating < 0 || *r.Rating > 10) {
		return false, "Rating must be between 0 and 10"
	}
	if r.ReleaseYear != nil && (*r.ReleaseYear < domain.MinReleaseYear || *r.ReleaseYear > time.Now().Year()) {
		return false, "Release year must be between 1900 and the current year"
	}
	return true, ""
}

// Apply overlays the provided fields onto an existing movie
func (r *UpdateMovieRequest) Apply(m *domain.Movie) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Genre != nil {
		m.Genre = *r.Genre
	}
	if r.Duration != nil {
		m.Duration = *r.Duration
	}
	if r.Rating != nil {
		m.Rating = *r.Rating
	}
	if r.ReleaseYear != nil {
		m.ReleaseYear = *r.ReleaseYear
	}
}

// MovieResponse represents the response for a movie
type MovieResponse struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Duration    int     `json:"duration"`
	Rating      float64 `json:"rating"`
	ReleaseYear int     `json:"releaseYear"`
}

// NewMovieResponse builds a MovieResponse from a domain movie
func NewMovieResponse(m *domain.Movie) *MovieResponse {
	return &MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		Duration:    m.Duration,
		Rating:      m.Rating,
		ReleaseYear: m.ReleaseYear,
	}
}

// NewMovieListResponse builds responses for a list of movies
func NewMovieListResponse(movies []*domain.Movie) []*MovieResponse {
	out := make([]*MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, NewMovieResponse(m))
	}
	return out
}
