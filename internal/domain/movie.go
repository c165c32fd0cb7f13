package domain

import (
	"strings"
	"time"
)

// MinReleaseYear is the earliest accepted release year.
const MinReleaseYear = 1900

// Movie represents a movie in the catalog
type Movie struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	Duration    int       `json:"duration"` // minutes
	Rating      float64   `json:"rating"`
	ReleaseYear int       `json:"releaseYear"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate validates all movie fields
func (m *Movie) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrInvalidTitle
	}
	if strings.TrimSpace(m.Genre) == "" {
		return ErrInvalidGenre
	}
	if m.Duration <= 0 {
		return ErrInvalidDuration
	}
	if m.Rating < 0 || m.Rating > 10 {
		return ErrInvalidRating
	}
	if m.ReleaseYear < MinReleaseYear || m.ReleaseYear > time.Now().Year() {
		return ErrInvalidReleaseYear
	}
	return nil
}
