package domain

import (
	"strings"
	"time"
)

// MaxTheaterDimension bounds the seat grid on each axis.
const MaxTheaterDimension = 100

// Theater represents a physical auditorium with a fixed seat grid
type Theater struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Rows      int       `json:"numberOfRows"`
	Cols      int       `json:"numberOfColumns"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Capacity returns the total number of seats in the theater
func (t *Theater) Capacity() int {
	return t.Rows * t.Cols
}

// Validate validates all theater fields
func (t *Theater) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrInvalidTheaterName
	}
	if t.Rows <= 0 || t.Rows > MaxTheaterDimension {
		return ErrInvalidDimensions
	}
	if t.Cols <= 0 || t.Cols > MaxTheaterDimension {
		return ErrInvalidDimensions
	}
	return nil
}
