package domain

import (
	"time"
)

// Seat cell states within a showtime's seat matrix.
const (
	SeatAvailable = 0
	SeatBooked    = 2
)

// MinStartTime is the earliest accepted showtime start.
var MinStartTime = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// Showtime represents a screening of a movie in a theater
type Showtime struct {
	ID          int        `json:"id"`
	MovieID     int        `json:"movie_id"`
	TheaterID   int        `json:"theater_id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Price       float64    `json:"price"`
	SeatMatrix  SeatMatrix `json:"seat_matrix"`
	BookedCount int        `json:"booked_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Overlaps reports whether two time ranges intersect.
// Ranges are half-open: a screening ending at 18:00 does not
// conflict with one starting at 18:00.
func (s *Showtime) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && s.EndTime.After(start)
}

// SeatMatrix is a row-major grid of seat states
type SeatMatrix [][]int

// NewSeatMatrix creates a grid of the given dimensions with every seat available
func NewSeatMatrix(rows, cols int) SeatMatrix {
	matrix := make(SeatMatrix, rows)
	for i := range matrix {
		matrix[i] = make([]int, cols)
	}
	return matrix
}

// Rows returns the number of rows in the grid
func (m SeatMatrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns in the grid
func (m SeatMatrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Capacity returns the total number of seats in the grid
func (m SeatMatrix) Capacity() int {
	return m.Rows() * m.Cols()
}

// ResolveSeat maps a flat seat number to its row and column.
// Seat numbers are row-major: seat n sits at row n/cols, column n%cols.
func (m SeatMatrix) ResolveSeat(seatNumber int) (row, col int, err error) {
	cols := m.Cols()
	if cols == 0 || seatNumber < 0 || seatNumber >= m.Capacity() {
		return 0, 0, ErrSeatOutOfRange
	}
	return seatNumber / cols, seatNumber % cols, nil
}

// SeatIndex maps a row and column back to the flat seat number
func (m SeatMatrix) SeatIndex(row, col int) (int, error) {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return 0, ErrSeatOutOfRange
	}
	return row*m.Cols() + col, nil
}

// IsBooked reports whether the given seat is booked
func (m SeatMatrix) IsBooked(seatNumber int) (bool, error) {
	row, col, err := m.ResolveSeat(seatNumber)
	if err != nil {
		return false, err
	}
	return m[row][col] == SeatBooked, nil
}

// Book marks a seat as booked. Returns ErrSeatAlreadyBooked if taken.
func (m SeatMatrix) Book(seatNumber int) error {
	row, col, err := m.ResolveSeat(seatNumber)
	if err != nil {
		return err
	}
	if m[row][col] == SeatBooked {
		return ErrSeatAlreadyBooked
	}
	m[row][col] = SeatBooked
	return nil
}

// Release marks a booked seat as available again
func (m SeatMatrix) Release(seatNumber int) error {
	row, col, err := m.ResolveSeat(seatNumber)
	if err != nil {
		return err
	}
	m[row][col] = SeatAvailable
	return nil
}

// CountBooked counts booked seats by scanning the full grid.
// The grid is the single source of truth; booked_count is always
// derived from it, never incremented independently.
func (m SeatMatrix) CountBooked() int {
	count := 0
	for _, row := range m {
		for _, cell := range row {
			if cell == SeatBooked {
				count++
			}
		}
	}
	return count
}
