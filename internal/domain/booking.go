package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Booking represents one booked seat for a showtime
type Booking struct {
	ID         string    `json:"bookingId"`
	ShowtimeID int       `json:"showtimeId"`
	SeatNumber int       `json:"seatNumber"`
	UserID     string    `json:"userId"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewBooking creates a booking with a fresh UUID
func NewBooking(showtimeID, seatNumber int, userID string) *Booking {
	return &Booking{
		ID:         uuid.New().String(),
		ShowtimeID: showtimeID,
		SeatNumber: seatNumber,
		UserID:     userID,
		CreatedAt:  time.Now(),
	}
}

// Validate validates all booking fields
func (b *Booking) Validate() error {
	if b.ShowtimeID <= 0 {
		return ErrInvalidShowtimeID
	}
	if b.SeatNumber < 0 {
		return ErrSeatOutOfRange
	}
	if strings.TrimSpace(b.UserID) == "" {
		return ErrInvalidUserID
	}
	return nil
}

// BelongsToUser checks if the booking belongs to the specified user
func (b *Booking) BelongsToUser(userID string) bool {
	return b.UserID == userID
}
