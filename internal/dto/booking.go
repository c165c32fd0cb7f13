package dto

import (
	"strings"

	"github.com/OfekRoodich/popcorn-palace/internal/domain"
)

// CreateBookingRequest represents the request to book a single seat
type CreateBookingRequest struct {
	ShowtimeID int    `json:"showtimeId" binding:"required"`
	SeatNumber *int   `json:"seatNumber" binding:"required"`
	UserID     string `json:"userId" binding:"required"`
}

// Validate validates the CreateBookingRequest
func (r *CreateBookingRequest) Validate() (bool, string) {
	if r.ShowtimeID <= 0 {
		return false, "Showtime ID must be a positive integer"
	}
	if r.SeatNumber == nil || *r.SeatNumber < 0 {
		return false, "Seat number must be zero or greater"
	}
	if strings.TrimSpace(r.UserID) == "" {
		return false, "User ID must not be empty"
	}
	return true, ""
}

// SeatRef identifies a seat by grid position
type SeatRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// BookSeatsRequest represents a bulk seat booking for one showtime.
// All requested seats are booked atomically or none are.
type BookSeatsRequest struct {
	UserID string    `json:"userId" binding:"required"`
	Seats  []SeatRef `json:"seats" binding:"required"`
}

// Validate validates the BookSeatsRequest
func (r *BookSeatsRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.UserID) == "" {
		return false, "User ID must not be empty"
	}
	if len(r.Seats) == 0 {
		return false, "At least one seat must be requested"
	}
	for _, s := range r.Seats {
		if s.Row < 0 || s.Col < 0 {
			return false, "Seat row and column must be zero or greater"
		}
	}
	return true, ""
}

// BookingResponse represents the response for a created booking
type BookingResponse struct {
	BookingID string `json:"bookingId"`
}

// BookingDetailResponse represents a full booking read
type BookingDetailResponse struct {
	BookingID  string `json:"bookingId"`
	ShowtimeID int    `json:"showtimeId"`
	SeatNumber int    `json:"seatNumber"`
	UserID     string `json:"userId"`
}

// NewBookingResponse builds the creation response for a booking
func NewBookingResponse(b *domain.Booking) *BookingResponse {
	return &BookingResponse{BookingID: b.ID}
}

// NewBookingDetailResponse builds the full read response for a booking
func NewBookingDetailResponse(b *domain.Booking) *BookingDetailResponse {
	return &BookingDetailResponse{
		BookingID:  b.ID,
		ShowtimeID: b.ShowtimeID,
		SeatNumber: b.SeatNumber,
		UserID:     b.UserID,
	}
}

// NewBookingListResponse builds responses for a list of bookings
func NewBookingListResponse(bookings []*domain.Booking) []*BookingDetailResponse {
	out := make([]*BookingDetailResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, NewBookingDetailResponse(b))
	}
	return out
}
