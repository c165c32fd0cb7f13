package dto

import (
	"time"

	"github.com/OfekRoodich/popcorn-palace/internal/domain"
)

// CreateShowtimeRequest represents the request to schedule a showtime.
// EndTime is optional; when omitted it is derived from the movie's duration.
type CreateShowtimeRequest struct {
	MovieID   int        `json:"movieId" binding:"required"`
	TheaterID int        `json:"theaterId" binding:"required"`
	StartTime time.Time  `json:"startTime" binding:"required"`
	EndTime   *time.Time `json:"endTime"`
	Price     float64    `json:"price" binding:"required"`
}

// Validate validates the CreateShowtimeRequest
func (r *CreateShowtimeRequest) Validate() (bool, string) {
	if r.MovieID <= 0 {
		return false, "Movie ID must be a positive integer"
	}
	if r.TheaterID <= 0 {
		return false, "Theater ID must be a positive integer"
	}
	if r.Price <= 0 {
		return false, "Showtime price must be greater than 0"
	}
	if r.StartTime.Before(domain.MinStartTime) {
		return false, "startTime cannot be before the year 1900"
	}
	if r.EndTime != nil && !r.EndTime.After(r.StartTime) {
		return false, "endTime must be later than startTime"
	}
	return true, ""
}

// UpdateShowtimeRequest represents a partial showtime update
type UpdateShowtimeRequest struct {
	MovieID   *int       `json:"movieId"`
	TheaterID *int       `json:"theaterId"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Price     *float64   `json:"price"`
}

// Validate validates the UpdateShowtimeRequest
func (r *UpdateShowtimeRequest) Validate() (bool, string) {
	if r.MovieID != nil && *r.MovieID <= 0 {
		return false, "Movie ID must be a positive integer"
	}
	if r.TheaterID != nil && *r.TheaterID <= 0 {
		return false, "Theater ID must be a positive integer"
	}
	if r.Price != nil && *r.Price <= 0 {
		return false, "Showtime price must be greater than 0"
	}
	if r.StartTime != nil && r.StartTime.Before(domain.MinStartTime) {
		return false, "startTime cannot be before the year 1900"
	}
	return true, ""
}

// ShowtimeListFilter narrows showtime list queries
type ShowtimeListFilter struct {
	TheaterID int `form:"theaterId"`
	MovieID   int `form:"movieId"`
}

// ShowtimeResponse represents the response for a showtime
type ShowtimeResponse struct {
	ID          int               `json:"id"`
	MovieID     int               `json:"movieId"`
	TheaterID   int               `json:"theaterId"`
	StartTime   time.Time         `json:"startTime"`
	EndTime     time.Time         `json:"endTime"`
	Price       float64           `json:"price"`
	SeatMatrix  domain.SeatMatrix `json:"seatMatrix,omitempty"`
	BookedCount int               `json:"bookedCount"`
	Movie       *MovieResponse    `json:"movie,omitempty"`
	Theater     *TheaterResponse  `json:"theater,omitempty"`
}

// NewShowtimeResponse builds a ShowtimeResponse from a domain showtime
func NewShowtimeResponse(s *domain.Showtime) *ShowtimeResponse {
	return &ShowtimeResponse{
		ID:          s.ID,
		MovieID:     s.MovieID,
		TheaterID:   s.TheaterID,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Price:       s.Price,
		SeatMatrix:  s.SeatMatrix,
		BookedCount: s.BookedCount,
	}
}

// NewShowtimeDetailResponse builds a response with resolved movie and theater
func NewShowtimeDetailResponse(s *domain.Showtime, m *domain.Movie, t *domain.Theater) *ShowtimeResponse {
	resp := NewShowtimeResponse(s)
	if m != nil {
		resp.Movie = NewMovieResponse(m)
	}
	if t != nil {
		resp.Theater = NewTheaterResponse(t)
	}
	return resp
}

// NewShowtimeListResponse builds responses for a list of showtimes.
// Seat matrices are omitted on list reads.
func NewShowtimeListResponse(showtimes []*domain.Showtime) []*ShowtimeResponse {
	out := make([]*ShowtimeResponse, 0, len(showtimes))
	for _, s := range showtimes {
		resp := NewShowtimeResponse(s)
		resp.SeatMatrix = nil
		out = append(out, resp)
	}
	return out
}
