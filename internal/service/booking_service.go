package service

import (
	"context"

	"github.com/OfekRoodich/popcorn-palace/internal/domain"
	"github.com/OfekRoodich/popcorn-palace/internal/dto"
	"github.com/OfekRoodich/popcorn-palace/internal/repository"
)

// bookingService implements BookingService
type bookingService struct {
	bookingRepo  repository.BookingRepository
	showtimeRepo repository.ShowtimeRepository
}

// NewBookingService creates a new BookingService
func NewBookingService(
	bookingRepo repository.BookingRepository,
	showtimeRepo repository.ShowtimeRepository,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		showtimeRepo: showtimeRepo,
	}
}

// Create books a single seat
func (s *bookingService) Create(ctx context.Context, req *dto.CreateBookingRequest) (*domain.Booking, error) {
	showtime, err := s.showtimeRepo.GetByID(ctx, req.ShowtimeID)
	if err != nil {
		return nil, err
	}
	if showtime == nil {
		return nil, domain.ErrShowtimeNotFound
	}

	if _, _, err := showtime.SeatMatrix.ResolveSeat(*req.SeatNumber); err != nil {
		return nil, err
	}

	booking := domain.NewBooking(req.ShowtimeID, *req.SeatNumber, req.UserID)
	if err := booking.Validate(); err != nil {
		return nil, err
	}

	// The repository re-checks the cell under the showtime row lock;
	// the read above only rejects obviously invalid requests early.
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// BookSeats books multiple seats on one showtime, all or nothing
func (s *bookingService) BookSeats(ctx context.Context, showtimeID int, req *dto.BookSeatsRequest) ([]*domain.Booking, error) {
	if len(req.Seats) == 0 {
		return nil, domain.ErrNoSeatsRequested
	}

	showtime, err := s.showtimeRepo.GetByID(ctx, showtimeID)
	if err != nil {
		return nil, err
	}
	if showtime == nil {
		return nil, domain.ErrShowtimeNotFound
	}

	seatNumbers := make([]int, 0, len(req.Seats))
	for _, seat := range req.Seats {
		n, err := showtime.SeatMatrix.SeatIndex(seat.Row, seat.Col)
		if err != nil {
			return nil, err
		}
		seatNumbers = append(seatNumbers, n)
	}

	return s.bookingRepo.BookSeats(ctx, showtimeID, req.UserID, seatNumbers)
}

// GetByID retrieves a booking by ID
func (s *bookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrBookingNotFound
	}
	return booking, nil
}

// Cancel releases the booked seat and removes the booking
func (s *bookingService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.Cancel(ctx, id)
}
