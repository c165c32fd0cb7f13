package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OfekRoodich/popcorn-palace/internal/domain"
	"github.com/OfekRoodich/popcorn-palace/internal/dto"
)

const testUserID = "84438967-f68f-4fa0-b620-0f08217e76af"

type bookingFixture struct {
	svc      BookingService
	showtime *domain.Showtime
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	ctx := context.Background()

	showtimeRepo := newMemShowtimeRepo()
	bookingRepo := newMemBookingRepo(showtimeRepo)

	start := time.Now().Add(24 * time.Hour)
	showtime := &domain.Showtime{
		MovieID:    1,
		TheaterID:  1,
		StartTime:  start,
		EndTime:    start.Add(2 * time.Hour),
		Price:      12,
		SeatMatrix: domain.NewSeatMatrix(4, 5),
	}
	require.NoError(t, showtimeRepo.Create(ctx, showtime))

	return &bookingFixture{
		svc:      NewBookingService(bookingRepo, showtimeRepo),
		showtime: showtime,
	}
}

func bookingReq(showtimeID, seat int) *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		ShowtimeID: showtimeID,
		SeatNumber: &seat,
		UserID:     testUserID,
	}
}

func TestBookingService_Create(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	booking, err := f.svc.Create(ctx, bookingReq(f.showtime.ID, 7))
	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, 7, booking.SeatNumber)

	booked, err := f.showtime.SeatMatrix.IsBooked(7)
	require.NoError(t, err)
	assert.True(t, booked)
	assert.Equal(t, 1, f.showtime.BookedCount)
}

func TestBookingService_Create_SeatTaken(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, bookingReq(f.showtime.ID, 7))
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, bookingReq(f.showtime.ID, 7))
	assert.ErrorIs(t, err, domain.ErrSeatAlreadyBooked)
	assert.Equal(t, 1, f.showtime.BookedCount)
}

func TestBookingService_Create_SeatOutOfRange(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Create(context.Background(), bookingReq(f.showtime.ID, 20))
	assert.ErrorIs(t, err, domain.ErrSeatOutOfRange)
}

func TestBookingService_Create_UnknownShowtime(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Create(context.Background(), bookingReq(999, 0))
	assert.ErrorIs(t, err, domain.ErrShowtimeNotFound)
}

func TestBookingService_BookSeats_AllOrNothing(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	// Take seat (1,1) = 6 first
	_, err := f.svc.Create(ctx, bookingReq(f.showtime.ID, 6))
	require.NoError(t, err)

	// Bulk request including the taken seat books nothing
	_, err = f.svc.BookSeats(ctx, f.showtime.ID, &dto.BookSeatsRequest{
		UserID: testUserID,
		Seats:  []dto.SeatRef{{Row: 0, Col: 0}, {Row: 1, Col: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrSeatAlreadyBooked)
	assert.Equal(t, 1, f.showtime.BookedCount)

	free, err := f.showtime.SeatMatrix.IsBooked(0)
	require.NoError(t, err)
	assert.False(t, free, "seat (0,0) must stay free after failed bulk booking")
}

func TestBookingService_BookSeats(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	bookings, err := f.svc.BookSeats(ctx, f.showtime.ID, &dto.BookSeatsRequest{
		UserID: testUserID,
		Seats:  []dto.SeatRef{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 2, Col: 3}},
	})
	require.NoError(t, err)
	assert.Len(t, bookings, 3)
	assert.Equal(t, 3, f.showtime.BookedCount)

	// (2,3) in a 4x5 grid is seat 13
	assert.Equal(t, 13, bookings[2].SeatNumber)
}

func TestBookingService_BookSeats_OutOfRange(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.BookSeats(context.Background(), f.showtime.ID, &dto.BookSeatsRequest{
		UserID: testUserID,
		Seats:  []dto.SeatRef{{Row: 9, Col: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrSeatOutOfRange)
	assert.Zero(t, f.showtime.BookedCount)
}

func TestBookingService_Cancel(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	booking, err := f.svc.Create(ctx, bookingReq(f.showtime.ID, 3))
	require.NoError(t, err)

	cancelled, err := f.svc.Cancel(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, cancelled.ID)
	assert.Zero(t, f.showtime.BookedCount)

	booked, err := f.showtime.SeatMatrix.IsBooked(3)
	require.NoError(t, err)
	assert.False(t, booked)

	// The seat is bookable again
	_, err = f.svc.Create(ctx, bookingReq(f.showtime.ID, 3))
	assert.NoError(t, err)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Cancel(context.Background(), "7f9deca5-1b30-4a7e-9b8a-111111111111")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_GetByID_NotFound(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.GetByID(context.Background(), "7f9deca5-1b30-4a7e-9b8a-111111111111")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}
