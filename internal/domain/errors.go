package domain

import "errors"

// Domain errors
var (
	// Movie errors
	ErrMovieNotFound      = errors.New("movie not found")
	ErrDuplicateTitle     = errors.New("a movie with this title already exists")
	ErrInvalidTitle       = errors.New("title must not be empty")
	ErrInvalidGenre       = errors.New("genre must not be empty")
	ErrInvalidDuration    = errors.New("duration must be greater than zero")
	ErrInvalidRating      = errors.New("rating must be between 0 and 10")
	ErrInvalidReleaseYear = errors.New("release year must be between 1900 and the current year")

	// Theater errors
	ErrTheaterNotFound      = errors.New("theater not found")
	ErrDuplicateTheaterName = errors.New("a theater with this name already exists")
	ErrInvalidTheaterName   = errors.New("theater name must not be empty")
	ErrInvalidDimensions    = errors.New("rows and columns must be between 1 and 100")

	// Showtime errors
	ErrShowtimeNotFound       = errors.New("showtime not found")
	ErrShowtimeOverlap        = errors.New("showtime overlaps an existing showtime in this theater")
	ErrShowtimeHasBookedSeats = errors.New("showtime has booked seats")
	ErrInvalidShowtimeID      = errors.New("invalid showtime id")
	ErrInvalidPrice           = errors.New("price must be greater than zero")
	ErrInvalidTimeRange       = errors.New("end time must be after start time")
	ErrStartTimeTooEarly      = errors.New("start time must not be before 1900-01-01")
	ErrStartTimeInPast        = errors.New("start time must be in the future")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrSeatAlreadyBooked = errors.New("seat is already booked")
	ErrSeatOutOfRange    = errors.New("seat number is outside the theater grid")
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrNoSeatsRequested  = errors.New("at least one seat must be requested")
)

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrMovieNotFound) ||
		errors.Is(err, ErrTheaterNotFound) ||
		errors.Is(err, ErrShowtimeNotFound) ||
		errors.Is(err, ErrBookingNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidTitle) ||
		errors.Is(err, ErrInvalidGenre) ||
		errors.Is(err, ErrInvalidDuration) ||
		errors.Is(err, ErrInvalidRating) ||
		errors.Is(err, ErrInvalidReleaseYear) ||
		errors.Is(err, ErrInvalidTheaterName) ||
		errors.Is(err, ErrInvalidDimensions) ||
		errors.Is(err, ErrInvalidShowtimeID) ||
		errors.Is(err, ErrInvalidPrice) ||
		errors.Is(err, ErrInvalidTimeRange) ||
		errors.Is(err, ErrStartTimeTooEarly) ||
		errors.Is(err, ErrStartTimeInPast) ||
		errors.Is(err, ErrSeatOutOfRange) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrNoSeatsRequested)
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateTitle) ||
		errors.Is(err, ErrDuplicateTheaterName) ||
		errors.Is(err, ErrShowtimeOverlap) ||
		errors.Is(err, ErrSeatAlreadyBooked) ||
		errors.Is(err, ErrShowtimeHasBookedSeats)
}
