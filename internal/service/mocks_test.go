package service

import (
	"context"

	"github.com/OfekRoodich/popcorn-palace/internal/domain"
	"github.com/OfekRoodich/popcorn-palace/internal/repository"
)

// In-memory repositories replicating the postgres repositories'
// semantics, including the half-open overlap check and the
// cell-check-then-recount booking transaction.

type memMovieRepo struct {
	movies map[int]*domain.Movie
	nextID int
}

func newMemMovieRepo() *memMovieRepo {
	return &memMovieRepo{movies: make(map[int]*domain.Movie), nextID: 1}
}

func (m *memMovieRepo) Create(ctx context.Context, movie *domain.Movie) error {
	movie.ID = m.nextID
	m.nextID++
	m.movies[movie.ID] = movie
	return nil
}

func (m *memMovieRepo) GetByID(ctx context.Context, id int) (*domain.Movie, error) {
	movie, ok := m.movies[id]
	if !ok {
		return nil, nil
	}
	return movie, nil
}

func (m *memMovieRepo) List(ctx context.Context) ([]*domain.Movie, error) {
	var movies []*domain.Movie
	for _, movie := range m.movies {
		movies = append(movies, movie)
	}
	return movies, nil
}

func (m *memMovieRepo) Update(ctx context.Context, movie *domain.Movie) error {
	if _, ok := m.movies[movie.ID]; !ok {
		return domain.ErrMovieNotFound
	}
	m.movies[movie.ID] = movie
	return nil
}

func (m *memMovieRepo) Delete(ctx context.Context, id int) error {
	if _, ok := m.movies[id]; !ok {
		return domain.ErrMovieNotFound
	}
	delete(m.movies, id)
	return nil
}

func (m *memMovieRepo) TitleExists(ctx context.Context, title string, excludeID int) (bool, error) {
	for _, movie := range m.movies {
		if movie.Title == title && movie.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type memTheaterRepo struct {
	theaters map[int]*domain.Theater
	nextID   int

	showtimes *memShowtimeRepo
}

func newMemTheaterRepo() *memTheaterRepo {
	return &memTheaterRepo{theaters: make(map[int]*domain.Theater), nextID: 1}
}

func (m *memTheaterRepo) Create(ctx context.Context, theater *domain.Theater) error {
	theater.ID = m.nextID
	m.nextID++
	m.theaters[theater.ID] = theater
	return nil
}

func (m *memTheaterRepo) GetByID(ctx context.Context, id int) (*domain.Theater, error) {
	theater, ok := m.theaters[id]
	if !ok {
		return nil, nil
	}
	return theater, nil
}

func (m *memTheaterRepo) List(ctx context.Context) ([]*domain.Theater, error) {
	var theaters []*domain.Theater
	for _, theater := range m.theaters {
		theaters = append(theaters, theater)
	}
	return theaters, nil
}

func (m *memTheaterRepo) Update(ctx context.Context, theater *domain.Theater) error {
	if _, ok := m.theaters[theater.ID]; !ok {
		return domain.ErrTheaterNotFound
	}
	m.theaters[theater.ID] = theater
	return nil
}

// Delete cascades to the theater's showtimes the way the foreign key does
func (m *memTheaterRepo) Delete(ctx context.Context, id int) error {
	if _, ok := m.theaters[id]; !ok {
		return domain.ErrTheaterNotFound
	}
	delete(m.theaters, id)
	if m.showtimes != nil {
		for showtimeID, showtime := range m.showtimes.showtimes {
			if showtime.TheaterID == id {
				delete(m.showtimes.showtimes, showtimeID)
			}
		}
	}
	return nil
}

func (m *memTheaterRepo) NameExists(ctx context.Context, name string, excludeID int) (bool, error) {
	for _, theater := range m.theaters {
		if theater.Name == name && theater.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type memShowtimeRepo struct {
	showtimes map[int]*domain.Showtime
	nextID    int
}

func newMemShowtimeRepo() *memShowtimeRepo {
	return &memShowtimeRepo{showtimes: make(map[int]*domain.Showtime), nextID: 1}
}

func cloneShowtime(s *domain.Showtime) *domain.Showtime {
	clone := *s
	clone.SeatMatrix = make(domain.SeatMatrix, len(s.SeatMatrix))
	for i, row := range s.SeatMatrix {
		clone.SeatMatrix[i] = append([]int(nil), row...)
	}
	return &clone
}

func (m *memShowtimeRepo) hasOverlap(s *domain.Showtime) bool {
	for _, existing := range m.showtimes {
		if existing.TheaterID != s.TheaterID || existing.ID == s.ID {
			continue
		}
		if existing.Overlaps(s.StartTime, s.EndTime) {
			return true
		}
	}
	return false
}

func (m *memShowtimeRepo) Create(ctx context.Context, showtime *domain.Showtime) error {
	if m.hasOverlap(showtime) {
		return domain.ErrShowtimeOverlap
	}
	showtime.ID = m.nextID
	m.nextID++
	m.showtimes[showtime.ID] = showtime
	return nil
}

// GetByID returns a copy, as the postgres repository does; callers
// never alias the stored record
func (m *memShowtimeRepo) GetByID(ctx context.Context, id int) (*domain.Showtime, error) {
	showtime, ok := m.showtimes[id]
	if !ok {
		return nil, nil
	}
	return cloneShowtime(showtime), nil
}

func (m *memShowtimeRepo) List(ctx context.Context, filter *repository.ShowtimeFilter) ([]*domain.Showtime, error) {
	var showtimes []*domain.Showtime
	for _, showtime := range m.showtimes {
		if filter != nil {
			if filter.TheaterID > 0 && showtime.TheaterID != filter.TheaterID {
				continue
			}
			if filter.MovieID > 0 && showtime.MovieID != filter.MovieID {
				continue
			}
		}
		showtimes = append(showtimes, showtime)
	}
	return showtimes, nil
}

// Update mirrors the postgres repository: the stored grid and count
// win over the caller's copy unless the theater changes, which is
// refused while any seat is booked
func (m *memShowtimeRepo) Update(ctx context.Context, showtime *domain.Showtime) error {
	current, ok := m.showtimes[showtime.ID]
	if !ok {
		return domain.ErrShowtimeNotFound
	}
	if m.hasOverlap(showtime) {
		return domain.ErrShowtimeOverlap
	}
	if showtime.TheaterID != current.TheaterID {
		if current.BookedCount > 0 {
			return domain.ErrShowtimeHasBookedSeats
		}
	} else {
		showtime.SeatMatrix = current.SeatMatrix
		showtime.BookedCount = current.BookedCount
	}
	m.showtimes[showtime.ID] = showtime
	return nil
}

func (m *memShowtimeRepo) Delete(ctx context.Context, id int) error {
	if _, ok := m.showtimes[id]; !ok {
		return domain.ErrShowtimeNotFound
	}
	delete(m.showtimes, id)
	return nil
}

type memBookingRepo struct {
	bookings  map[string]*domain.Booking
	showtimes *memShowtimeRepo
}

func newMemBookingRepo(showtimes *memShowtimeRepo) *memBookingRepo {
	return &memBookingRepo{
		bookings:  make(map[string]*domain.Booking),
		showtimes: showtimes,
	}
}

func (m *memBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	showtime, ok := m.showtimes.showtimes[booking.ShowtimeID]
	if !ok {
		return domain.ErrShowtimeNotFound
	}
	if err := showtime.SeatMatrix.Book(booking.SeatNumber); err != nil {
		return err
	}
	showtime.BookedCount = showtime.SeatMatrix.CountBooked()
	m.bookings[booking.ID] = booking
	return nil
}

func (m *memBookingRepo) BookSeats(ctx context.Context, showtimeID int, userID string, seatNumbers []int) ([]*domain.Booking, error) {
	showtime, ok := m.showtimes.showtimes[showtimeID]
	if !ok {
		return nil, domain.ErrShowtimeNotFound
	}

	// All or nothing: validate every cell before mutating
	for _, n := range seatNumbers {
		booked, err := showtime.SeatMatrix.IsBooked(n)
		if err != nil {
			return nil, err
		}
		if booked {
			return nil, domain.ErrSeatAlreadyBooked
		}
	}

	var bookings []*domain.Booking
	for _, n := range seatNumbers {
		if err := showtime.SeatMatrix.Book(n); err != nil {
			return nil, err
		}
		booking := domain.NewBooking(showtimeID, n, userID)
		m.bookings[booking.ID] = booking
		bookings = append(bookings, booking)
	}
	showtime.BookedCount = showtime.SeatMatrix.CountBooked()
	return bookings, nil
}

func (m *memBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	booking, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	return booking, nil
}

func (m *memBookingRepo) ListByShowtime(ctx context.Context, showtimeID int) ([]*domain.Booking, error) {
	var bookings []*domain.Booking
	for _, booking := range m.bookings {
		if booking.ShowtimeID == showtimeID {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (m *memBookingRepo) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	booking, ok := m.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	showtime, ok := m.showtimes.showtimes[booking.ShowtimeID]
	if ok {
		if err := showtime.SeatMatrix.Release(booking.SeatNumber); err != nil {
			return nil, err
		}
		showtime.BookedCount = showtime.SeatMatrix.CountBooked()
	}
	delete(m.bookings, id)
	return booking, nil
}

var (
	_ repository.MovieRepository    = (*memMovieRepo)(nil)
	_ repository.TheaterRepository  = (*memTheaterRepo)(nil)
	_ repository.ShowtimeRepository = (*memShowtimeRepo)(nil)
	_ repository.BookingRepository  = (*memBookingRepo)(nil)
)
