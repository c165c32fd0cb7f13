package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewSeatMatrix(t *testing.T) {
	m := NewSeatMatrix(5, 8)

	if m.Rows() != 5 {
		t.Errorf("Rows() = %d, want 5", m.Rows())
	}
	if m.Cols() != 8 {
		t.Errorf("Cols() = %d, want 8", m.Cols())
	}
	if m.Capacity() != 40 {
		t.Errorf("Capacity() = %d, want 40", m.Capacity())
	}
	for i, row := range m {
		for j, cell := range row {
			if cell != SeatAvailable {
				t.Errorf("seat (%d,%d) = %d, want %d", i, j, cell, SeatAvailable)
			}
		}
	}
}

func TestSeatMatrix_ResolveSeat(t *testing.T) {
	m := NewSeatMatrix(4, 6)

	tests := []struct {
		name       string
		seatNumber int
		wantRow    int
		wantCol    int
		wantErr    bool
	}{
		{"first seat", 0, 0, 0, false},
		{"end of first row", 5, 0, 5, false},
		{"start of second row", 6, 1, 0, false},
		{"last seat", 23, 3, 5, false},
		{"negative", -1, 0, 0, true},
		{"past capacity", 24, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, err := m.ResolveSeat(tt.seatNumber)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveSeat(%d) error = %v, wantErr %v", tt.seatNumber, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrSeatOutOfRange) {
					t.Errorf("ResolveSeat(%d) error = %v, want ErrSeatOutOfRange", tt.seatNumber, err)
				}
				return
			}
			if row != tt.wantRow || col != tt.wantCol {
				t.Errorf("ResolveSeat(%d) = (%d,%d), want (%d,%d)", tt.seatNumber, row, col, tt.wantRow, tt.wantCol)
			}
		})
	}
}

func TestSeatMatrix_SeatIndex_RoundTrip(t *testing.T) {
	m := NewSeatMatrix(7, 9)

	for n := 0; n < m.Capacity(); n++ {
		row, col, err := m.ResolveSeat(n)
		if err != nil {
			t.Fatalf("ResolveSeat(%d) error = %v", n, err)
		}
		back, err := m.SeatIndex(row, col)
		if err != nil {
			t.Fatalf("SeatIndex(%d,%d) error = %v", row, col, err)
		}
		if back != n {
			t.Errorf("round trip: seat %d resolved to (%d,%d) mapped back to %d", n, row, col, back)
		}
	}
}

func TestSeatMatrix_Book(t *testing.T) {
	m := NewSeatMatrix(3, 3)

	if err := m.Book(4); err != nil {
		t.Fatalf("Book(4) error = %v", err)
	}
	if m[1][1] != SeatBooked {
		t.Errorf("seat (1,1) = %d, want %d", m[1][1], SeatBooked)
	}

	if err := m.Book(4); !errors.Is(err, ErrSeatAlreadyBooked) {
		t.Errorf("Book(4) twice error = %v, want ErrSeatAlreadyBooked", err)
	}

	if err := m.Book(9); !errors.Is(err, ErrSeatOutOfRange) {
		t.Errorf("Book(9) error = %v, want ErrSeatOutOfRange", err)
	}
}

func TestSeatMatrix_Release(t *testing.T) {
	m := NewSeatMatrix(2, 2)

	if err := m.Book(1); err != nil {
		t.Fatalf("Book(1) error = %v", err)
	}
	if err := m.Release(1); err != nil {
		t.Fatalf("Release(1) error = %v", err)
	}
	booked, err := m.IsBooked(1)
	if err != nil {
		t.Fatalf("IsBooked(1) error = %v", err)
	}
	if booked {
		t.Error("seat 1 still booked after release")
	}
}

func TestSeatMatrix_CountBooked(t *testing.T) {
	m := NewSeatMatrix(4, 5)

	if got := m.CountBooked(); got != 0 {
		t.Errorf("CountBooked() = %d, want 0", got)
	}

	for _, n := range []int{0, 7, 13, 19} {
		if err := m.Book(n); err != nil {
			t.Fatalf("Book(%d) error = %v", n, err)
		}
	}

	if got := m.CountBooked(); got != 4 {
		t.Errorf("CountBooked() = %d, want 4", got)
	}
}

func TestShowtime_Overlaps(t *testing.T) {
	base := time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC)
	s := &Showtime{
		StartTime: base,
		EndTime:   base.Add(2 * time.Hour),
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical range", base, base.Add(2 * time.Hour), true},
		{"contained within", base.Add(30 * time.Minute), base.Add(time.Hour), true},
		{"straddles start", base.Add(-time.Hour), base.Add(time.Hour), true},
		{"straddles end", base.Add(time.Hour), base.Add(3 * time.Hour), true},
		{"back to back before", base.Add(-2 * time.Hour), base, false},
		{"back to back after", base.Add(2 * time.Hour), base.Add(4 * time.Hour), false},
		{"well before", base.Add(-5 * time.Hour), base.Add(-3 * time.Hour), false},
		{"well after", base.Add(5 * time.Hour), base.Add(7 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Overlaps(tt.start, tt.end); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
