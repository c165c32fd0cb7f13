package dto

import (
	"testing"
	"time"
)

func TestCreateShowtimeRequest_Validate(t *testing.T) {
	start := time.Date(2026, 11, 20, 19, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	before := start.Add(-time.Hour)
	ancient := time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     CreateShowtimeRequest
		want    bool
		wantMsg string
	}{
		{
			name: "valid without end time",
			req:  CreateShowtimeRequest{MovieID: 1, TheaterID: 2, StartTime: start, Price: 12.5},
			want: true,
		},
		{
			name: "valid with end time",
			req:  CreateShowtimeRequest{MovieID: 1, TheaterID: 2, StartTime: start, EndTime: &end, Price: 12.5},
			want: true,
		},
		{
			name:    "zero movie id",
			req:     CreateShowtimeRequest{TheaterID: 2, StartTime: start, Price: 12.5},
			want:    false,
			wantMsg: "Movie ID must be a positive integer",
		},
		{
			name:    "zero theater id",
			req:     CreateShowtimeRequest{MovieID: 1, StartTime: start, Price: 12.5},
			want:    false,
			wantMsg: "Theater ID must be a positive integer",
		},
		{
			name:    "zero price",
			req:     CreateShowtimeRequest{MovieID: 1, TheaterID: 2, StartTime: start},
			want:    false,
			wantMsg: "Showtime price must be greater than 0",
		},
		{
			name:    "start before 1900",
			req:     CreateShowtimeRequest{MovieID: 1, TheaterID: 2, StartTime: ancient, Price: 12.5},
			want:    false,
			wantMsg: "startTime cannot be before the year 1900",
		},
		{
			name:    "end before start",
			req:     CreateShowtimeRequest{MovieID: 1, TheaterID: 2, StartTime: start, EndTime: &before, Price: 12.5},
			want:    false,
			wantMsg: "endTime must be later than startTime",
		},
		{
			name:    "end equals start",
			req:     CreateShowtimeRequest{MovieID: 1, TheaterID: 2, StartTime: start, EndTime: &start, Price: 12.5},
			want:    false,
			wantMsg: "endTime must be later than startTime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := tt.req.Validate()
			if got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
			if msg != tt.wantMsg {
				t.Errorf("Validate() msg = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestCreateBookingRequest_Validate(t *testing.T) {
	seat := 5
	negative := -1

	tests := []struct {
		name string
		req  CreateBookingRequest
		want bool
	}{
		{"valid", CreateBookingRequest{ShowtimeID: 1, SeatNumber: &seat, UserID: "84438967-f68f-4fa0-b620-0f08217e76af"}, true},
		{"zero showtime", CreateBookingRequest{SeatNumber: &seat, UserID: "84438967-f68f-4fa0-b620-0f08217e76af"}, false},
		{"missing seat", CreateBookingRequest{ShowtimeID: 1, UserID: "84438967-f68f-4fa0-b620-0f08217e76af"}, false},
		{"negative seat", CreateBookingRequest{ShowtimeID: 1, SeatNumber: &negative, UserID: "84438967-f68f-4fa0-b620-0f08217e76af"}, false},
		{"opaque user id", CreateBookingRequest{ShowtimeID: 1, SeatNumber: &seat, UserID: "john-doe-123"}, true},
		{"blank user", CreateBookingRequest{ShowtimeID: 1, SeatNumber: &seat, UserID: "   "}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := tt.req.Validate(); got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBookSeatsRequest_Validate(t *testing.T) {
	tests := []struct {
		name string
		req  BookSeatsRequest
		want bool
	}{
		{"valid", BookSeatsRequest{UserID: "84438967-f68f-4fa0-b620-0f08217e76af", Seats: []SeatRef{{0, 0}, {0, 1}}}, true},
		{"empty seats", BookSeatsRequest{UserID: "84438967-f68f-4fa0-b620-0f08217e76af"}, false},
		{"negative row", BookSeatsRequest{UserID: "84438967-f68f-4fa0-b620-0f08217e76af", Seats: []SeatRef{{-1, 0}}}, false},
		{"opaque user id", BookSeatsRequest{UserID: "u", Seats: []SeatRef{{0, 0}}}, true},
		{"blank user", BookSeatsRequest{UserID: "   ", Seats: []SeatRef{{0, 0}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := tt.req.Validate(); got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}
