package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/OfekRoodich/popcorn-palace/internal/domain"
	"github.com/OfekRoodich/popcorn-palace/internal/dto"
)

// MockShowtimeService is a mock implementation of ShowtimeService
type MockShowtimeService struct {
	showtimes map[int]*domain.Showtime
	movie     *domain.Movie
	theater   *domain.Theater
	nextID    int
}

func NewMockShowtimeService() *MockShowtimeService {
	return &MockShowtimeService{
		showtimes: make(map[int]*domain.Showtime),
		movie: &domain.Movie{
			ID: 1, Title: "Interstellar", Genre: "Sci-Fi",
			Duration: 169, Rating: 8.6, ReleaseYear: 2014,
		},
		theater: &domain.Theater{ID: 1, Name: "IMAX One", Rows: 5, Cols: 6},
		nextID:  1,
	}
}

func (m *MockShowtimeService) Create(ctx context.Context, req *dto.CreateShowtimeRequest) (*domain.Showtime, error) {
	if req.MovieID != m.movie.ID {
		return nil, domain.ErrMovieNotFound
	}
	if req.TheaterID != m.theater.ID {
		return nil, domain.ErrTheaterNotFound
	}

	end := req.StartTime.Add(time.Duration(m.movie.Duration) * time.Minute)
	if req.EndTime != nil {
		end = *req.EndTime
	}
	for _, existing := range m.showtimes {
		if existing.Overlaps(req.StartTime, end) {
			return nil, domain.ErrShowtimeOverlap
		}
	}

	showtime := &domain.Showtime{
		ID:         m.nextID,
		MovieID:    req.MovieID,
		TheaterID:  req.TheaterID,
		StartTime:  req.StartTime,
		EndTime:    end,
		Price:      req.Price,
		SeatMatrix: domain.NewSeatMatrix(m.theater.Rows, m.theater.Cols),
	}
	m.nextID++
	m.showtimes[showtime.ID] = showtime
	return showtime, nil
}

func (m *MockShowtimeService) GetByID(ctx context.Context, id int) (*domain.Showtime, error) {
	showtime, ok := m.showtimes[id]
	if !ok {
		return nil, domain.ErrShowtimeNotFound
	}
	return showtime, nil
}

func (m *MockShowtimeService) GetDetail(ctx context.Context, id int) (*domain.Showtime, *domain.Movie, *domain.Theater, error) {
	showtime, ok := m.showtimes[id]
	if !ok {
		return nil, nil, nil, domain.ErrShowtimeNotFound
	}
	return showtime, m.movie, m.theater, nil
}

func (m *MockShowtimeService) List(ctx context.Context, filter *dto.ShowtimeListFilter) ([]*domain.Showtime, error) {
	var showtimes []*domain.Showtime
	for _, s := range m.showtimes {
		showtimes = append(showtimes, s)
	}
	return showtimes, nil
}

func (m *MockShowtimeService) Update(ctx context.Context, id int, req *dto.UpdateShowtimeRequest) (*domain.Showtime, error) {
	showtime, ok := m.showtimes[id]
	if !ok {
		return nil, domain.ErrShowtimeNotFound
	}
	if req.Price != nil {
		showtime.Price = *req.Price
	}
	return showtime, nil
}

func (m *MockShowtimeService) Delete(ctx context.Context, id int) error {
	if _, ok := m.showtimes[id]; !ok {
		return domain.ErrShowtimeNotFound
	}
	delete(m.showtimes, id)
	return nil
}

func setupShowtimeRouter(h *ShowtimeHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	showtimes := router.Group("/showtimes")
	{
		showtimes.GET("", h.List)
		showtimes.GET("/:id", h.GetByID)
		showtimes.POST("", h.Create)
		showtimes.PUT("/:id", h.Update)
		showtimes.DELETE("/:id", h.Delete)
		showtimes.PUT("/:id/seats", h.BookSeats)
	}

	return router
}

func TestShowtimeHandler_Create(t *testing.T) {
	mockSvc := NewMockShowtimeService()
	handler := NewShowtimeHandler(mockSvc, NewMockBookingService())
	router := setupShowtimeRouter(handler)

	start := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)

	tests := []struct {
		name       string
		body       map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid showtime",
			body: map[string]interface{}{
				"movieId": 1, "theaterId": 1, "startTime": start, "price": 20.2,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "overlapping showtime",
			body: map[string]interface{}{
				"movieId": 1, "theaterId": 1, "startTime": start, "price": 20.2,
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "unknown movie",
			body: map[string]interface{}{
				"movieId": 99, "theaterId": 1,
				"startTime": time.Now().Add(96 * time.Hour).UTC().Format(time.RFC3339),
				"price":     20.2,
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "non-positive price",
			body: map[string]interface{}{
				"movieId": 1, "theaterId": 1,
				"startTime": time.Now().Add(96 * time.Hour).UTC().Format(time.RFC3339),
				"price":     0,
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing start time",
			body:       map[string]interface{}{"movieId": 1, "theaterId": 1, "price": 20.2},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPost, "/showtimes", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestShowtimeHandler_GetByID_IncludesSeatMatrix(t *testing.T) {
	mockSvc := NewMockShowtimeService()
	handler := NewShowtimeHandler(mockSvc, NewMockBookingService())
	router := setupShowtimeRouter(handler)

	_, err := mockSvc.Create(context.Background(), &dto.CreateShowtimeRequest{
		MovieID:   1,
		TheaterID: 1,
		StartTime: time.Now().Add(24 * time.Hour),
		Price:     20.2,
	})
	if err != nil {
		t.Fatalf("failed to seed showtime: %v", err)
	}

	req, _ := http.NewRequest(http.MethodGet, "/showtimes/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data struct {
			SeatMatrix [][]int            `json:"seatMatrix"`
			Movie      *dto.MovieResponse `json:"movie"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(envelope.Data.SeatMatrix) != 5 {
		t.Fatalf("expected 5 seat rows, got %d", len(envelope.Data.SeatMatrix))
	}
	if len(envelope.Data.SeatMatrix[0]) != 6 {
		t.Errorf("expected 6 seat columns, got %d", len(envelope.Data.SeatMatrix[0]))
	}
	if envelope.Data.Movie == nil || envelope.Data.Movie.Title != "Interstellar" {
		t.Error("expected the movie to be resolved in the detail response")
	}
}

func TestShowtimeHandler_BookSeats(t *testing.T) {
	mockBookings := NewMockBookingService()
	handler := NewShowtimeHandler(NewMockShowtimeService(), mockBookings)
	router := setupShowtimeRouter(handler)

	tests := []struct {
		name       string
		body       map[string]interface{}
		wantStatus int
	}{
		{
			name: "books three seats",
			body: map[string]interface{}{
				"userId": mockUserID,
				"seats": []map[string]int{
					{"row": 0, "col": 0}, {"row": 0, "col": 1}, {"row": 2, "col": 3},
				},
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "conflicting seat",
			body: map[string]interface{}{
				"userId": mockUserID,
				"seats":  []map[string]int{{"row": 0, "col": 0}},
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "seat outside grid",
			body: map[string]interface{}{
				"userId": mockUserID,
				"seats":  []map[string]int{{"row": 50, "col": 0}},
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no seats",
			body:       map[string]interface{}{"userId": mockUserID, "seats": []map[string]int{}},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPut, "/showtimes/1/seats", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, resp.Code, resp.Body.String())
			}
		})
	}
}
