package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/OfekRoodich/popcorn-palace/internal/dto"
	"github.com/OfekRoodich/popcorn-palace/internal/service"
	"github.com/OfekRoodich/popcorn-palace/pkg/response"
)

// ShowtimeHandler handles showtime-related HTTP requests
type ShowtimeHandler struct {
	showtimeService service.ShowtimeService
	bookingService  service.BookingService
}

// NewShowtimeHandler creates a new ShowtimeHandler
func NewShowtimeHandler(showtimeService service.ShowtimeService, bookingService service.BookingService) *ShowtimeHandler {
	return &ShowtimeHandler{
		showtimeService: showtimeService,
		bookingService:  bookingService,
	}
}

// Create handles POST /showtimes
func (h *ShowtimeHandler) Create(c *gin.Context) {
	var req dto.CreateShowtimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	showtime, err := h.showtimeService.Create(c.Request.Context(), &req)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	response.Created(c, dto.NewShowtimeResponse(showtime))
}

// List handles GET /showtimes with optional theaterId and movieId filters
func (h *ShowtimeHandler) List(c *gin.Context) {
	var filter dto.ShowtimeListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	showtimes, err := h.showtimeService.List(c.Request.Context(), &filter)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	response.Success(c, dto.NewShowtimeListResponse(showtimes))
}

// GetByID handles GET /showtimes/:id with the movie, theater and seat
// grid resolved
func (h *ShowtimeHandler) GetByID(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid showtime ID")
		return
	}

	showtime, movie, theater, err := h.showtimeService.GetDetail(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	response.Success(c, dto.NewShowtimeDetailResponse(showtime, movie, theater))
}

// Update handles PUT /showtimes/:id
func (h *ShowtimeHandler) Update(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid showtime ID")
		return
	}

	var req dto.UpdateShowtimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	showtime, err := h.showtimeService.Update(c.Request.Context(), id, &req)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	response.Success(c, dto.NewShowtimeResponse(showtime))
}

// Delete handles DELETE /showtimes/:id
func (h *ShowtimeHandler) Delete(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid showtime ID")
		return
	}

	if err := h.showtimeService.Delete(c.Request.Context(), id); err != nil {
		mapDomainError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}

// BookSeats handles PUT /showtimes/:id/seats - books several seats on
// one showtime, all or nothing
func (h *ShowtimeHandler) BookSeats(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid showtime ID")
		return
	}

	var req dto.BookSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	bookings, err := h.bookingService.BookSeats(c.Request.Context(), id, &req)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	response.Created(c, dto.NewBookingListResponse(bookings))
}
