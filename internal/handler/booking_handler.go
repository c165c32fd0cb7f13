package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/OfekRoodich/popcorn-palace/internal/dto"
	"github.com/OfekRoodich/popcorn-palace/internal/service"
	"github.com/OfekRoodich/popcorn-palace/pkg/response"
)

// BookingHandler handles booking-related HTTP requests
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

func parseBookingID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// Create handles POST /bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), &req)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	response.Created(c, dto.NewBookingResponse(booking))
}

// GetByID handles GET /bookings/:id
func (h *BookingHandler) GetByID(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	response.Success(c, dto.NewBookingDetailResponse(booking))
}

// Cancel handles DELETE /bookings/:id - releases the seat
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	response.Success(c, dto.NewBookingDetailResponse(booking))
}
