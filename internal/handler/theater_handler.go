package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/OfekRoodich/popcorn-palace/internal/dto"
	"github.com/OfekRoodich/popcorn-palace/internal/service"
	"github.com/OfekRoodich/popcorn-palace/pkg/response"
)

// TheaterHandler handles theater-related HTTP requests
type TheaterHandler struct {
	theaterService service.TheaterService
}

// NewTheaterHandler creates a new TheaterHandler
func NewTheaterHandler(theaterService service.TheaterService) *TheaterHandler {
	return &TheaterHandler{
		theaterService: theaterService,
	}
}

// Create handles POST /theaters
func (h *TheaterHandler) Create(c *gin.Context) {
	var req dto.CreateTheaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	theater, err := h.theaterService.Create(c.Request.Context(), &req)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	response.Created(c, dto.NewTheaterResponse(theater))
}

// List handles GET /theaters
func (h *TheaterHandler) List(c *gin.Context) {
	theaters, err := h.theaterService.List(c.Request.Context())
	if err != nil {
		mapDomainError(c, err)
		return
	}

	response.Success(c, dto.NewTheaterListResponse(theaters))
}

// GetByID handles GET /theaters/:id
func (h *TheaterHandler) GetByID(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid theater ID")
		return
	}

	theater, err := h.theaterService.GetByID(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	response.Success(c, dto.NewTheaterResponse(theater))
}

// Update handles PUT /theaters/:id
func (h *TheaterHandler) Update(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid theater ID")
		return
	}

	var req dto.UpdateTheaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	theater, err := h.theaterService.Update(c.Request.Context(), id, &req)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	response.Success(c, dto.NewTheaterResponse(theater))
}

// Delete handles DELETE /theaters/:id
func (h *TheaterHandler) Delete(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid theater ID")
		return
	}

	if err := h.theaterService.Delete(c.Request.Context(), id); err != nil {
		mapDomainError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
