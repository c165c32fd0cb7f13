package handler

import (
	"context"
	"errors"
	"net"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/OfekRoodich/popcorn-palace/internal/domain"
	"github.com/OfekRoodich/popcorn-palace/internal/dto"
	"github.com/OfekRoodich/popcorn-palace/internal/service"
	"github.com/OfekRoodich/popcorn-palace/pkg/response"
)

// MovieHandler handles movie-related HTTP requests
type MovieHandler struct {
	movieService service.MovieService
}

// NewMovieHandler creates a new MovieHandler
func NewMovieHandler(movieService service.MovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

// parseIntParam reads a positive integer path parameter.
func parseIntParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// mapDomainError writes the HTTP response for a service layer error.
func mapDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsNotFoundError(err):
		response.NotFound(c, err.Error())
	case domain.IsConflictError(err):
		response.Conflict(c, err.Error())
	case domain.IsValidationError(err):
		response.BadRequest(c, err.Error())
	case isStoreUnavailable(err):
		response.ServiceUnavailable(c, "Data store unavailable")
	default:
		response.InternalError(c, err)
	}
}

// isStoreUnavailable reports whether the error chain points at an
// unreachable backing store rather than a domain failure.
func isStoreUnavailable(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded)
}

// Create handles POST /movies
func (h *MovieHandler) Create(c *gin.Context) {
	var req dto.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	movie, err := h.movieService.Create(c.Request.Context(), &req)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	response.Created(c, dto.NewMovieResponse(movie))
}

// List handles GET /movies
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.movieService.List(c.Request.Context())
	if err != nil {
		mapDomainError(c, err)
		return
	}

	response.Success(c, dto.NewMovieListResponse(movies))
}

// GetByID handles GET /movies/:id
func (h *MovieHandler) GetByID(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid movie ID")
		return
	}

	movie, err := h.movieService.GetByID(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	response.Success(c, dto.NewMovieResponse(movie))
}

// Update handles PUT /movies/:id
func (h *MovieHandler) Update(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid movie ID")
		return
	}

	var req dto.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	movie, err := h.movieService.Update(c.Request.Context(), id, &req)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	response.Success(c, dto.NewMovieResponse(movie))
}

// Delete handles DELETE /movies/:id
func (h *MovieHandler) Delete(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid movie ID")
		return
	}

	if err := h.movieService.Delete(c.Request.Context(), id); err != nil {
		mapDomainError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
