package dto

import (
	"github.com/OfekRoodich/popcorn-palace/internal/domain"
)

// CreateTheaterRequest represents the request to create a theater
type CreateTheaterRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
	Rows int    `json:"numberOfRows" binding:"required"`
	Cols int    `json:"numberOfColumns" binding:"required"`
}

// Validate validates the CreateTheaterRequest
func (r *CreateTheaterRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Theater name is required"
	}
	if r.Rows <= 0 || r.Rows > domain.MaxTheaterDimension {
		return false, "Number of rows must be between 1 and 100"
	}
	if r.Cols <= 0 || r.Cols > domain.MaxTheaterDimension {
		return false, "Number of columns must be between 1 and 100"
	}
	return true, ""
}

// ToDomain converts the request to a domain theater
func (r *CreateTheaterRequest) ToDomain() *domain.Theater {
	return &domain.Theater{
		Name: r.Name,
		Rows: r.Rows,
		Cols: r.Cols,
	}
}

// UpdateTheaterRequest represents the request to update a theater
type UpdateTheaterRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=255"`
	Rows *int    `json:"numberOfRows"`
	Cols *int    `json:"numberOfColumns"`
}

// Validate validates the UpdateTheaterRequest
func (r *UpdateTheaterRequest) Validate() (bool, string) {
	if r.Name != nil && *r.Name == "" {
		return false, "Theater name cannot be empty"
	}
	if r.Rows != nil && (*r.Rows <= 0 || *r.Rows > domain.MaxTheaterDimension) {
		return false, "Number of rows must be between 1 and 100"
	}
	if r.Cols != nil && (*r.Cols <= 0 || *r.Cols > domain.MaxTheaterDimension) {
		return false, "Number of columns must be between 1 and 100"
	}
	return true, ""
}

// Apply overlays the provided fields onto an existing theater.
// Dimension changes affect future showtime grids only.
func (r *UpdateTheaterRequest) Apply(t *domain.Theater) {
	if r.Name != nil {
		t.Name = *r.Name
	}
	if r.Rows != nil {
		t.Rows = *r.Rows
	}
	if r.Cols != nil {
		t.Cols = *r.Cols
	}
}

// TheaterResponse represents the response for a theater
type TheaterResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Rows     int    `json:"numberOfRows"`
	Cols     int    `json:"numberOfColumns"`
	Capacity int    `json:"capacity"`
}

// NewTheaterResponse builds a TheaterResponse from a domain theater
func NewTheaterResponse(t *domain.Theater) *TheaterResponse {
	return &TheaterResponse{
		ID:       t.ID,
		Name:     t.Name,
		Rows:     t.Rows,
		Cols:     t.Cols,
		Capacity: t.Capacity(),
	}
}

// NewTheaterListResponse builds responses for a list of theaters
func NewTheaterListResponse(theaters []*domain.Theater) []*TheaterResponse {
	out := make([]*TheaterResponse, 0, len(theaters))
	for _, t := range theaters {
		out = append(out, NewTheaterResponse(t))
	}
	return out
}
