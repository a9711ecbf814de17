package location

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jogajunto/backend/pkg/responses"
	"github.com/jogajunto/backend/pkg/validator"
)

// LocationController handles venue catalog HTTP requests.
type LocationController struct {
	repo LocationRepository
}

// NewLocationController creates a new location controller.
func NewLocationController(repo LocationRepository) *LocationController {
	return &LocationController{repo: repo}
}

// LocationInput is the payload for creating or updating a location.
type LocationInput struct {
	Name      string  `json:"name" binding:"required,min=2,max=200"`
	Latitude  float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
	Address   string  `json:"address,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// ListLocations godoc
// @Summary List active locations
// @Tags locations
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Router /locations [get]
func (c *LocationController) ListLocations(ctx *gin.Context) {
	locations, err := c.repo.GetActive()
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "", locations)
}

// GetLocation godoc
// @Summary Get a location by id
// @Tags locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /locations/{id} [get]
func (c *LocationController) GetLocation(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "Invalid location id")
		return
	}
	loc, err := c.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	if loc == nil {
		responses.NotFound(ctx, "Location")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "", loc)
}

// CreateLocation godoc
// @Summary Create a location
// @Tags locations
// @Accept json
// @Produce json
// @Param location body LocationInput true "Location"
// @Success 201 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /admin/locations [post]
// @Security Bearer
func (c *LocationController) CreateLocation(ctx *gin.Context) {
	var input LocationInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "fields": validator.ParseError(err)})
		return
	}

	loc := &Location{
		Name:      input.Name,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Address:   input.Address,
		Phone:     input.Phone,
		Active:    true,
	}
	if input.Active != nil {
		loc.Active = *input.Active
	}

	if err := c.repo.Create(loc); err != nil {
		responses.InternalServerError(ctx, "Failed to create location")
		return
	}
	responses.SendSuccess(ctx, http.StatusCreated, "Location created", loc)
}

// UpdateLocation godoc
// @Summary Update a location
// @Tags locations
// @Accept json
// @Produce json
// @Param id path int true "Location ID"
// @Param location body LocationInput true "Location"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /admin/locations/{id} [put]
// @Security Bearer
func (c *LocationController) UpdateLocation(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "Invalid location id")
		return
	}
	loc, err := c.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	if loc == nil {
		responses.NotFound(ctx, "Location")
		return
	}

	var input LocationInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "fields": validator.ParseError(err)})
		return
	}

	loc.Name = input.Name
	loc.Latitude = input.Latitude
	loc.Longitude = input.Longitude
	loc.Address = input.Address
	loc.Phone = input.Phone
	if input.Active != nil {
		loc.Active = *input.Active
	}

	if err := c.repo.Update(loc); err != nil {
		responses.InternalServerError(ctx, "Failed to update location")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Location updated", loc)
}

// DeleteLocation godoc
// @Summary Delete a location
// @Tags locations
// @Param id path int true "Location ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/locations/{id} [delete]
// @Security Bearer
func (c *LocationController) DeleteLocation(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "Invalid location id")
		return
	}
	if err := c.repo.Delete(uint(id)); err != nil {
		responses.InternalServerError(ctx, "Failed to delete location")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Location deleted", nil)
}
