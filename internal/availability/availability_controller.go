package availability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jogajunto/backend/internal/middleware"
	"github.com/jogajunto/backend/internal/models"
	"github.com/jogajunto/backend/internal/sport"
	"github.com/jogajunto/backend/pkg/responses"
	"github.com/jogajunto/backend/pkg/schedule"
	"github.com/jogajunto/backend/pkg/validator"
)

// AvailabilityController handles availability HTTP requests.
type AvailabilityController struct {
	repo AvailabilityRepository
}

// NewAvailabilityController creates a new availability controller.
func NewAvailabilityController(repo AvailabilityRepository) *AvailabilityController {
	return &AvailabilityController{repo: repo}
}

// AvailabilityInput is the payload for publishing or editing an availability.
type AvailabilityInput struct {
	Sports       []string   `json:"sports" binding:"required,min=1"`
	LocationIDs  []uint     `json:"locations" binding:"required,min=1"`
	TimeSlots    []TimeSlot `json:"time_slots" binding:"required,min=1,dive"`
	Visibility   Visibility `json:"visibility" binding:"omitempty,oneof=public groups"`
	DurationDays int        `json:"duration_days" binding:"required,oneof=7 14"`
	Notes        string     `json:"notes,omitempty" binding:"max=1000"`
}

// validateInput applies the checks binding tags can't express: sport tags
// must be canonical, weekdays valid, and every slot's start before its end.
// This is the single place slot ordering is enforced.
func validateInput(input *AvailabilityInput) string {
	for _, s := range input.Sports {
		if !sport.IsValid(s) {
			return "Unknown sport: " + s
		}
	}
	for _, slot := range input.TimeSlots {
		if !schedule.IsValidWeekday(slot.Day) {
			return "Unknown weekday: " + slot.Day
		}
		start, err := schedule.ToMinutes(slot.StartTime)
		if err != nil {
			return "Invalid start time: " + slot.StartTime
		}
		end, err := schedule.ToMinutes(slot.EndTime)
		if err != nil {
			return "Invalid end time: " + slot.EndTime
		}
		if start >= end {
			return "Slot start time must be before its end time"
		}
	}
	return ""
}

// CreateAvailability godoc
// @Summary Publish a weekly availability
// @Tags availabilities
// @Accept json
// @Produce json
// @Param availability body AvailabilityInput true "Availability"
// @Success 201 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /availabilities [post]
// @Security Bearer
func (c *AvailabilityController) CreateAvailability(ctx *gin.Context) {
	playerID, err := middleware.GetPlayerIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, "")
		return
	}

	var input AvailabilityInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "fields": validator.ParseError(err)})
		return
	}
	if msg := validateInput(&input); msg != "" {
		responses.BadRequest(ctx, msg)
		return
	}

	now := time.Now()
	a := &Availability{
		PlayerID:     playerID,
		Sports:       models.StringSlice(input.Sports),
		LocationIDs:  models.UintSlice(input.LocationIDs),
		TimeSlots:    TimeSlots(input.TimeSlots),
		Visibility:   input.Visibility,
		DurationDays: input.DurationDays,
		Status:       StatusActive,
		ExpiresAt:    now.AddDate(0, 0, input.DurationDays),
		Notes:        input.Notes,
	}
	if a.Visibility == "" {
		a.Visibility = VisibilityPublic
	}

	if err := c.repo.Create(a); err != nil {
		responses.InternalServerError(ctx, "Failed to publish availability")
		return
	}
	responses.SendSuccess(ctx, http.StatusCreated, "Availability published", a)
}

// MyAvailabilities godoc
// @Summary List the caller's availabilities
// @Tags availabilities
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Router /availabilities/mine [get]
// @Security Bearer
func (c *AvailabilityController) MyAvailabilities(ctx *gin.Context) {
	playerID, err := middleware.GetPlayerIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, "")
		return
	}

	list, err := c.repo.GetByPlayer(playerID)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}

	// Expiry is lazy: flag overdue rows on read instead of on a clock.
	now := time.Now()
	for i := range list {
		if list[i].Status == StatusActive && list[i].IsExpired(now) {
			list[i].Status = StatusExpired
		}
	}
	responses.SendSuccess(ctx, http.StatusOK, "", list)
}

// UpdateAvailability godoc
// @Summary Edit an availability
// @Tags availabilities
// @Accept json
// @Produce json
// @Param id path int true "Availability ID"
// @Param availability body AvailabilityInput true "Availability"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse
// @Router /availabilities/{id} [put]
// @Security Bearer
func (c *AvailabilityController) UpdateAvailability(ctx *gin.Context) {
	a, ok := c.ownedAvailability(ctx)
	if !ok {
		return
	}

	var input AvailabilityInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "fields": validator.ParseError(err)})
		return
	}
	if msg := validateInput(&input); msg != "" {
		responses.BadRequest(ctx, msg)
		return
	}

	a.Sports = models.StringSlice(input.Sports)
	a.LocationIDs = models.UintSlice(input.LocationIDs)
	a.TimeSlots = TimeSlots(input.TimeSlots)
	a.DurationDays = input.DurationDays
	a.Notes = input.Notes
	if input.Visibility != "" {
		a.Visibility = input.Visibility
	}

	if err := c.repo.Update(a); err != nil {
		responses.InternalServerError(ctx, "Failed to update availability")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Availability updated", a)
}

// RepublishAvailability godoc
// @Summary Republish an expired or active availability with a fresh window
// @Tags availabilities
// @Produce json
// @Param id path int true "Availability ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /availabilities/{id}/republish [post]
// @Security Bearer
func (c *AvailabilityController) RepublishAvailability(ctx *gin.Context) {
	a, ok := c.ownedAvailability(ctx)
	if !ok {
		return
	}
	if a.Status == StatusDeleted {
		responses.BadRequest(ctx, "A deleted availability cannot be republished")
		return
	}

	a.Republish(time.Now())
	if err := c.repo.Update(a); err != nil {
		responses.InternalServerError(ctx, "Failed to republish availability")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Availability republished", a)
}

// DeleteAvailability godoc
// @Summary Remove an availability from the board
// @Tags availabilities
// @Param id path int true "Availability ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /availabilities/{id} [delete]
// @Security Bearer
func (c *AvailabilityController) DeleteAvailability(ctx *gin.Context) {
	a, ok := c.ownedAvailability(ctx)
	if !ok {
		return
	}
	if err := c.repo.MarkDeleted(a.ID); err != nil {
		responses.InternalServerError(ctx, "Failed to delete availability")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Availability deleted", nil)
}

// ownedAvailability loads the path availability and enforces ownership.
// It writes the error response itself when the second return is false.
func (c *AvailabilityController) ownedAvailability(ctx *gin.Context) (*Availability, bool) {
	playerID, err := middleware.GetPlayerIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, "")
		return nil, false
	}
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "Invalid availability id")
		return nil, false
	}
	a, err := c.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(ctx, "")
		return nil, false
	}
	if a == nil {
		responses.NotFound(ctx, "Availability")
		return nil, false
	}
	if a.PlayerID != playerID {
		responses.Forbidden(ctx, "Only the owner can modify this availability")
		return nil, false
	}
	return a, true
}
