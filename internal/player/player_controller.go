package player

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jogajunto/backend/internal/middleware"
	"github.com/jogajunto/backend/internal/models"
	"github.com/jogajunto/backend/internal/sport"
	"github.com/jogajunto/backend/pkg/responses"
	"github.com/jogajunto/backend/pkg/validator"
)

// PlayerController handles player profile HTTP requests.
type PlayerController struct {
	repo PlayerRepository
}

// NewPlayerController creates a new player controller.
func NewPlayerController(repo PlayerRepository) *PlayerController {
	return &PlayerController{repo: repo}
}

// UpdateProfileInput is the payload for editing the caller's own profile.
// Email and password are not editable here; password changes go through auth.
type UpdateProfileInput struct {
	Name                string   `json:"name" binding:"required,min=2,max=100"`
	Phone               string   `json:"phone" binding:"required,min=8,max=20"`
	Gender              Gender   `json:"gender" binding:"required,oneof=male female"`
	Avatar              string   `json:"avatar,omitempty" binding:"max=500"`
	PadelCategory       *string  `json:"padel_category,omitempty"`
	BeachTennisCategory *string  `json:"beach_tennis_category,omitempty"`
	TennisCategory      *string  `json:"tennis_category,omitempty"`
	PreferredSports     []string `json:"preferred_sports,omitempty"`
}

// publicProfile strips fields other players have no business seeing.
type publicProfile struct {
	ID                  uint     `json:"id"`
	Name                string   `json:"name"`
	Gender              Gender   `json:"gender"`
	Avatar              string   `json:"avatar,omitempty"`
	PadelCategory       *string  `json:"padel_category,omitempty"`
	BeachTennisCategory *string  `json:"beach_tennis_category,omitempty"`
	TennisCategory      *string  `json:"tennis_category,omitempty"`
	PreferredSports     []string `json:"preferred_sports"`
}

// Me godoc
// @Summary Get the authenticated player's profile
// @Tags players
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /players/me [get]
// @Security Bearer
func (c *PlayerController) Me(ctx *gin.Context) {
	playerID, err := middleware.GetPlayerIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, "")
		return
	}
	p, err := c.repo.GetByID(playerID)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	if p == nil {
		responses.NotFound(ctx, "Player")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "", p)
}

// UpdateMe godoc
// @Summary Update the authenticated player's profile
// @Tags players
// @Accept json
// @Produce json
// @Param profile body UpdateProfileInput true "Profile"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /players/me [put]
// @Security Bearer
func (c *PlayerController) UpdateMe(ctx *gin.Context) {
	playerID, err := middleware.GetPlayerIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, "")
		return
	}

	var input UpdateProfileInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "fields": validator.ParseError(err)})
		return
	}
	if msg := validateProfileInput(&input); msg != "" {
		responses.BadRequest(ctx, msg)
		return
	}

	p, err := c.repo.GetByID(playerID)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	if p == nil {
		responses.NotFound(ctx, "Player")
		return
	}

	if p.Phone != input.Phone {
		existing, err := c.repo.GetByPhone(input.Phone)
		if err != nil {
			responses.InternalServerError(ctx, "")
			return
		}
		if existing != nil && existing.ID != p.ID {
			responses.BadRequest(ctx, "Phone already in use")
			return
		}
	}

	p.Name = input.Name
	p.Phone = input.Phone
	p.Gender = input.Gender
	p.Avatar = input.Avatar
	p.PadelCategory = input.PadelCategory
	p.BeachTennisCategory = input.BeachTennisCategory
	p.TennisCategory = input.TennisCategory
	p.PreferredSports = models.StringSlice(input.PreferredSports)

	if err := c.repo.Update(p); err != nil {
		responses.InternalServerError(ctx, "Failed to update profile")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Profile updated", p)
}

func validateProfileInput(input *UpdateProfileInput) string {
	for _, tag := range input.PreferredSports {
		if !sport.IsValid(tag) {
			return "Unknown sport: " + tag
		}
	}
	if input.PadelCategory != nil && !sport.IsValidCategory(sport.Padel, *input.PadelCategory) {
		return "Unknown padel category: " + *input.PadelCategory
	}
	if input.BeachTennisCategory != nil && !sport.IsValidCategory(sport.BeachTennis, *input.BeachTennisCategory) {
		return "Unknown beach tennis category: " + *input.BeachTennisCategory
	}
	return ""
}

// GetPlayer godoc
// @Summary Get a player's public profile
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{id} [get]
// @Security Bearer
func (c *PlayerController) GetPlayer(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "Invalid player id")
		return
	}
	p, err := c.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	if p == nil || p.Blocked {
		responses.NotFound(ctx, "Player")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "", publicProfile{
		ID:                  p.ID,
		Name:                p.Name,
		Gender:              p.Gender,
		Avatar:              p.Avatar,
		PadelCategory:       p.PadelCategory,
		BeachTennisCategory: p.BeachTennisCategory,
		TennisCategory:      p.TennisCategory,
		PreferredSports:     p.PreferredSports,
	})
}

// ListPlayers godoc
// @Summary List players (admin)
// @Tags players
// @Produce json
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} responses.PaginatedResponse
// @Router /admin/players [get]
// @Security Bearer
func (c *PlayerController) ListPlayers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	players, total, err := c.repo.List(page, pageSize)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	responses.SendPaginated(ctx, http.StatusOK, "", players, total, page, pageSize)
}

// BlockInput is the payload for moderating a player.
type BlockInput struct {
	Blocked bool `json:"blocked"`
}

// BlockPlayer godoc
// @Summary Block or unblock a player (admin)
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param block body BlockInput true "Block flag"
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/players/{id}/block [put]
// @Security Bearer
func (c *PlayerController) BlockPlayer(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "Invalid player id")
		return
	}
	p, err := c.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	if p == nil {
		responses.NotFound(ctx, "Player")
		return
	}

	var input BlockInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "fields": validator.ParseError(err)})
		return
	}

	if err := c.repo.SetBlocked(uint(id), input.Blocked); err != nil {
		responses.InternalServerError(ctx, "Failed to update player")
		return
	}
	msg := "Player unblocked"
	if input.Blocked {
		msg = "Player blocked"
	}
	responses.SendSuccess(ctx, http.StatusOK, msg, nil)
}
