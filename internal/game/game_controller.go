package game

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jogajunto/backend/internal/middleware"
	"github.com/jogajunto/backend/internal/models"
	"github.com/jogajunto/backend/internal/notification"
	"github.com/jogajunto/backend/internal/player"
	"github.com/jogajunto/backend/internal/sport"
	"github.com/jogajunto/backend/pkg/responses"
	"github.com/jogajunto/backend/pkg/schedule"
	"github.com/jogajunto/backend/pkg/validator"
)

// GameController handles game proposal HTTP requests.
type GameController struct {
	repo             GameRepository
	playerRepo       player.PlayerRepository
	notificationRepo notification.NotificationRepository
}

// NewGameController creates a new game controller.
func NewGameController(repo GameRepository, playerRepo player.PlayerRepository, notificationRepo notification.NotificationRepository) *GameController {
	return &GameController{
		repo:             repo,
		playerRepo:       playerRepo,
		notificationRepo: notificationRepo,
	}
}

// GameInput is the payload for proposing or editing a game.
type GameInput struct {
	Sport              string     `json:"sport" binding:"required"`
	Gender             GameGender `json:"gender" binding:"required,oneof=male female mixed"`
	RequiredCategories []string   `json:"required_categories,omitempty"`
	LocationIDs        []uint     `json:"locations" binding:"required,min=1"`
	Date               time.Time  `json:"date" binding:"required"`
	StartTime          string     `json:"start_time" binding:"required"`
	EndTime            string     `json:"end_time" binding:"required"`
	MaxPlayers         int        `json:"max_players" binding:"required,min=2,max=50"`
	Notes              string     `json:"notes,omitempty" binding:"max=1000"`
}

// JoinInput is the payload for joining a game.
type JoinInput struct {
	Message string `json:"message,omitempty" binding:"max=500"`
	// Temporary entries let the caller add a guest without an account.
	TempName string `json:"temp_name,omitempty" binding:"max=100"`
}

func validateGameInput(input *GameInput) string {
	if !sport.IsValid(input.Sport) {
		return "Unknown sport: " + input.Sport
	}
	for _, cat := range input.RequiredCategories {
		if !sport.IsValidCategory(sport.Sport(input.Sport), cat) {
			return fmt.Sprintf("Unknown %s category: %s", input.Sport, cat)
		}
	}
	start, err := schedule.ToMinutes(input.StartTime)
	if err != nil {
		return "Invalid start time: " + input.StartTime
	}
	end, err := schedule.ToMinutes(input.EndTime)
	if err != nil {
		return "Invalid end time: " + input.EndTime
	}
	if start >= end {
		return "Start time must be before end time"
	}
	return ""
}

// CreateGame godoc
// @Summary Propose a game
// @Tags games
// @Accept json
// @Produce json
// @Param game body GameInput true "Game"
// @Success 201 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /games [post]
// @Security Bearer
func (c *GameController) CreateGame(ctx *gin.Context) {
	playerID, err := middleware.GetPlayerIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, "")
		return
	}

	var input GameInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "fields": validator.ParseError(err)})
		return
	}
	if msg := validateGameInput(&input); msg != "" {
		responses.BadRequest(ctx, msg)
		return
	}

	g := &Game{
		CreatedByID:        playerID,
		Sport:              input.Sport,
		Gender:             input.Gender,
		RequiredCategories: models.StringSlice(input.RequiredCategories),
		LocationIDs:        models.UintSlice(input.LocationIDs),
		Date:               input.Date,
		StartTime:          input.StartTime,
		EndTime:            input.EndTime,
		MaxPlayers:         input.MaxPlayers,
		Status:             StatusOpen,
		Notes:              input.Notes,
	}

	if err := c.repo.Create(g); err != nil {
		responses.InternalServerError(ctx, "Failed to create game")
		return
	}

	// The creator takes the first roster spot.
	entry := &GamePlayer{GameID: g.ID, PlayerID: &playerID}
	if err := c.repo.AddPlayer(entry); err != nil {
		log.Printf("game: failed to add creator %d to roster of game %d: %v", playerID, g.ID, err)
	}

	responses.SendSuccess(ctx, http.StatusCreated, "Game created", g)
}

// GetGame godoc
// @Summary Get a game with its roster
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /games/{id} [get]
func (c *GameController) GetGame(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "Invalid game id")
		return
	}
	g, err := c.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	if g == nil {
		responses.NotFound(ctx, "Game")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "", g)
}

// UpdateGame godoc
// @Summary Edit a game (creator only)
// @Tags games
// @Accept json
// @Produce json
// @Param id path int true "Game ID"
// @Param game body GameInput true "Game"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse
// @Router /games/{id} [put]
// @Security Bearer
func (c *GameController) UpdateGame(ctx *gin.Context) {
	g, ok := c.ownedGame(ctx)
	if !ok {
		return
	}

	var input GameInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "fields": validator.ParseError(err)})
		return
	}
	if msg := validateGameInput(&input); msg != "" {
		responses.BadRequest(ctx, msg)
		return
	}

	g.Sport = input.Sport
	g.Gender = input.Gender
	g.RequiredCategories = models.StringSlice(input.RequiredCategories)
	g.LocationIDs = models.UintSlice(input.LocationIDs)
	g.Date = input.Date
	g.StartTime = input.StartTime
	g.EndTime = input.EndTime
	g.MaxPlayers = input.MaxPlayers
	g.Notes = input.Notes

	if err := c.repo.Update(g); err != nil {
		responses.InternalServerError(ctx, "Failed to update game")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Game updated", g)
}

// JoinGame godoc
// @Summary Join a game or add a guest to its roster
// @Tags games
// @Accept json
// @Produce json
// @Param id path int true "Game ID"
// @Param join body JoinInput true "Join request"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /games/{id}/join [post]
// @Security Bearer
func (c *GameController) JoinGame(ctx *gin.Context) {
	playerID, err := middleware.GetPlayerIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, "")
		return
	}
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "Invalid game id")
		return
	}
	g, err := c.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	if g == nil {
		responses.NotFound(ctx, "Game")
		return
	}
	if g.Status == StatusCancelled || g.Status == StatusDeleted || g.Status == StatusExpired {
		responses.BadRequest(ctx, "This game is no longer open")
		return
	}

	var input JoinInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "fields": validator.ParseError(err)})
		return
	}

	var entry *GamePlayer
	if input.TempName != "" {
		// Guest entry vouched for by the caller; eligibility is not gated.
		entry = &GamePlayer{
			GameID:      g.ID,
			TempKey:     uuid.NewString(),
			Name:        input.TempName,
			JoinMessage: input.Message,
			IsTemporary: true,
		}
	} else {
		p, err := c.playerRepo.GetByID(playerID)
		if err != nil {
			responses.InternalServerError(ctx, "")
			return
		}
		if p == nil {
			responses.NotFound(ctx, "Player")
			return
		}

		check := CanJoin(g, p)
		if !check.IsValid {
			ctx.JSON(http.StatusBadRequest, check)
			return
		}

		existing, err := c.repo.GetRosterEntry(g.ID, playerID)
		if err != nil {
			responses.InternalServerError(ctx, "")
			return
		}
		if existing != nil {
			responses.BadRequest(ctx, "You already joined this game")
			return
		}

		entry = &GamePlayer{
			GameID:      g.ID,
			PlayerID:    &playerID,
			JoinMessage: input.Message,
		}
	}

	if err := c.repo.AddPlayer(entry); err != nil {
		responses.InternalServerError(ctx, "Failed to join game")
		return
	}

	// Capacity is a soft invariant: the join succeeds either way, the
	// status just flips to full once the roster reaches the cap.
	if count, err := c.repo.CountPlayers(g.ID); err == nil && count >= int64(g.MaxPlayers) && g.Status == StatusOpen {
		if err := c.repo.UpdateStatus(g.ID, StatusFull); err != nil {
			log.Printf("game: failed to mark game %d full: %v", g.ID, err)
		}
	}

	c.notifyCreator(g, entry)
	responses.SendSuccess(ctx, http.StatusOK, "Joined game", entry)
}

// notifyCreator records a roster alert for the game's creator. Failure is
// logged and abandoned; notifications are best-effort.
func (c *GameController) notifyCreator(g *Game, entry *GamePlayer) {
	name := entry.Name
	if !entry.IsTemporary && entry.PlayerID != nil {
		if g.CreatedByID == *entry.PlayerID {
			return
		}
		if p, err := c.playerRepo.GetByID(*entry.PlayerID); err == nil && p != nil {
			name = p.Name
		}
	}

	gameID := g.ID
	n := &notification.Notification{
		PlayerID: g.CreatedByID,
		Type:     notification.TypeGameInvite,
		Title:    "New player in your game",
		Message:  fmt.Sprintf("%s joined your %s game on %s", name, g.Sport, g.Date.Format("02/01/2006")),
		GameID:   &gameID,
	}
	if err := c.notificationRepo.Create(n); err != nil {
		log.Printf("game: failed to notify creator %d about game %d: %v", g.CreatedByID, g.ID, err)
	}
}

// LeaveGame godoc
// @Summary Leave a game's roster
// @Tags games
// @Param id path int true "Game ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /games/{id}/leave [post]
// @Security Bearer
func (c *GameController) LeaveGame(ctx *gin.Context) {
	playerID, err := middleware.GetPlayerIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, "")
		return
	}
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "Invalid game id")
		return
	}

	entry, err := c.repo.GetRosterEntry(uint(id), playerID)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	if entry == nil {
		responses.BadRequest(ctx, "You are not on this game's roster")
		return
	}

	if err := c.repo.RemovePlayer(uint(id), playerID); err != nil {
		responses.InternalServerError(ctx, "Failed to leave game")
		return
	}

	// Leaving a full game reopens it.
	if g, err := c.repo.GetByID(uint(id)); err == nil && g != nil && g.Status == StatusFull {
		if err := c.repo.UpdateStatus(g.ID, StatusOpen); err != nil {
			log.Printf("game: failed to reopen game %d: %v", g.ID, err)
		}
	}

	responses.SendSuccess(ctx, http.StatusOK, "Left game", nil)
}

// CompleteGame godoc
// @Summary Mark a game as full/complete (creator only)
// @Tags games
// @Param id path int true "Game ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /games/{id}/complete [post]
// @Security Bearer
func (c *GameController) CompleteGame(ctx *gin.Context) {
	g, ok := c.ownedGame(ctx)
	if !ok {
		return
	}
	if err := c.repo.UpdateStatus(g.ID, StatusFull); err != nil {
		responses.InternalServerError(ctx, "Failed to complete game")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Game marked as complete", nil)
}

// DeleteGame godoc
// @Summary Delete a game (creator only, soft)
// @Tags games
// @Param id path int true "Game ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /games/{id} [delete]
// @Security Bearer
func (c *GameController) DeleteGame(ctx *gin.Context) {
	g, ok := c.ownedGame(ctx)
	if !ok {
		return
	}
	if err := c.repo.UpdateStatus(g.ID, StatusDeleted); err != nil {
		responses.InternalServerError(ctx, "Failed to delete game")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Game deleted", nil)
}

// ownedGame loads the path game and enforces creator-only access. It
// writes the error response itself when the second return is false.
func (c *GameController) ownedGame(ctx *gin.Context) (*Game, bool) {
	playerID, err := middleware.GetPlayerIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, "")
		return nil, false
	}
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "Invalid game id")
		return nil, false
	}
	g, err := c.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(ctx, "")
		return nil, false
	}
	if g == nil {
		responses.NotFound(ctx, "Game")
		return nil, false
	}
	if g.CreatedByID != playerID {
		responses.Forbidden(ctx, "Only the creator can modify this game")
		return nil, false
	}
	return g, true
}
