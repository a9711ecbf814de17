package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jogajunto/backend/config"
	"github.com/jogajunto/backend/internal/player"
	"github.com/jogajunto/backend/pkg/responses"
	"github.com/jogajunto/backend/pkg/token"
	"github.com/jogajunto/backend/pkg/validator"
	"github.com/jogajunto/backend/utils"
)

// AuthController handles registration and session HTTP requests.
type AuthController struct {
	repo player.PlayerRepository
	cfg  *config.Config
}

// NewAuthController creates a new auth controller.
func NewAuthController(repo player.PlayerRepository, cfg *config.Config) *AuthController {
	return &AuthController{repo: repo, cfg: cfg}
}

// Register godoc
// @Summary Create a player account
// @Tags auth
// @Accept json
// @Produce json
// @Param account body RegisterInput true "Account"
// @Success 201 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var input RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "fields": validator.ParseError(err)})
		return
	}

	existing, err := c.repo.GetByEmail(input.Email)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	if existing != nil {
		responses.BadRequest(ctx, "Email already in use")
		return
	}
	existing, err = c.repo.GetByPhone(input.Phone)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	if existing != nil {
		responses.BadRequest(ctx, "Phone already in use")
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}

	p := &player.Player{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: hashed,
		Gender:   input.Gender,
	}
	if err := c.repo.Create(p); err != nil {
		responses.InternalServerError(ctx, "Failed to create account")
		return
	}
	responses.SendSuccess(ctx, http.StatusCreated, "Account created", p)
}

// Login godoc
// @Summary Authenticate and receive a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginInput true "Credentials"
// @Success 200 {object} responses.SuccessResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var input LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "fields": validator.ParseError(err)})
		return
	}

	p, err := c.repo.GetByEmail(input.Email)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	if p == nil || !utils.CheckPassword(p.Password, input.Password) {
		responses.Unauthorized(ctx, "Invalid email or password")
		return
	}
	if p.Blocked {
		responses.Forbidden(ctx, "This account has been blocked")
		return
	}

	pair, err := c.issueTokens(p)
	if err != nil {
		responses.InternalServerError(ctx, "Failed to issue tokens")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Logged in", pair)
}

// Refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body RefreshInput true "Refresh token"
// @Success 200 {object} responses.SuccessResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var input RefreshInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "fields": validator.ParseError(err)})
		return
	}

	stored, err := c.repo.GetRefreshToken(input.RefreshToken)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	if stored == nil {
		responses.Unauthorized(ctx, "Invalid or expired refresh token")
		return
	}

	p, err := c.repo.GetByID(stored.PlayerID)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	if p == nil || p.Blocked {
		responses.Unauthorized(ctx, "Invalid or expired refresh token")
		return
	}

	// Rotate: the old refresh token is revoked before a new pair is issued.
	if err := c.repo.RevokeRefreshToken(input.RefreshToken); err != nil {
		responses.InternalServerError(ctx, "")
		return
	}

	pair, err := c.issueTokens(p)
	if err != nil {
		responses.InternalServerError(ctx, "Failed to issue tokens")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Tokens refreshed", pair)
}

func (c *AuthController) issueTokens(p *player.Player) (*TokenPair, error) {
	access, err := token.GenerateJWT(p.ID, p.IsAdmin, c.cfg.JWT.AccessTokenSecret, c.cfg.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return nil, err
	}

	refresh, err := randomToken()
	if err != nil {
		return nil, err
	}
	expiry := time.Now().AddDate(0, 0, c.cfg.JWT.RefreshTokenExpiryDays)
	if err := c.repo.SaveRefreshToken(&player.RefreshToken{
		PlayerID:  p.ID,
		Token:     refresh,
		ExpiresAt: expiry,
	}); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// randomToken returns an opaque 256-bit token. Refresh tokens are DB-backed
// rather than signed so they can be revoked individually.
func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
