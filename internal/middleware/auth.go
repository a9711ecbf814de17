package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jogajunto/backend/pkg/token"
	"gorm.io/gorm"
)

const (
	AuthPlayerIDKey = "auth_player_id"
	AuthIsAdminKey  = "auth_is_admin"
)

// AuthMiddleware validates the bearer token and rejects blocked or deleted
// players before any handler runs.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		var exists bool
		if err := db.Table("players").
			Select("1").
			Where("id = ? AND blocked = false AND deleted_at IS NULL", claims.PlayerID).
			Scan(&exists).Error; err != nil || !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Player not found or blocked"})
			return
		}

		c.Set(AuthPlayerIDKey, claims.PlayerID)
		c.Set(AuthIsAdminKey, claims.IsAdmin)
		c.Next()
	}
}

// AdminOnly gates admin endpoints. Must run after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get(AuthIsAdminKey)
		if !exists || isAdmin != true {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// GetPlayerIDFromContext extracts the authenticated player id from the context.
func GetPlayerIDFromContext(c *gin.Context) (uint, error) {
	playerID, exists := c.Get(AuthPlayerIDKey)
	if !exists {
		return 0, errors.New("player ID not found in context")
	}
	id, ok := playerID.(uint)
	if !ok {
		return 0, fmt.Errorf("player ID has unexpected type: %T", playerID)
	}
	return id, nil
}
