package middleware

import (
	"net/http"
	"strings"

	userRepo "ongkit/database/repository/user"
	"ongkit/models"
	"ongkit/utils"

	"github.com/gin-gonic/gin"
)

// OrgContextKey is the gin context key under which the resolved org context
// is stored.
const OrgContextKey = "orgContext"

// AuthMiddleware validates the Bearer token and resolves the acting user and
// organization. Tokens are single-session: only the hash stored on the user
// record is accepted, so revoking invalidates all outstanding copies.
func AuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		computedHash := utils.HashToken(tokenString)

		// Fast-path rejection for revoked sessions before touching Mongo.
		if cached := utils.GetSessionTokenHash(userID); cached != "" && cached != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		user, err := users.GetByTokenHash(computedHash)
		if err != nil || user.ID != userID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		c.Set(OrgContextKey, models.OrgContext{
			UserID: user.ID,
			OrgID:  user.OrgID,
			Role:   user.Role,
		})
		c.Next()
	}
}

// GetOrgContext returns the org context set by AuthMiddleware.
func GetOrgContext(c *gin.Context) (models.OrgContext, bool) {
	val, exists := c.Get(OrgContextKey)
	if !exists {
		return models.OrgContext{}, false
	}
	octx, ok := val.(models.OrgContext)
	return octx, ok
}

// RequireOrg aborts requests from accounts that have not created or joined
// an organization yet.
func RequireOrg() gin.HandlerFunc {
	return func(c *gin.Context) {
		octx, ok := GetOrgContext(c)
		if !ok || octx.OrgID == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "No organization for this account"})
			return
		}
		c.Next()
	}
}
