package middleware

import (
	"net/http"
	"strings"

	"NestEgg/internal/domain/user"

	"github.com/gin-gonic/gin"
)

const ContextUserID = "user_id"

// AuthMiddleware gates private routes. It verifies the bearer token and then
// re-resolves the user against the store, so a token for a deleted account
// stops working immediately.
func AuthMiddleware(jwtSvc *JwtService, userSvc *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		userID, err := jwtSvc.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if _, err := userSvc.GetByID(c.Request.Context(), userID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextUserID, userID.String())
		c.Next()
	}
}
