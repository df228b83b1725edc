package middleware

import (
	"net/http"

	"vetbuddy/models"
	"vetbuddy/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthOwnerMiddleware accepts any valid token issued to a pet owner and exposes the
// owner's ID as "ownerID".
func JWTAuthOwnerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			utils.AbortJSON(c, http.StatusUnauthorized, "Missing or invalid Authorization header", "unauthorized")
			return
		}

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil {
			utils.AbortJSON(c, http.StatusUnauthorized, "Invalid token", "unauthorized")
			return
		}
		if claims.Role != models.RoleOwner {
			utils.AbortJSON(c, http.StatusForbidden, "Owner access required", "forbidden")
			return
		}

		c.Set("ownerID", claims.Subject)
		c.Next()
	}
}
