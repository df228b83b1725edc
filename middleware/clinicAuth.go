package middleware

import (
	"net/http"
	"strings"

	clinicRepo "vetbuddy/database/repository/clinic"
	"vetbuddy/models"
	"vetbuddy/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// JWTAuthClinicMiddleware validates a clinic bearer token. A token is accepted when its
// hash matches the one stored on the clinic profile; hits are cached in Redis with a
// sliding TTL. authCache may be nil, in which case every request goes to the repository.
func JWTAuthClinicMiddleware(clinics clinicRepo.ClinicRepository, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ctx := c.Request.Context()

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
		if claims.Role != models.RoleClinic {
			utils.AbortJSON(c, http.StatusForbidden, "Clinic access required", "forbidden")
			return
		}
		clinicID := claims.Subject

		computedHash := utils.HashToken(tokenString)
		if authCache != nil && utils.IsTokenCached(ctx, authCache, computedHash) {
			c.Set("clinicID", clinicID)
			c.Next()
			return
		}

		clinic, err := clinics.GetByIDWithProjection(ctx, clinicID, bson.M{"id": 1, "role": 1, "token_hash": 1})
		if err != nil || clinic == nil {
			logger.Warn("Clinic not found when validating token", zap.String("clinicID", clinicID), zap.Error(err))
			utils.AbortJSON(c, http.StatusUnauthorized, "Clinic not found", "unauthorized")
			return
		}
		if computedHash != clinic.TokenHash {
			logger.Warn("Token hash mismatch", zap.String("clinicID", clinicID))
			utils.AbortJSON(c, http.StatusUnauthorized, "Token mismatch", "unauthorized")
			return
		}

		if authCache != nil {
			utils.CacheToken(ctx, authCache, computedHash)
		}

		c.Set("clinicID", clinicID)
		c.Next()
	}
}
