package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, code string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.Int("status", status), zap.String("code", code), zap.String("path", c.FullPath()))
	c.JSON(status, ErrorResponse{Error: message, Code: code})
}

// AbortJSON is JSONError followed by aborting the handler chain.
func AbortJSON(c *gin.Context, status int, message string, code string) {
	JSONError(c, status, message, code)
	c.Abort()
}
