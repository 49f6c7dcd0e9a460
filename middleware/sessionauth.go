package middleware

import (
	"net/http"

	"houdeapp/services"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware authenticates requests from the httpOnly session cookie.
// On success the user id from the token is stored in the gin context.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(services.SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		userID, err := services.VerifySessionToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set("userId", userID)
		c.Next()
	}
}
