package auth

import (
	"net/http"

	"houdeapp/services"

	"github.com/gin-gonic/gin"
)

// Logout clears the session cookie. The token is not checked for validity
// first: an expired or garbled token still gets cleared. There is no
// server-side session store, so an exfiltrated token stays usable until its
// natural expiry.
func Logout(c *gin.Context) {
	token, err := c.Cookie(services.SessionCookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	services.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// LogoutAlways clears the cookie unconditionally, handy for plain links.
func LogoutAlways(c *gin.Context) {
	services.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
