package services

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"houdeapp/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	SessionCookieName = "auth_token"
	SessionMaxAge     = 7 * 24 * time.Hour
)

func CreateSessionToken(userID string) (string, error) {
	hmacSampleSecret := []byte(os.Getenv("JWT_SECRET_KEY"))
	claims := &model.SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "houde-handbag",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionMaxAge)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(hmacSampleSecret)
}

// VerifySessionToken checks signature and expiry and returns the embedded
// user id.
func VerifySessionToken(tokenString string) (string, error) {
	claims := &model.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET_KEY")), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.UserID == "" {
		return "", fmt.Errorf("invalid token claims")
	}
	return claims.UserID, nil
}

func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(SessionMaxAge.Seconds()), "/", "", secureCookies(), true)
}

// ClearSessionCookie expires the cookie regardless of whether the current
// token still verifies.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secureCookies(), true)
}

// secureCookies follows the effective gin mode, which main sets
// programmatically, rather than the GIN_MODE env var alone.
func secureCookies() bool {
	return gin.Mode() == gin.ReleaseMode
}
