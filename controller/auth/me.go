package auth

import (
	"context"
	"net/http"

	"houdeapp/model"
	"houdeapp/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
)

// Me resolves the current session to a sanitized user. Any failure along the
// way (no cookie, bad signature, expired, user deleted) reads as
// unauthenticated.
func Me(c *gin.Context, firestoreClient *firestore.Client) {
	token, err := c.Cookie(services.SessionCookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"user": nil})
		return
	}

	userID, err := services.VerifySessionToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"user": nil})
		return
	}

	ctx := context.Background()
	docSnap, err := services.GetUserDataByUserid(ctx, firestoreClient, userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"user": nil})
		return
	}

	var user model.User
	if err := docSnap.DataTo(&user); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"user": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Sanitized()})
}
