package auth

import (
	"context"
	"log"
	"net/http"
	"strings"

	"houdeapp/dto"
	"houdeapp/model"
	"houdeapp/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func Login(c *gin.Context, firestoreClient *firestore.Client) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))

	ctx := context.Background()
	docSnap, err := services.GetUserData(ctx, firestoreClient, email)
	if err != nil {
		if err == services.ErrUserNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		log.Printf("Login error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	var user model.User
	if err := docSnap.DataTo(&user); err != nil {
		log.Printf("Login error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	// Early accounts stored the hash under "password" instead of
	// "passwordhash".
	hash := user.PasswordHash
	if hash == "" {
		hash = user.Password
	}
	if hash == "" {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Account password is missing. Re-register or reset password.",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(request.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	token, err := services.CreateSessionToken(user.UserID)
	if err != nil {
		log.Printf("Login error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	services.SetSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"message": "User logged in successfully",
		"user":    user.Sanitized(),
	})
}
