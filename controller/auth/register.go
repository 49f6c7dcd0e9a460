package auth

import (
	"context"
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"houdeapp/dto"
	"houdeapp/model"
	"houdeapp/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func Register(c *gin.Context, firestoreClient *firestore.Client) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))
	if err := isValidEmail(email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
		return
	}

	docid := uuid.New().String()

	newUser := model.User{
		UserID:       docid,
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
	}

	ctx := context.Background()
	if err := services.CreateUser(ctx, firestoreClient, newUser); err != nil {
		if err == services.ErrEmailTaken {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email is already registered"})
			return
		}
		log.Printf("Register error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    newUser.Sanitized(),
	})
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}
	return nil
}
