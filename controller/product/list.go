package product

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	"houdeapp/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func ListProducts(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)

	ctx := context.Background()
	products, err := services.ListProducts(ctx, firestoreClient, userId)
	if err != nil {
		log.Printf("List products error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"categories": services.PresetCategories,
	})
}

// PublicProducts serves the unauthenticated gallery. An explicit ?userId=
// wins over the PUBLIC_OWNER_USER_ID env filter; with neither set every
// product in the store is returned.
func PublicProducts(c *gin.Context, firestoreClient *firestore.Client) {
	filter := strings.TrimSpace(c.Query("userId"))
	if filter != "" {
		if _, err := uuid.Parse(filter); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid userId"})
			return
		}
	} else if owner := os.Getenv("PUBLIC_OWNER_USER_ID"); owner != "" {
		if _, err := uuid.Parse(owner); err == nil {
			filter = owner
		}
	}

	ctx := context.Background()
	products, err := services.ListProducts(ctx, firestoreClient, filter)
	if err != nil {
		log.Printf("Public products error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"categories": services.PresetCategories,
	})
}

func AllProducts(c *gin.Context, firestoreClient *firestore.Client) {
	ctx := context.Background()
	products, err := services.ListProducts(ctx, firestoreClient, "")
	if err != nil {
		log.Printf("All products error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}
