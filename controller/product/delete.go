package product

import (
	"context"
	"log"
	"net/http"
	"strings"

	"houdeapp/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
)

// DeleteProductImage pulls a single image URL from an owned product. The
// removal only happens when the URL is actually present, otherwise the array
// is left untouched and a 404 is returned.
func DeleteProductImage(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	id := c.Param("id")

	url := strings.TrimSpace(c.Query("url"))
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing image url"})
		return
	}

	ctx := context.Background()
	product, err := services.RemoveProductImage(ctx, firestoreClient, userId, id, url)
	if err != nil {
		switch err {
		case services.ErrProductNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		case services.ErrImageNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "Image url not found in this product"})
		default:
			log.Printf("Delete image error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

func DeleteProduct(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	id := c.Param("id")

	ctx := context.Background()
	if err := services.DeleteProduct(ctx, firestoreClient, userId, id); err != nil {
		if err == services.ErrProductNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		log.Printf("Delete product error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}
