package product

import (
	"context"
	"errors"
	"log"
	"net/http"

	"houdeapp/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
)

// UploadProducts accepts a category label plus 1-10 image files, stores the
// files on the media host and appends the resulting URLs to the caller's
// category document. Validation runs before any byte leaves the server;
// the 10-image cap is enforced again inside the database transaction.
func UploadProducts(c *gin.Context, firestoreClient *firestore.Client, uploader *services.MediaUploader) {
	userId := c.MustGet("userId").(string)

	category, ok := services.ResolveCategory(c.PostForm("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":           "Invalid category",
			"allowedCategories": services.PresetCategories,
		})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid multipart form"})
		return
	}
	files := form.File["images"]

	if len(files) < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "At least 1 image required"})
		return
	}
	if len(files) > services.MaxImagesPerCategory {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Max 10 images per upload"})
		return
	}

	ctx := context.Background()

	// Friendly pre-check so nothing is uploaded when the cap is already
	// blown. Not authoritative: the transaction below re-checks.
	existingCount, err := services.CountProductImages(ctx, firestoreClient, userId, category)
	if err != nil {
		log.Printf("Upload error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if existingCount+len(files) > services.MaxImagesPerCategory {
		capErr := &services.CategoryCapError{Existing: existingCount}
		c.JSON(http.StatusBadRequest, gin.H{"message": capErr.Error()})
		return
	}

	folder := "products/" + services.SlugifyFolderName(category)
	imageUrls, err := uploader.UploadFiles(ctx, folder, files)
	if err != nil {
		log.Printf("Upload error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload images"})
		return
	}

	product, err := services.AppendProductImages(ctx, firestoreClient, userId, category, imageUrls)
	if err != nil {
		var capErr *services.CategoryCapError
		if errors.As(err, &capErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": capErr.Error()})
			return
		}
		log.Printf("Upload error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}
