package product

import (
	"houdeapp/middleware"
	"houdeapp/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
)

func ProductController(router *gin.Engine, firestoreClient *firestore.Client, uploader *services.MediaUploader) {
	routes := router.Group("/api/products", middleware.SessionMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			ListProducts(c, firestoreClient)
		})
		routes.POST("", func(c *gin.Context) {
			UploadProducts(c, firestoreClient, uploader)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteProduct(c, firestoreClient)
		})
		routes.DELETE("/:id/images", func(c *gin.Context) {
			DeleteProductImage(c, firestoreClient)
		})
	}

	// Unauthenticated gallery endpoints
	router.GET("/api/products/public", func(c *gin.Context) {
		PublicProducts(c, firestoreClient)
	})
	router.GET("/api/products/all", func(c *gin.Context) {
		AllProducts(c, firestoreClient)
	})
}
