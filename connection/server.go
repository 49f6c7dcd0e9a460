package connection

import (
	"log"
	"os"

	authcontroller "houdeapp/controller/auth"
	contactcontroller "houdeapp/controller/contact"
	productcontroller "houdeapp/controller/product"
	projectcontroller "houdeapp/controller/project"
	timelinecontroller "houdeapp/controller/timeline"
	"houdeapp/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	router := gin.Default()

	fb, err := FBConnection()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}

	uploader, err := services.NewMediaUploader()
	if err != nil {
		log.Fatalf("Failed to initialize media uploader: %v", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(config))

	authcontroller.AuthController(router, fb)
	productcontroller.ProductController(router, fb, uploader)
	projectcontroller.ProjectController(router, fb)
	timelinecontroller.TimelineController(router, fb)
	contactcontroller.ContactController(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
