package auth

import (
	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
)

func AuthController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("/api/auth")
	{
		routes.POST("/register", func(c *gin.Context) {
			Register(c, firestoreClient)
		})
		routes.POST("/login", func(c *gin.Context) {
			Login(c, firestoreClient)
		})
		routes.POST("/logout", func(c *gin.Context) {
			Logout(c)
		})
		routes.GET("/logout", func(c *gin.Context) {
			LogoutAlways(c)
		})
		routes.GET("/me", func(c *gin.Context) {
			Me(c, firestoreClient)
		})
	}
}
