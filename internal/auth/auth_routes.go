package auth

import (
	"github.com/courtline/shuttlescore/config"
	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the operator authentication routes.
func AuthRoutes(router *gin.RouterGroup, appConfig *config.Config) {
	controller := NewAuthController(appConfig)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", controller.Login)
		authGroup.GET("/check", controller.Check)
		authGroup.POST("/logout", controller.Logout)
	}
}
