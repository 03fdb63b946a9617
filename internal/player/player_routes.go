package player

import (
	"github.com/courtline/shuttlescore/config"
	mw "github.com/courtline/shuttlescore/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PlayerRoutes sets up the player roster routes.
func PlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewGormPlayerRepository(db)
	controller := NewPlayerController(repo)

	players := router.Group("/players")
	{
		players.GET("", controller.GetPlayers)
	}

	protected := router.Group("/players")
	protected.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		protected.POST("", controller.CreatePlayer)
		protected.PUT("/:id", controller.UpdatePlayer)
		protected.DELETE("/:id", controller.DeletePlayer)
	}
}
