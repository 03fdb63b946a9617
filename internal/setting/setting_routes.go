package setting

import (
	"github.com/courtline/shuttlescore/config"
	mw "github.com/courtline/shuttlescore/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SettingRoutes sets up the settings routes.
func SettingRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewGormSettingRepository(db)
	controller := NewSettingController(repo)

	settings := router.Group("/settings")
	{
		settings.GET("", controller.GetSettings)
	}

	protected := router.Group("/settings")
	protected.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		protected.PUT("", controller.UpdateSettings)
	}
}
