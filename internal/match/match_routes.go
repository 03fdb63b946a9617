package match

import (
	"github.com/courtline/shuttlescore/config"
	mw "github.com/courtline/shuttlescore/internal/middleware"
	"github.com/courtline/shuttlescore/internal/setting"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MatchRoutes sets up all match-related routes. Reads are public; every
// mutating route requires an operator token.
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	matchRepo := NewGormMatchRepository(db)
	settingRepo := setting.NewGormSettingRepository(db)
	matchService := NewMatchService(matchRepo)
	matchController := NewMatchController(matchService, settingRepo)

	matches := router.Group("/matches")
	{
		matches.GET("", matchController.GetMatches)
		matches.GET("/:id", matchController.GetMatchByID)
		matches.GET("/:id/export", matchController.ExportMatch)
	}

	protected := router.Group("/matches")
	protected.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		protected.POST("", matchController.CreateMatch)
		protected.PUT("/:id", matchController.UpdateMatch)
		protected.DELETE("/:id", matchController.DeleteMatch)

		// Lifecycle and scoring
		protected.POST("/:id/start", matchController.StartMatch)
		protected.POST("/:id/end", matchController.EndMatch)
		protected.PUT("/:id/score", matchController.UpdateScore)
		protected.POST("/:id/next-set", matchController.NextSet)
	}
}
