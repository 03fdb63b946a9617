package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/courtline/shuttlescore/config"
	"github.com/courtline/shuttlescore/internal/auth"
	"github.com/courtline/shuttlescore/internal/match"
	"github.com/courtline/shuttlescore/internal/player"
	"github.com/courtline/shuttlescore/internal/setting"
	"github.com/courtline/shuttlescore/internal/stats"
)

// SetupRoutes assembles the gin engine with all API routes.
func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	auth.AuthRoutes(api, appConfig)
	match.MatchRoutes(api, db, appConfig)
	player.PlayerRoutes(api, db, appConfig)
	setting.SettingRoutes(api, db, appConfig)
	stats.StatsRoutes(api, db)

	return r
}
