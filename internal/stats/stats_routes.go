package stats

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StatsRoutes sets up the read-only statistics routes.
func StatsRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewGormStatsRepository(db)
	controller := NewStatsController(repo)

	statsGroup := router.Group("/stats")
	{
		statsGroup.GET("/dashboard", controller.GetDashboardStats)
		statsGroup.GET("/matches", controller.GetMatchStats)
	}
}
