package stats

import (
	"net/http"

	"github.com/courtline/shuttlescore/pkg/responses"
	"github.com/gin-gonic/gin"
)

// StatsController handles statistics HTTP requests
type StatsController struct {
	repo StatsRepository
}

// NewStatsController creates a new stats controller
func NewStatsController(repo StatsRepository) *StatsController {
	return &StatsController{repo: repo}
}

// GetDashboardStats returns the operator dashboard counters.
func (sc *StatsController) GetDashboardStats(c *gin.Context) {
	stats, err := sc.repo.GetDashboardStats()
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch dashboard stats: "+err.Error())
		return
	}
	responses.SuccessResponse(c, http.StatusOK, stats)
}

// GetMatchStats returns completed-match aggregates for an optional date range.
func (sc *StatsController) GetMatchStats(c *gin.Context) {
	stats, err := sc.repo.GetMatchStats(c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch match stats: "+err.Error())
		return
	}
	responses.SuccessResponse(c, http.StatusOK, stats)
}
