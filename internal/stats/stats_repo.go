package stats

import (
	"fmt"
	"time"

	"github.com/courtline/shuttlescore/internal/match"
	"gorm.io/gorm"
)

// DashboardStats is the at-a-glance summary for the operator dashboard.
type DashboardStats struct {
	LiveMatches    int64  `json:"live_matches"`
	CompletedToday int64  `json:"completed_today"`
	ActiveCourts   int64  `json:"active_courts"`
	AvgDuration    string `json:"avg_duration"`
}

// MatchStats aggregates completed matches over an optional date range.
type MatchStats struct {
	TotalMatches        int64            `json:"total_matches"`
	TotalShuttles       int64            `json:"total_shuttles"`
	EventDistribution   map[string]int64 `json:"event_distribution"`
	AvgShuttlesPerMatch float64          `json:"avg_shuttles_per_match"`
}

// StatsRepository defines the aggregation queries behind the stats routes.
type StatsRepository interface {
	GetDashboardStats() (*DashboardStats, error)
	GetMatchStats(dateFrom, dateTo string) (*MatchStats, error)
}

// GormStatsRepository implements StatsRepository using GORM
type GormStatsRepository struct {
	db *gorm.DB
}

// NewGormStatsRepository creates a new GormStatsRepository
func NewGormStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

// GetDashboardStats computes the dashboard counters.
func (r *GormStatsRepository) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{AvgDuration: "N/A"}

	err := r.db.Model(&match.Match{}).
		Where("status = ?", match.StatusLive).
		Count(&stats.LiveMatches).Error
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	err = r.db.Model(&match.Match{}).
		Where("status = ? AND date = ?", match.StatusCompleted, today).
		Count(&stats.CompletedToday).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&match.Match{}).
		Where("status = ?", match.StatusLive).
		Distinct("court").
		Count(&stats.ActiveCourts).Error
	if err != nil {
		return nil, err
	}

	// Durations are stored as display strings ("1h 23m"); parse them in Go
	// rather than leaning on engine-specific string functions in SQL.
	var durations []string
	err = r.db.Model(&match.Match{}).
		Where("status = ? AND duration <> ''", match.StatusCompleted).
		Pluck("duration", &durations).Error
	if err != nil {
		return nil, err
	}

	totalMinutes, counted := 0, 0
	for _, d := range durations {
		if minutes, ok := parseDurationMinutes(d); ok {
			totalMinutes += minutes
			counted++
		}
	}
	if counted > 0 {
		stats.AvgDuration = fmt.Sprintf("%dm", totalMinutes/counted)
	}

	return stats, nil
}

// GetMatchStats aggregates completed matches, optionally bounded by date.
func (r *GormStatsRepository) GetMatchStats(dateFrom, dateTo string) (*MatchStats, error) {
	base := r.db.Model(&match.Match{}).Where("status = ?", match.StatusCompleted)
	if dateFrom != "" {
		base = base.Where("date >= ?", dateFrom)
	}
	if dateTo != "" {
		base = base.Where("date <= ?", dateTo)
	}

	stats := &MatchStats{EventDistribution: make(map[string]int64)}

	if err := base.Session(&gorm.Session{}).Count(&stats.TotalMatches).Error; err != nil {
		return nil, err
	}

	err := base.Session(&gorm.Session{}).
		Select("COALESCE(SUM(shuttles_used), 0)").
		Scan(&stats.TotalShuttles).Error
	if err != nil {
		return nil, err
	}

	var rows []struct {
		EventType string
		Count     int64
	}
	err = base.Session(&gorm.Session{}).
		Select("event_type, COUNT(*) as count").
		Group("event_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.EventDistribution[row.EventType] = row.Count
	}

	if stats.TotalMatches > 0 {
		stats.AvgShuttlesPerMatch = float64(stats.TotalShuttles) / float64(stats.TotalMatches)
	}

	return stats, nil
}

// parseDurationMinutes converts a "XhYm" display string to minutes.
func parseDurationMinutes(s string) (int, bool) {
	var hours, minutes int
	if _, err := fmt.Sscanf(s, "%dh %dm", &hours, &minutes); err != nil {
		return 0, false
	}
	return hours*60 + minutes, true
}
