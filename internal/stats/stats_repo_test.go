package stats

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/courtline/shuttlescore/internal/match"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&match.Match{}, &match.Score{}))
	return db
}

func seedMatch(t *testing.T, db *gorm.DB, m match.Match) {
	t.Helper()
	require.NoError(t, db.Create(&m).Error)
}

func TestGetDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStatsRepository(db)

	today := time.Now().Format("2006-01-02")

	seedMatch(t, db, match.Match{EventType: "Singles", Court: "1", Status: match.StatusLive, Date: today})
	seedMatch(t, db, match.Match{EventType: "Singles", Court: "2", Status: match.StatusLive, Date: today})
	seedMatch(t, db, match.Match{EventType: "Doubles", Court: "2", Status: match.StatusLive, Date: today})
	seedMatch(t, db, match.Match{EventType: "Singles", Court: "1", Status: match.StatusCompleted, Date: today, Duration: "1h 0m"})
	seedMatch(t, db, match.Match{EventType: "Singles", Court: "1", Status: match.StatusCompleted, Date: "2020-01-01", Duration: "0h 30m"})
	seedMatch(t, db, match.Match{EventType: "Singles", Court: "3", Status: match.StatusScheduled, Date: today})

	stats, err := repo.GetDashboardStats()
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.LiveMatches)
	assert.Equal(t, int64(1), stats.CompletedToday)
	assert.Equal(t, int64(2), stats.ActiveCourts, "courts 1 and 2 have live play")
	assert.Equal(t, "45m", stats.AvgDuration, "average of 60m and 30m")
}

func TestGetDashboardStatsEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStatsRepository(db)

	stats, err := repo.GetDashboardStats()
	require.NoError(t, err)

	assert.Zero(t, stats.LiveMatches)
	assert.Zero(t, stats.CompletedToday)
	assert.Zero(t, stats.ActiveCourts)
	assert.Equal(t, "N/A", stats.AvgDuration)
}

func TestGetMatchStats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStatsRepository(db)

	seedMatch(t, db, match.Match{EventType: "Singles", Status: match.StatusCompleted, Date: "2026-08-01", ShuttlesUsed: 4})
	seedMatch(t, db, match.Match{EventType: "Singles", Status: match.StatusCompleted, Date: "2026-08-15", ShuttlesUsed: 2})
	seedMatch(t, db, match.Match{EventType: "Doubles", Status: match.StatusCompleted, Date: "2026-08-20", ShuttlesUsed: 6})
	// Outside the range and not completed: both excluded.
	seedMatch(t, db, match.Match{EventType: "Singles", Status: match.StatusCompleted, Date: "2026-09-05", ShuttlesUsed: 10})
	seedMatch(t, db, match.Match{EventType: "Singles", Status: match.StatusLive, Date: "2026-08-10", ShuttlesUsed: 3})

	stats, err := repo.GetMatchStats("2026-08-01", "2026-08-31")
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalMatches)
	assert.Equal(t, int64(12), stats.TotalShuttles)
	assert.InDelta(t, 4.0, stats.AvgShuttlesPerMatch, 0.001)
	assert.Equal(t, int64(2), stats.EventDistribution["Singles"])
	assert.Equal(t, int64(1), stats.EventDistribution["Doubles"])
}

func TestGetMatchStatsEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStatsRepository(db)

	stats, err := repo.GetMatchStats("", "")
	require.NoError(t, err)

	assert.Zero(t, stats.TotalMatches)
	assert.Zero(t, stats.TotalShuttles)
	assert.Zero(t, stats.AvgShuttlesPerMatch)
	assert.Empty(t, stats.EventDistribution)
}

func TestParseDurationMinutes(t *testing.T) {
	m, ok := parseDurationMinutes("1h 23m")
	require.True(t, ok)
	assert.Equal(t, 83, m)

	m, ok = parseDurationMinutes("0h 5m")
	require.True(t, ok)
	assert.Equal(t, 5, m)

	_, ok = parseDurationMinutes("soon")
	assert.False(t, ok)
}
