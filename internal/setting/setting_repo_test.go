package setting

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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

	require.NoError(t, db.AutoMigrate(&Setting{}))
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSettingRepository(db)

	require.NoError(t, Seed(db))

	// A changed value survives re-seeding.
	require.NoError(t, repo.Upsert(KeyDefaultMaxPoints, "15"))
	require.NoError(t, Seed(db))

	s, err := repo.Get(KeyDefaultMaxPoints)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "15", s.Value)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestUpsertInsertsAndReplaces(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSettingRepository(db)

	require.NoError(t, repo.Upsert("default_total_sets", "5"))
	require.NoError(t, repo.Upsert("default_total_sets", "3"))

	s, err := repo.Get("default_total_sets")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "3", s.Value)
}

func TestGetMissingKey(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSettingRepository(db)

	s, err := repo.Get("no_such_key")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestUpsertMany(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSettingRepository(db)

	require.NoError(t, repo.UpsertMany(map[string]string{
		KeyDefaultMaxPoints: "11",
		KeyDefaultTotalSets: "1",
	}))

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMatchRuleDefaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSettingRepository(db)

	// Empty table falls back to the built-in defaults.
	maxPoints, totalSets, deuce := MatchRuleDefaults(repo)
	assert.Equal(t, 21, maxPoints)
	assert.Equal(t, 3, totalSets)
	assert.True(t, deuce)

	require.NoError(t, repo.UpsertMany(map[string]string{
		KeyDefaultMaxPoints:    "15",
		KeyDefaultTotalSets:    "5",
		KeyDefaultDeuceEnabled: "0",
	}))

	maxPoints, totalSets, deuce = MatchRuleDefaults(repo)
	assert.Equal(t, 15, maxPoints)
	assert.Equal(t, 5, totalSets)
	assert.False(t, deuce)

	// Malformed values keep the fallbacks.
	require.NoError(t, repo.Upsert(KeyDefaultMaxPoints, "lots"))
	maxPoints, _, _ = MatchRuleDefaults(repo)
	assert.Equal(t, 21, maxPoints)
}
