package player

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

	require.NoError(t, db.AutoMigrate(&Player{}))
	return db
}

func strPtr(s string) *string { return &s }

func TestCreatePlayer(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPlayerRepository(db)

	p := &Player{Name: "Lin Dan", Team: "CHN", Email: strPtr("lin@example.com")}
	require.NoError(t, repo.CreatePlayer(p))
	require.NotZero(t, p.ID)

	got, err := repo.GetPlayerByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Lin Dan", got.Name)
}

func TestCreatePlayerDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPlayerRepository(db)

	require.NoError(t, repo.CreatePlayer(&Player{Name: "A", Email: strPtr("dup@example.com")}))

	err := repo.CreatePlayer(&Player{Name: "B", Email: strPtr("dup@example.com")})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Players without an email never collide.
	require.NoError(t, repo.CreatePlayer(&Player{Name: "C"}))
	require.NoError(t, repo.CreatePlayer(&Player{Name: "D"}))
}

func TestUpdatePlayerEmailChecks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPlayerRepository(db)

	a := &Player{Name: "A", Email: strPtr("a@example.com")}
	b := &Player{Name: "B", Email: strPtr("b@example.com")}
	require.NoError(t, repo.CreatePlayer(a))
	require.NoError(t, repo.CreatePlayer(b))

	// Keeping your own email is fine.
	a.Team = "Club"
	require.NoError(t, repo.UpdatePlayer(a))

	// Taking someone else's is not.
	b.Email = strPtr("a@example.com")
	assert.ErrorIs(t, repo.UpdatePlayer(b), ErrEmailTaken)
}

func TestGetPlayersOrderedByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPlayerRepository(db)

	require.NoError(t, repo.CreatePlayer(&Player{Name: "Zhao"}))
	require.NoError(t, repo.CreatePlayer(&Player{Name: "An"}))

	players, err := repo.GetPlayers()
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "An", players[0].Name)
	assert.Equal(t, "Zhao", players[1].Name)
}

func TestDeletePlayer(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPlayerRepository(db)

	p := &Player{Name: "Gone"}
	require.NoError(t, repo.CreatePlayer(p))
	require.NoError(t, repo.DeletePlayer(p.ID))

	got, err := repo.GetPlayerByID(p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
