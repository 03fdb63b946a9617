package player

import (
	"errors"

	"gorm.io/gorm"
)

// ErrEmailTaken is returned when another player already uses the email.
var ErrEmailTaken = errors.New("email already exists")

// PlayerRepository defines methods to interact with player data.
type PlayerRepository interface {
	CreatePlayer(p *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetPlayers() ([]Player, error)
	UpdatePlayer(p *Player) error
	DeletePlayer(id uint) error
}

// GormPlayerRepository implements PlayerRepository using GORM
type GormPlayerRepository struct {
	db *gorm.DB
}

// NewGormPlayerRepository creates a new GormPlayerRepository
func NewGormPlayerRepository(db *gorm.DB) *GormPlayerRepository {
	return &GormPlayerRepository{db: db}
}

// emailInUse reports whether a different player already claims the email.
func (r *GormPlayerRepository) emailInUse(email string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&Player{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreatePlayer creates a new player
func (r *GormPlayerRepository) CreatePlayer(p *Player) error {
	if p.Email != nil && *p.Email != "" {
		taken, err := r.emailInUse(*p.Email, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}
	}
	return r.db.Create(p).Error
}

// GetPlayerByID retrieves a player by ID
func (r *GormPlayerRepository) GetPlayerByID(id uint) (*Player, error) {
	var p Player
	result := r.db.First(&p, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &p, nil
}

// GetPlayers retrieves all players ordered by name.
func (r *GormPlayerRepository) GetPlayers() ([]Player, error) {
	var players []Player
	if err := r.db.Order("name").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

// UpdatePlayer updates an existing player
func (r *GormPlayerRepository) UpdatePlayer(p *Player) error {
	if p.Email != nil && *p.Email != "" {
		taken, err := r.emailInUse(*p.Email, p.ID)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}
	}
	return r.db.Save(p).Error
}

// DeletePlayer soft-deletes a player
func (r *GormPlayerRepository) DeletePlayer(id uint) error {
	return r.db.Delete(&Player{}, id).Error
}
