package setting

import (
	"errors"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository defines methods to interact with settings data.
type SettingRepository interface {
	GetAll() ([]Setting, error)
	Get(key string) (*Setting, error)
	Upsert(key, value string) error
	UpsertMany(values map[string]string) error
}

// GormSettingRepository implements SettingRepository using GORM
type GormSettingRepository struct {
	db *gorm.DB
}

// NewGormSettingRepository creates a new GormSettingRepository
func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// GetAll retrieves all settings.
func (r *GormSettingRepository) GetAll() ([]Setting, error) {
	var settings []Setting
	if err := r.db.Order("key").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// Get retrieves a single setting by key.
func (r *GormSettingRepository) Get(key string) (*Setting, error) {
	var s Setting
	result := r.db.First(&s, "key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &s, nil
}

// Upsert inserts or replaces a setting value.
func (r *GormSettingRepository) Upsert(key, value string) error {
	s := Setting{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&s).Error
}

// UpsertMany writes all pairs in one transaction; a failure on any key
// rolls back the whole update.
func (r *GormSettingRepository) UpsertMany(values map[string]string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &GormSettingRepository{db: tx}
		for key, value := range values {
			if err := txRepo.Upsert(key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

// Seed inserts the default settings, leaving existing rows untouched.
func Seed(db *gorm.DB) error {
	defaults := []Setting{
		{Key: KeyDefaultMaxPoints, Value: "21"},
		{Key: KeyDefaultTotalSets, Value: "3"},
		{Key: KeyDefaultDeuceEnabled, Value: "1"},
		{Key: KeyDefaultCourts, Value: "1,2,3,4"},
		{Key: KeyDefaultEventTypes, Value: "Singles,Doubles,Mixed Doubles"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults).Error
}

// MatchRuleDefaults returns the rule parameters new matches start from.
// Missing or malformed values fall back to the seeded defaults (21, 3,
// deuce on).
func MatchRuleDefaults(repo SettingRepository) (maxPoints, totalSets int, deuceEnabled bool) {
	maxPoints, totalSets, deuceEnabled = 21, 3, true

	if s, err := repo.Get(KeyDefaultMaxPoints); err == nil && s != nil {
		if v, err := strconv.Atoi(s.Value); err == nil && v > 0 {
			maxPoints = v
		}
	}
	if s, err := repo.Get(KeyDefaultTotalSets); err == nil && s != nil {
		if v, err := strconv.Atoi(s.Value); err == nil && v > 0 {
			totalSets = v
		}
	}
	if s, err := repo.Get(KeyDefaultDeuceEnabled); err == nil && s != nil {
		deuceEnabled = s.Value == "1" || s.Value == "true"
	}
	return maxPoints, totalSets, deuceEnabled
}
