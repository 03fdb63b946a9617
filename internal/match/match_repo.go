package match

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchListQuery carries the optional filters and sorting for match listings.
type MatchListQuery struct {
	Status    string
	Court     string
	Date      string
	EventType string
	Search    string // matched against player names and match number
	SortBy    string // "end_time" (default) or "scheduled_date"
	SortOrder string // "asc" or "desc" (default)
}

// MatchRepository defines methods to interact with match and score data.
type MatchRepository interface {
	CreateMatch(m *Match) error
	GetMatchByID(id uint) (*Match, error)
	GetMatches(q MatchListQuery) ([]Match, error)
	UpdateMatch(m *Match) error
	UpdateMatchFields(matchID uint, fields map[string]interface{}) error
	DeleteMatch(id uint) error

	CreateScore(s *Score) error
	GetScore(matchID uint, setNumber int) (*Score, error)
	GetScoreForUpdate(matchID uint, setNumber int) (*Score, error)
	UpdateScore(s *Score) error
	DeleteScores(matchID uint) error

	// Transaction support
	WithTransaction(txFunc func(MatchRepository) error) error
}

// GormMatchRepository implements MatchRepository using GORM
type GormMatchRepository struct {
	db *gorm.DB
}

// NewGormMatchRepository creates a new GormMatchRepository
func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// WithTransaction implements transaction support
func (r *GormMatchRepository) WithTransaction(txFunc func(MatchRepository) error) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	txRepo := &GormMatchRepository{db: tx}
	err := txFunc(txRepo)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// CreateMatch creates a new match
func (r *GormMatchRepository) CreateMatch(m *Match) error {
	return r.db.Create(m).Error
}

// GetMatchByID retrieves a match by ID with its score rows, ordered by set.
func (r *GormMatchRepository) GetMatchByID(id uint) (*Match, error) {
	var m Match
	result := r.db.Preload("Scores", func(db *gorm.DB) *gorm.DB {
		return db.Order("set_number")
	}).First(&m, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &m, nil
}

// GetMatches retrieves matches based on the query's filters and sorting.
func (r *GormMatchRepository) GetMatches(q MatchListQuery) ([]Match, error) {
	var matches []Match

	query := r.db.Model(&Match{})

	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Court != "" && q.Court != "all" {
		query = query.Where("court = ?", q.Court)
	}
	if q.Date != "" {
		query = query.Where("date = ?", q.Date)
	}
	if q.EventType != "" && q.EventType != "all" {
		query = query.Where("event_type = ?", q.EventType)
	}
	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		query = query.Where(
			"LOWER(player1) LIKE ? OR LOWER(player2) LIKE ? OR LOWER(match_number) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	direction := "DESC"
	if strings.EqualFold(q.SortOrder, "asc") {
		direction = "ASC"
	}
	switch q.SortBy {
	case "scheduled_date":
		query = query.Order("date " + direction)
	default:
		// end_time with date as secondary sort
		query = query.Order("end_time " + direction).Order("date " + direction)
	}

	result := query.Preload("Scores", func(db *gorm.DB) *gorm.DB {
		return db.Order("set_number")
	}).Find(&matches)

	if result.Error != nil {
		return nil, result.Error
	}
	return matches, nil
}

// UpdateMatch updates an existing match
func (r *GormMatchRepository) UpdateMatch(m *Match) error {
	return r.db.Save(m).Error
}

// UpdateMatchFields updates selected columns of a match in a single statement.
func (r *GormMatchRepository) UpdateMatchFields(matchID uint, fields map[string]interface{}) error {
	return r.db.Model(&Match{}).Where("id = ?", matchID).Updates(fields).Error
}

// DeleteMatch soft-deletes a match
func (r *GormMatchRepository) DeleteMatch(id uint) error {
	return r.db.Delete(&Match{}, id).Error
}

// CreateScore creates a score row for one set of a match.
func (r *GormMatchRepository) CreateScore(s *Score) error {
	return r.db.Create(s).Error
}

// GetScore retrieves the score row for a (match, set) pair.
func (r *GormMatchRepository) GetScore(matchID uint, setNumber int) (*Score, error) {
	var s Score
	result := r.db.Where("match_id = ? AND set_number = ?", matchID, setNumber).First(&s)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &s, nil
}

// GetScoreForUpdate retrieves the score row holding a row lock until the
// surrounding transaction commits, serializing concurrent read-modify-write
// cycles on the same (match, set) pair.
func (r *GormMatchRepository) GetScoreForUpdate(matchID uint, setNumber int) (*Score, error) {
	query := r.db
	// sqlite has no SELECT ... FOR UPDATE; its single-writer model already
	// serializes the test databases.
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var s Score
	result := query.Where("match_id = ? AND set_number = ?", matchID, setNumber).First(&s)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &s, nil
}

// UpdateScore updates an existing score row
func (r *GormMatchRepository) UpdateScore(s *Score) error {
	return r.db.Save(s).Error
}

// DeleteScores soft-deletes all score rows belonging to a match.
func (r *GormMatchRepository) DeleteScores(matchID uint) error {
	return r.db.Where("match_id = ?", matchID).Delete(&Score{}).Error
}
