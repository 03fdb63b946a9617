package match

import (
	"time"

	"gorm.io/gorm"
)

type MatchStatus string

const (
	StatusScheduled MatchStatus = "scheduled"
	StatusLive      MatchStatus = "live"
	StatusCompleted MatchStatus = "completed"
)

// ScoreAction is the operation applied to one player's score in a set.
type ScoreAction string

const (
	ActionIncrement ScoreAction = "increment"
	ActionDecrement ScoreAction = "decrement"
)

// Match represents one scheduled badminton match and its rule parameters.
// Player1/Player2 are free-text names, not references to the Player table;
// the roster is informational only.
type Match struct {
	gorm.Model
	EventType    string `json:"event_type" gorm:"not null"`
	MatchNumber  string `json:"match_number" gorm:"not null"`
	Date         string `json:"date" gorm:"index;not null"` // YYYY-MM-DD
	Time         string `json:"time" gorm:"not null"`
	Court        string `json:"court" gorm:"index;not null"`
	Umpire       string `json:"umpire,omitempty"`
	ServiceJudge string `json:"service_judge,omitempty"`

	// Rule parameters, fixed at creation time. Settings changes never
	// touch existing matches. DeuceEnabled carries no column default on
	// purpose: gorm drops explicit false values when one is set, and the
	// service always writes the resolved value anyway.
	MaxPoints    int  `json:"max_points" gorm:"default:21"`
	TotalSets    int  `json:"total_sets" gorm:"default:3"`
	DeuceEnabled bool `json:"deuce_enabled"`

	Player1 string `json:"player1" gorm:"not null"`
	Player2 string `json:"player2" gorm:"not null"`

	// Lifecycle fields. Status only ever moves scheduled -> live -> completed;
	// CurrentSet stays within [1, TotalSets].
	Status       MatchStatus `json:"status" gorm:"index;default:'scheduled'"`
	CurrentSet   int         `json:"current_set" gorm:"default:1"`
	StartTime    *time.Time  `json:"start_time,omitempty"`
	EndTime      *time.Time  `json:"end_time,omitempty"`
	Duration     string      `json:"duration,omitempty"` // display string, e.g. "1h 23m"
	ShuttlesUsed int         `json:"shuttles_used" gorm:"default:0"`

	Scores []Score `json:"scores,omitempty" gorm:"foreignKey:MatchID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// Score is one set's score sheet row. A match owns exactly TotalSets rows,
// one per set number.
type Score struct {
	gorm.Model
	MatchID      uint `json:"match_id" gorm:"index;not null;uniqueIndex:idx_score_match_set"`
	SetNumber    int  `json:"set_number" gorm:"not null;uniqueIndex:idx_score_match_set"`
	Player1Score int  `json:"player1_score" gorm:"default:0"`
	Player2Score int  `json:"player2_score" gorm:"default:0"`
	Completed    bool `json:"completed" gorm:"default:false"`
}
