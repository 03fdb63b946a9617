package setting

import "time"

// Setting is a process-wide key/value configuration entry. New matches
// read the rule defaults from here; existing matches are never touched.
type Setting struct {
	Key       string    `json:"key" gorm:"primaryKey"`
	Value     string    `json:"value" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Well-known setting keys.
const (
	KeyDefaultMaxPoints    = "default_max_points"
	KeyDefaultTotalSets    = "default_total_sets"
	KeyDefaultDeuceEnabled = "default_deuce_enabled"
	KeyDefaultCourts       = "default_courts"
	KeyDefaultEventTypes   = "default_event_types"
)
