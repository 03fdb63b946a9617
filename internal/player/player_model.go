package player

import "gorm.io/gorm"

// Player is a roster entry. Matches reference players by name only, so
// this table carries contact details rather than scoring history.
type Player struct {
	gorm.Model
	Name  string  `json:"name" gorm:"not null"`
	Team  string  `json:"team,omitempty"`
	Email *string `json:"email,omitempty" gorm:"uniqueIndex"`
	Phone string  `json:"phone,omitempty"`
}
