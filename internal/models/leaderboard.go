package models

import "time"

// LeaderboardEntry is a derived row: totals aggregated from the user's
// activities, one row per user after a rebuild. Rank is nil until the ranking
// pass assigns a dense 1-based position ordered by total calories descending.
// Entries are disposable; a rebuild deletes and recreates all of them.
type LeaderboardEntry struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserEmail       string    `gorm:"index;not null" json:"user_email"`
	UserName        string    `gorm:"not null" json:"user_name"`
	Team            string    `gorm:"index" json:"team"`
	TotalActivities int       `gorm:"not null;default:0" json:"total_activities"`
	TotalCalories   int       `gorm:"not null;default:0" json:"total_calories"`
	TotalDuration   int       `gorm:"not null;default:0" json:"total_duration"`
	Rank            *int      `json:"rank"`
	LastUpdated     time.Time `gorm:"not null" json:"last_updated"`
}
