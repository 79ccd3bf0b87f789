package models

import "time"

const (
	ActivityRunning       = "Running"
	ActivityCycling       = "Cycling"
	ActivitySwimming      = "Swimming"
	ActivityWeightlifting = "Weightlifting"
	ActivityYoga          = "Yoga"
	ActivityBoxing        = "Boxing"
	ActivityHIIT          = "HIIT"
)

// Activity is one logged session. UserName is a snapshot of the user's name at
// creation time and is not re-synced if the user is later renamed.
type Activity struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserEmail    string    `gorm:"index;not null" json:"user_email"`
	UserName     string    `gorm:"not null" json:"user_name"`
	ActivityType string    `gorm:"index;not null" json:"activity_type"`
	Duration     int       `gorm:"not null" json:"duration"`
	Calories     int       `gorm:"not null" json:"calories"`
	Distance     *float64  `json:"distance"`
	Date         time.Time `gorm:"not null" json:"date"`
	Notes        string    `json:"notes"`
}

// ActivityTypes lists the supported activity catalog.
func ActivityTypes() []string {
	return []string{
		ActivityRunning,
		ActivityCycling,
		ActivitySwimming,
		ActivityWeightlifting,
		ActivityYoga,
		ActivityBoxing,
		ActivityHIIT,
	}
}

// IsDistanceActivity reports whether an activity type carries a distance.
func IsDistanceActivity(activityType string) bool {
	switch activityType {
	case ActivityRunning, ActivityCycling, ActivitySwimming:
		return true
	}
	return false
}
