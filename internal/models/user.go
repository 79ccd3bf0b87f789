package models

import "time"

// User is a tracked athlete profile. Identity is the email address; Team is a
// free-text label resolved against Team.Name at sync time, never a foreign key,
// so a user may name a team that does not exist.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"not null" json:"name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Team         *string   `json:"team"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

// TeamLabel returns the team assignment or "" when the user is unassigned.
func (user *User) TeamLabel() string {
	if user.Team == nil {
		return ""
	}
	return *user.Team
}
