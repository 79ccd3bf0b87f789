package models

import "time"

// Team groups users by name match. Members is a denormalized list of member
// emails in user-creation order; it is owned by the membership sync and must
// not be edited by hand.
type Team struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	Members     []string  `gorm:"serializer:json" json:"members"`
}
