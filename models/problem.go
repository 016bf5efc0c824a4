// models/problem.go
package models

import "time"

// Problem is an organizer-defined challenge that teams can pick at
// registration time. Problems are created by admins and never mutated
// afterwards.
type Problem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null;size:200"`
	Category    string    `json:"category" gorm:"not null;size:100"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null;size:100"`
	Description string    `json:"description" gorm:"not null;type:text"`
	IsActive    bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Problem) TableName() string {
	return "problems"
}
