// models/admin_user.go
package models

import "time"

// AdminUser is an organizer account. Admins manage problem statements and
// can inspect team registrations; they are seeded at startup, not
// self-registered.
type AdminUser struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	LastLogin time.Time `json:"last_login"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
