// models/participant.go
package models

import "time"

type Role string

const (
	RoleLeader Role = "leader"
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Participant is one registered person inside a team. The role is stored
// on the row, so lookups return it directly instead of re-deriving it by
// searching the aggregate. The unique index on email is the storage-layer
// backstop for the registration-time uniqueness check.
type Participant struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TeamID    uint      `json:"team_id" gorm:"not null;index"`
	Team      *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Role      Role      `json:"role" gorm:"not null;size:10;index"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:254"`
	Password  string    `json:"-" gorm:"not null"`
	Phone     string    `json:"phone,omitempty" gorm:"size:20"`
	Gender    string    `json:"gender" gorm:"size:10"`
	CreatedAt time.Time `json:"created_at"`
}

func (Participant) TableName() string {
	return "participants"
}
