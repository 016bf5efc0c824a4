// models/team.go
package models

import "time"

// Team is the registration aggregate: one leader plus one-or-more members,
// stored as participant rows. A team is written once at registration and
// never updated afterwards.
type Team struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name" gorm:"not null;size:100"`
	Description  string        `json:"description" gorm:"type:text"`
	ProblemID    *uint         `json:"problem_id" gorm:"index"`
	Problem      *Problem      `json:"problem,omitempty" gorm:"foreignKey:ProblemID"`
	Participants []Participant `json:"participants,omitempty" gorm:"foreignKey:TeamID"`
	CreatedAt    time.Time     `json:"created_at"`
}

func (Team) TableName() string {
	return "teams"
}

// Leader returns the team's leader participant, or nil if the aggregate
// was loaded without participants.
func (t *Team) Leader() *Participant {
	for i := range t.Participants {
		if t.Participants[i].Role == RoleLeader {
			return &t.Participants[i]
		}
	}
	return nil
}

// Members returns the non-leader participants in insertion order.
func (t *Team) Members() []Participant {
	members := make([]Participant, 0, len(t.Participants))
	for _, p := range t.Participants {
		if p.Role == RoleMember {
			members = append(members, p)
		}
	}
	return members
}
