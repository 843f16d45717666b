package models

import "time"

// TeamMember joins a user to a team. The composite unique index makes the
// insert itself the uniqueness check, so concurrent adds of the same pair
// cannot both succeed.
type TeamMember struct {
	ID       uint64    `gorm:"primarykey" json:"id"`
	TeamID   uint64    `gorm:"not null;uniqueIndex:idx_team_members_team_user" json:"team_id"`
	UserID   uint64    `gorm:"not null;uniqueIndex:idx_team_members_team_user" json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}
