package dto

import (
	"time"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/services"
)

// CreateTeamRequest is the payload for creating a team
type CreateTeamRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	ManagerID   *uint64 `json:"manager_id"`
}

// TeamMemberDTO represents a member in a team response
type TeamMemberDTO struct {
	UserID   uint64    `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joined_at"`
}

// TeamDTO represents a team in API responses
type TeamDTO struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ManagerID   uint64          `json:"manager_id"`
	ManagerName string          `json:"manager_name"`
	CreatedAt   time.Time       `json:"created_at"`
	Members     []TeamMemberDTO `json:"members,omitempty"`
}

// ToTeamDTO converts a bare team (no member list) to TeamDTO
func ToTeamDTO(team models.Team) TeamDTO {
	return TeamDTO{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		ManagerID:   team.ManagerID,
		CreatedAt:   team.CreatedAt,
	}
}

// ToTeamDTOs converts a slice of teams
func ToTeamDTOs(teams []models.Team) []TeamDTO {
	dtos := make([]TeamDTO, len(teams))
	for i, team := range teams {
		dtos[i] = ToTeamDTO(team)
	}
	return dtos
}

// ToTeamDetailDTO converts a resolved team detail to TeamDTO
func ToTeamDetailDTO(detail services.TeamDetail) TeamDTO {
	dto := ToTeamDTO(detail.Team)

	dto.ManagerName = "Unknown"
	if detail.Manager != nil {
		dto.ManagerName = detail.Manager.FirstName + " " + detail.Manager.LastName
	}

	dto.Members = make([]TeamMemberDTO, 0, len(detail.Members))
	for _, info := range detail.Members {
		member := TeamMemberDTO{
			UserID:   info.Member.UserID,
			JoinedAt: info.Member.JoinedAt,
		}
		if info.User != nil {
			member.Name = info.User.FirstName + " " + info.User.LastName
			member.Email = info.User.Email
		}
		dto.Members = append(dto.Members, member)
	}

	return dto
}
