package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/repository"
)

// TeamService provides business logic for teams and their memberships.
type TeamService struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
	access   *AccessResolver
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo repository.TeamRepository, userRepo repository.UserRepository, access *AccessResolver) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
		access:   access,
	}
}

// CreateTeamInput represents parameters to create a new team.
type CreateTeamInput struct {
	Name        string
	Description string
	ManagerID   *uint64
}

// Create creates a team. Only Admins and Managers may create teams; the
// manager defaults to the caller when not given.
func (s *TeamService) Create(input CreateTeamInput, callerID uint64, role models.Role) (*models.Team, error) {
	if role != models.RoleAdmin && role != models.RoleManager {
		return nil, ErrRoleNotAllowed
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	managerID := callerID
	if input.ManagerID != nil && *input.ManagerID > 0 {
		managerID = *input.ManagerID
	}

	team := &models.Team{
		Name:        input.Name,
		Description: input.Description,
		ManagerID:   managerID,
		CreatedAt:   time.Now(),
		IsActive:    true,
	}

	if err := s.teamRepo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return team, nil
}

// List returns the teams visible to the caller.
func (s *TeamService) List(callerID uint64, role models.Role) ([]models.Team, error) {
	return s.access.VisibleTeams(callerID, role)
}

// TeamMemberInfo pairs a membership with the member's user record.
type TeamMemberInfo struct {
	Member models.TeamMember
	User   *models.User
}

// TeamDetail is a team together with its manager and resolved members.
type TeamDetail struct {
	Team    models.Team
	Manager *models.User
	Members []TeamMemberInfo
}

// Get returns a team with its manager and member list resolved.
func (s *TeamService) Get(id uint64) (*TeamDetail, error) {
	team, err := s.loadTeam(id)
	if err != nil {
		return nil, err
	}

	detail := &TeamDetail{Team: *team}

	if manager, err := s.userRepo.FindByID(team.ManagerID); err == nil {
		detail.Manager = manager
	}

	members, err := s.teamRepo.ListMembers(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	for _, member := range members {
		info := TeamMemberInfo{Member: member}
		if user, err := s.userRepo.FindByID(member.UserID); err == nil {
			info.User = user
		}
		detail.Members = append(detail.Members, info)
	}

	return detail, nil
}

// AddMember inserts a membership. Only the team's manager may add members;
// an Admin does not bypass this check. The duplicate-pair invariant is
// enforced by the store's unique index, so the insert itself is the
// conflict check.
func (s *TeamService) AddMember(teamID, userID, callerID uint64) error {
	team, err := s.loadTeam(teamID)
	if err != nil {
		return err
	}

	if team.ManagerID != callerID {
		return ErrNotTeamManager
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	member := &models.TeamMember{
		TeamID:   teamID,
		UserID:   userID,
		JoinedAt: time.Now(),
	}

	if err := s.teamRepo.AddMember(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyTeamMember
		}
		return fmt.Errorf("failed to add team member: %w", err)
	}

	return nil
}

// RemoveMember deletes a membership under the same manager-only rule.
// Removing a pair that is not a membership is ErrMemberNotFound.
func (s *TeamService) RemoveMember(teamID, userID, callerID uint64) error {
	team, err := s.loadTeam(teamID)
	if err != nil {
		return err
	}

	if team.ManagerID != callerID {
		return ErrNotTeamManager
	}

	removed, err := s.teamRepo.RemoveMember(teamID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
	}
	if removed == 0 {
		return ErrMemberNotFound
	}

	return nil
}

func (s *TeamService) loadTeam(id uint64) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}
	return team, nil
}
