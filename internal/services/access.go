package services

import (
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/repository"
)

// AccessResolver computes the task and team scope a caller may see, and
// answers the two authorization questions every mutation asks first.
type AccessResolver struct {
	taskRepo repository.TaskRepository
	teamRepo repository.TeamRepository
}

// NewAccessResolver creates a new AccessResolver
func NewAccessResolver(taskRepo repository.TaskRepository, teamRepo repository.TeamRepository) *AccessResolver {
	return &AccessResolver{
		taskRepo: taskRepo,
		teamRepo: teamRepo,
	}
}

// VisibleTasks returns the tasks the caller may view, newest first.
//
// Admin sees everything. A Manager sees the union of tasks they created,
// tasks assigned to them, and tasks in teams they manage. A User sees the
// union of tasks assigned to them and tasks in teams they belong to.
// Unions are deduplicated by task id since one task can satisfy several
// clauses.
func (r *AccessResolver) VisibleTasks(userID uint64, role models.Role) ([]models.Task, error) {
	switch role {
	case models.RoleAdmin:
		return r.taskRepo.ListAll()

	case models.RoleManager:
		own, err := r.taskRepo.ListByCreatorOrAssignee(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list own tasks: %w", err)
		}

		// Deactivating a team hides it from team listings, not its tasks:
		// neither task-scope clause filters on active state.
		managed, err := r.teamRepo.ListByManager(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list managed teams: %w", err)
		}
		teamTasks, err := r.taskRepo.ListByTeamIDs(teamIDs(managed))
		if err != nil {
			return nil, fmt.Errorf("failed to list team tasks: %w", err)
		}

		return mergeTasks(own, teamTasks), nil

	default:
		assigned, err := r.taskRepo.ListByAssignee(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list assigned tasks: %w", err)
		}

		memberships, err := r.teamRepo.ListMembershipsByUser(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list memberships: %w", err)
		}
		teamTasks, err := r.taskRepo.ListByTeamIDs(membershipTeamIDs(memberships))
		if err != nil {
			return nil, fmt.Errorf("failed to list team tasks: %w", err)
		}

		return mergeTasks(assigned, teamTasks), nil
	}
}

// VisibleTeams returns the active teams the caller may view: all of them
// for Admin, managed teams for a Manager, joined teams for a User.
func (r *AccessResolver) VisibleTeams(userID uint64, role models.Role) ([]models.Team, error) {
	switch role {
	case models.RoleAdmin:
		return r.teamRepo.ListActive()

	case models.RoleManager:
		return r.teamRepo.ListActiveByManager(userID)

	default:
		memberships, err := r.teamRepo.ListMembershipsByUser(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list memberships: %w", err)
		}
		return r.teamRepo.ListActiveByIDs(membershipTeamIDs(memberships))
	}
}

// CanView reports whether the caller may read the task. The caller-facing
// outcome for false is "access denied", never "not found"; the task does
// exist.
func (r *AccessResolver) CanView(task *models.Task, userID uint64, role models.Role) (bool, error) {
	if role == models.RoleAdmin {
		return true, nil
	}
	if task.CreatedByID == userID {
		return true, nil
	}
	if task.AssignedToID != nil && *task.AssignedToID == userID {
		return true, nil
	}

	if role == models.RoleManager && task.TeamID != nil {
		team, err := r.teamRepo.FindByID(*task.TeamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, fmt.Errorf("failed to find task team: %w", err)
		}
		return team.ManagerID == userID, nil
	}

	return false, nil
}

// CanMutate reports whether the caller may change or delete the task.
// Any Manager may mutate any task; see DESIGN.md for why this stays
// broader than the view scope.
func (r *AccessResolver) CanMutate(task *models.Task, userID uint64, role models.Role) bool {
	if role == models.RoleAdmin || role == models.RoleManager {
		return true
	}
	return task.CreatedByID == userID
}

// mergeTasks unions task slices by id and orders the result newest first.
func mergeTasks(lists ...[]models.Task) []models.Task {
	seen := make(map[uint64]struct{})
	merged := make([]models.Task, 0)

	for _, list := range lists {
		for _, task := range list {
			if _, ok := seen[task.ID]; ok {
				continue
			}
			seen[task.ID] = struct{}{}
			merged = append(merged, task)
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].ID > merged[j].ID
		}
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	return merged
}

func teamIDs(teams []models.Team) []uint64 {
	ids := make([]uint64, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
	}
	return ids
}

func membershipTeamIDs(memberships []models.TeamMember) []uint64 {
	ids := make([]uint64, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.TeamID)
	}
	return ids
}
