package repository

import (
	"github.com/taskboard/taskboard-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user. A duplicate email surfaces as
	// gorm.ErrDuplicatedKey via the unique index.
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindActiveByEmail finds an active user by email
	FindActiveByEmail(email string) (*models.User, error)

	// Update updates a user
	Update(user *models.User) error

	// ListActive lists all active users
	ListActive() ([]models.User, error)

	// ListActiveByRole lists active users holding a role
	ListActiveByRole(role models.Role) ([]models.User, error)
}

// TeamRepository defines the interface for team and membership data access
type TeamRepository interface {
	// Create creates a new team
	Create(team *models.Team) error

	// FindByID finds a team by ID
	FindByID(id uint64) (*models.Team, error)

	// ListActive lists all active teams
	ListActive() ([]models.Team, error)

	// ListActiveByManager lists active teams managed by a user
	ListActiveByManager(managerID uint64) ([]models.Team, error)

	// ListByManager lists teams managed by a user regardless of active
	// state, for task scoping
	ListByManager(managerID uint64) ([]models.Team, error)

	// ListActiveByIDs lists active teams out of the given id set
	ListActiveByIDs(ids []uint64) ([]models.Team, error)

	// AddMember inserts a membership row. A duplicate (team, user) pair
	// surfaces as gorm.ErrDuplicatedKey via the composite unique index.
	AddMember(member *models.TeamMember) error

	// RemoveMember deletes a membership row and reports how many rows went
	RemoveMember(teamID, userID uint64) (int64, error)

	// ListMembers lists the memberships of a team
	ListMembers(teamID uint64) ([]models.TeamMember, error)

	// ListMembershipsByUser lists all memberships held by a user
	ListMembershipsByUser(userID uint64) ([]models.TeamMember, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete hard-deletes a task and its comments in one transaction
	Delete(id uint64) error

	// ListAll lists every task
	ListAll() ([]models.Task, error)

	// ListByCreatorOrAssignee lists tasks created by or assigned to a user
	ListByCreatorOrAssignee(userID uint64) ([]models.Task, error)

	// ListByAssignee lists tasks assigned to a user
	ListByAssignee(userID uint64) ([]models.Task, error)

	// ListByTeamIDs lists tasks belonging to any of the given teams
	ListByTeamIDs(teamIDs []uint64) ([]models.Task, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(comment *models.Comment) error

	// FindByID finds a comment by ID
	FindByID(id uint64) (*models.Comment, error)

	// ListByTask lists a task's comments ordered oldest first
	ListByTask(taskID uint64) ([]models.Comment, error)

	// Delete hard-deletes a comment
	Delete(id uint64) error
}
