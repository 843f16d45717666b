package services

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/notify"
	"github.com/taskboard/taskboard-api/internal/repository"
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
	access   *AccessResolver
	notifier notify.Notifier
	log      *zap.SugaredLogger
}

// NewTaskService creates a new TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	access *AccessResolver,
	notifier notify.Notifier,
	log *zap.SugaredLogger,
) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		teamRepo: teamRepo,
		userRepo: userRepo,
		access:   access,
		notifier: notifier,
		log:      log,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title        string
	Description  string
	Priority     string
	DueDate      *time.Time
	AssignedToID *uint64
	TeamID       *uint64
}

// UpdateTaskInput carries a partial update. Nil fields are untouched. For
// AssignedToID and TeamID a present zero clears the reference and a
// present positive id sets it, so "not provided" and "cleared" stay
// distinct outcomes.
type UpdateTaskInput struct {
	Title        *string
	Description  *string
	Status       *string
	Priority     *string
	DueDate      *time.Time
	AssignedToID *uint64
	TeamID       *uint64
}

// Create builds a new task in ToDo status. The assignment notification is
// sent only after the insert commits and is best-effort.
func (s *TaskService) Create(input CreateTaskInput, createdByID uint64) (*models.Task, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	priority := models.TaskPriorityMedium
	if input.Priority != "" {
		parsed, ok := models.ParseTaskPriority(input.Priority)
		if !ok {
			return nil, ErrInvalidPriority
		}
		priority = parsed
	}

	task := &models.Task{
		Title:        input.Title,
		Description:  input.Description,
		Status:       models.TaskStatusToDo,
		Priority:     priority,
		DueDate:      input.DueDate,
		CreatedByID:  createdByID,
		AssignedToID: normalizeRef(input.AssignedToID),
		TeamID:       normalizeRef(input.TeamID),
		CreatedAt:    time.Now(),
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if task.AssignedToID != nil {
		s.notifyAssignment(*task.AssignedToID, task.Title)
	}

	return task, nil
}

// Get returns a task the caller is permitted to view. A missing id is
// ErrTaskNotFound; an existing task outside the caller's scope is
// ErrAccessDenied, never "not found".
func (s *TaskService) Get(id, callerID uint64, role models.Role) (*models.Task, error) {
	task, err := s.loadTask(id)
	if err != nil {
		return nil, err
	}

	ok, err := s.access.CanView(task, callerID, role)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAccessDenied
	}

	return task, nil
}

// List returns the caller's visible tasks, newest first.
func (s *TaskService) List(callerID uint64, role models.Role) ([]models.Task, error) {
	return s.access.VisibleTasks(callerID, role)
}

// ListForUser returns the union of tasks assigned to the caller and tasks
// of teams the caller belongs to, regardless of role.
func (s *TaskService) ListForUser(callerID uint64) ([]models.Task, error) {
	return s.access.VisibleTasks(callerID, models.RoleUser)
}

// Update applies a partial update to a task the caller may mutate. A
// status change notifies the assignee after the save commits.
func (s *TaskService) Update(id uint64, input UpdateTaskInput, callerID uint64, role models.Role) (*models.Task, error) {
	task, err := s.loadTask(id)
	if err != nil {
		return nil, err
	}

	if !s.access.CanMutate(task, callerID, role) {
		return nil, ErrAccessDenied
	}

	oldStatus := task.Status

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleRequired
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		status, ok := models.ParseTaskStatus(*input.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		task.Status = status
	}
	if input.Priority != nil {
		priority, ok := models.ParseTaskPriority(*input.Priority)
		if !ok {
			return nil, ErrInvalidPriority
		}
		task.Priority = priority
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.AssignedToID != nil {
		task.AssignedToID = normalizeRef(input.AssignedToID)
	}
	if input.TeamID != nil {
		task.TeamID = normalizeRef(input.TeamID)
	}

	now := time.Now()
	task.UpdatedAt = &now

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if input.Status != nil && oldStatus != task.Status && task.AssignedToID != nil {
		s.notifyStatusChange(*task.AssignedToID, task.Title, task.Status)
	}

	return task, nil
}

// Delete hard-deletes a task the caller may mutate, cascading to its
// comments.
func (s *TaskService) Delete(id, callerID uint64, role models.Role) error {
	task, err := s.loadTask(id)
	if err != nil {
		return err
	}

	if !s.access.CanMutate(task, callerID, role) {
		return ErrAccessDenied
	}

	if err := s.taskRepo.Delete(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// TaskFilter narrows the caller's visible tasks.
type TaskFilter struct {
	Status      *models.TaskStatus
	Priority    *models.TaskPriority
	OverdueOnly bool
}

// Filter returns the caller's visible tasks intersected with the filter.
// Overdue means the due date is strictly in the past and the task is not
// done.
func (s *TaskService) Filter(callerID uint64, role models.Role, filter TaskFilter) ([]models.Task, error) {
	tasks, err := s.access.VisibleTasks(callerID, role)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	filtered := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && task.Priority != *filter.Priority {
			continue
		}
		if filter.OverdueOnly && !task.IsOverdue(now) {
			continue
		}
		filtered = append(filtered, task)
	}

	return filtered, nil
}

// TaskDetail pairs a task with the display names of its references.
type TaskDetail struct {
	Task           models.Task
	CreatedByName  string
	AssignedToName *string
	TeamName       *string
}

// Describe resolves the user and team names referenced by the tasks with
// one batch of lookups per entity kind. A dangling reference renders as a
// missing name; only real store failures are returned.
func (s *TaskService) Describe(tasks []models.Task) ([]TaskDetail, error) {
	details := make([]TaskDetail, 0, len(tasks))

	users := make(map[uint64]*models.User)
	teams := make(map[uint64]*models.Team)

	lookupUser := func(id uint64) (*models.User, error) {
		if u, ok := users[id]; ok {
			return u, nil
		}
		u, err := s.userRepo.FindByID(id)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to find user: %w", err)
			}
			u = nil
		}
		users[id] = u
		return u, nil
	}
	lookupTeam := func(id uint64) (*models.Team, error) {
		if t, ok := teams[id]; ok {
			return t, nil
		}
		t, err := s.teamRepo.FindByID(id)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to find team: %w", err)
			}
			t = nil
		}
		teams[id] = t
		return t, nil
	}

	for _, task := range tasks {
		detail := TaskDetail{Task: task, CreatedByName: "Unknown"}

		creator, err := lookupUser(task.CreatedByID)
		if err != nil {
			return nil, err
		}
		if creator != nil {
			detail.CreatedByName = fullName(creator)
		}
		if task.AssignedToID != nil {
			assignee, err := lookupUser(*task.AssignedToID)
			if err != nil {
				return nil, err
			}
			if assignee != nil {
				name := fullName(assignee)
				detail.AssignedToName = &name
			}
		}
		if task.TeamID != nil {
			team, err := lookupTeam(*task.TeamID)
			if err != nil {
				return nil, err
			}
			if team != nil {
				detail.TeamName = &team.Name
			}
		}

		details = append(details, detail)
	}

	return details, nil
}

func (s *TaskService) loadTask(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// notifyAssignment is fire-and-forget: a delivery failure is logged and
// never fails the operation that triggered it.
func (s *TaskService) notifyAssignment(assigneeID uint64, title string) {
	user, err := s.userRepo.FindByID(assigneeID)
	if err != nil {
		return
	}
	if err := s.notifier.NotifyAssignment(user.Email, title); err != nil {
		s.log.Warnw("assignment notification failed", "task", title, "error", err)
	}
}

func (s *TaskService) notifyStatusChange(assigneeID uint64, title string, status models.TaskStatus) {
	user, err := s.userRepo.FindByID(assigneeID)
	if err != nil {
		return
	}
	if err := s.notifier.NotifyStatusChange(user.Email, title, string(status)); err != nil {
		s.log.Warnw("status change notification failed", "task", title, "error", err)
	}
}

// normalizeRef turns a present-but-zero reference into a cleared one.
func normalizeRef(id *uint64) *uint64 {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

func fullName(user *models.User) string {
	return user.FirstName + " " + user.LastName
}
