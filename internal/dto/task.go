package dto

import (
	"time"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/services"
	"github.com/taskboard/taskboard-api/internal/utils"
)

// CreateTaskRequest is the payload for creating a task
type CreateTaskRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	Priority     string     `json:"priority"`
	DueDate      *time.Time `json:"due_date"`
	AssignedToID *uint64    `json:"assigned_to_id"`
	TeamID       *uint64    `json:"team_id"`
}

// UpdateTaskRequest is a partial update. Omitted fields stay untouched;
// sending 0 for assigned_to_id or team_id clears the reference.
type UpdateTaskRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Status       *string    `json:"status"`
	Priority     *string    `json:"priority"`
	DueDate      *time.Time `json:"due_date"`
	AssignedToID *uint64    `json:"assigned_to_id"`
	TeamID       *uint64    `json:"team_id"`
}

// GenerateTasksRequest is the payload for AI task drafting
type GenerateTasksRequest struct {
	Text string `json:"text" binding:"required"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID             uint64              `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Status         models.TaskStatus   `json:"status"`
	Priority       models.TaskPriority `json:"priority"`
	DueDate        *time.Time          `json:"due_date"`
	CreatedByID    uint64              `json:"created_by_id"`
	CreatedByName  string              `json:"created_by_name"`
	AssignedToID   *uint64             `json:"assigned_to_id"`
	AssignedToName *string             `json:"assigned_to_name"`
	TeamID         *uint64             `json:"team_id"`
	TeamName       *string             `json:"team_name"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      *time.Time          `json:"updated_at"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks      []TaskDTO                `json:"tasks"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToTaskDTO converts an enriched task to TaskDTO
func ToTaskDTO(detail services.TaskDetail) TaskDTO {
	return TaskDTO{
		ID:             detail.Task.ID,
		Title:          detail.Task.Title,
		Description:    detail.Task.Description,
		Status:         detail.Task.Status,
		Priority:       detail.Task.Priority,
		DueDate:        detail.Task.DueDate,
		CreatedByID:    detail.Task.CreatedByID,
		CreatedByName:  detail.CreatedByName,
		AssignedToID:   detail.Task.AssignedToID,
		AssignedToName: detail.AssignedToName,
		TeamID:         detail.Task.TeamID,
		TeamName:       detail.TeamName,
		CreatedAt:      detail.Task.CreatedAt,
		UpdatedAt:      detail.Task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of enriched tasks
func ToTaskDTOs(details []services.TaskDetail) []TaskDTO {
	dtos := make([]TaskDTO, len(details))
	for i, detail := range details {
		dtos[i] = ToTaskDTO(detail)
	}
	return dtos
}
