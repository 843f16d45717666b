package services

import (
	"time"

	"github.com/taskboard/taskboard-api/internal/models"
)

// DashboardStats are derived counts over a caller's visible tasks.
type DashboardStats struct {
	TotalTasks        int `json:"total_tasks"`
	ToDoTasks         int `json:"todo_tasks"`
	InProgressTasks   int `json:"in_progress_tasks"`
	DoneTasks         int `json:"done_tasks"`
	OverdueTasks      int `json:"overdue_tasks"`
	HighPriorityTasks int `json:"high_priority_tasks"`
}

// DashboardService computes read-side aggregates; it never mutates.
type DashboardService struct {
	access *AccessResolver
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(access *AccessResolver) *DashboardService {
	return &DashboardService{access: access}
}

// Stats counts the caller's visible tasks in total, per status, overdue,
// and high-priority (High or Critical).
func (s *DashboardService) Stats(callerID uint64, role models.Role) (*DashboardStats, error) {
	tasks, err := s.access.VisibleTasks(callerID, role)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stats := &DashboardStats{TotalTasks: len(tasks)}

	for _, task := range tasks {
		switch task.Status {
		case models.TaskStatusToDo:
			stats.ToDoTasks++
		case models.TaskStatusInProgress:
			stats.InProgressTasks++
		case models.TaskStatusDone:
			stats.DoneTasks++
		}

		if task.IsOverdue(now) {
			stats.OverdueTasks++
		}
		if task.Priority == models.TaskPriorityHigh || task.Priority == models.TaskPriorityCritical {
			stats.HighPriorityTasks++
		}
	}

	return stats, nil
}
