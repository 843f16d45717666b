package models

import "time"

type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "ToDo"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusDone       TaskStatus = "Done"
)

// ParseTaskStatus maps a string onto the closed status set.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch TaskStatus(s) {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusDone:
		return TaskStatus(s), true
	}
	return "", false
}

type TaskPriority string

const (
	TaskPriorityLow      TaskPriority = "Low"
	TaskPriorityMedium   TaskPriority = "Medium"
	TaskPriorityHigh     TaskPriority = "High"
	TaskPriorityCritical TaskPriority = "Critical"
)

// ParseTaskPriority maps a string onto the closed priority set.
func ParseTaskPriority(s string) (TaskPriority, bool) {
	switch TaskPriority(s) {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityCritical:
		return TaskPriority(s), true
	}
	return "", false
}

// Task references users and teams by id only; related rows are looked up
// through the repositories when needed.
type Task struct {
	ID           uint64       `gorm:"primarykey" json:"id"`
	Title        string       `gorm:"not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	Status       TaskStatus   `gorm:"type:varchar(20);not null;default:'ToDo';index" json:"status"`
	Priority     TaskPriority `gorm:"type:varchar(20);not null;default:'Medium'" json:"priority"`
	DueDate      *time.Time   `gorm:"index" json:"due_date"`
	CreatedByID  uint64       `gorm:"not null;index" json:"created_by_id"`
	AssignedToID *uint64      `gorm:"index" json:"assigned_to_id"`
	TeamID       *uint64      `gorm:"index" json:"team_id"`
	CreatedAt    time.Time    `gorm:"index" json:"created_at"`
	// UpdatedAt stays nil until the first update; the service stamps it,
	// so gorm's automatic tracking is off.
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

// IsOverdue reports whether the task is past due and not finished.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != TaskStatusDone
}
