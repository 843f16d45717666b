// Package notify delivers task notifications. Delivery is best-effort:
// callers invoke it after their transaction commits and log failures
// instead of propagating them.
package notify

type Notifier interface {
	// NotifyAssignment tells a user they have been assigned a task.
	NotifyAssignment(email, taskTitle string) error

	// NotifyStatusChange tells a task's assignee the status changed.
	NotifyStatusChange(email, taskTitle, newStatus string) error
}
