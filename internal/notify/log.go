package notify

import "go.uber.org/zap"

// LogNotifier writes notifications to the log. Used when no SMTP host is
// configured, typically in development.
type LogNotifier struct {
	log *zap.SugaredLogger
}

func NewLogNotifier(log *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyAssignment(email, taskTitle string) error {
	n.log.Infow("task assignment notification", "to", email, "task", taskTitle)
	return nil
}

func (n *LogNotifier) NotifyStatusChange(email, taskTitle, newStatus string) error {
	n.log.Infow("task status change notification", "to", email, "task", taskTitle, "status", newStatus)
	return nil
}
