package notify

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/taskboard/taskboard-api/internal/config"
)

// EmailNotifier sends notification mail over SMTP.
type EmailNotifier struct {
	cfg *config.Config
	log *zap.SugaredLogger
}

func NewEmailNotifier(cfg *config.Config, log *zap.SugaredLogger) *EmailNotifier {
	return &EmailNotifier{
		cfg: cfg,
		log: log,
	}
}

func (n *EmailNotifier) NotifyAssignment(email, taskTitle string) error {
	subject := fmt.Sprintf("New Task Assigned - %s", taskTitle)
	body := fmt.Sprintf("You have been assigned a new task: %s", taskTitle)
	return n.send(email, subject, body)
}

func (n *EmailNotifier) NotifyStatusChange(email, taskTitle, newStatus string) error {
	subject := fmt.Sprintf("Task Status Updated - %s", taskTitle)
	body := fmt.Sprintf("Task %q status changed to %s", taskTitle, newStatus)
	return n.send(email, subject, body)
}

func (n *EmailNotifier) send(toEmail, subject, body string) error {
	if n.cfg.SMTPHost == "" || n.cfg.FromEmail == "" {
		n.log.Warnw("smtp config missing, skipping notification", "to", toEmail)
		return nil
	}
	if toEmail == "" {
		n.log.Warnw("notification recipient empty, skipping")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.FromEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(n.cfg.SMTPHost, n.cfg.SMTPPort, n.cfg.SMTPUser, n.cfg.SMTPPass)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	n.log.Infow("notification email sent", "to", toEmail, "subject", subject)
	return nil
}
