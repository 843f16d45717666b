package services

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/taskboard/taskboard-api/internal/models"
)

// setupTestDB opens an in-memory SQLite database with the schema
// migrated. TranslateError is on so unique-index violations surface as
// gorm.ErrDuplicatedKey, same as in production.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Task{},
		&models.Comment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access test database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func createTestUser(db *gorm.DB, email string, role models.Role) *models.User {
	user := &models.User{
		Email:        email,
		PasswordHash: "hashedpassword",
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
		CreatedAt:    time.Now(),
		IsActive:     true,
	}
	db.Create(user)
	return user
}

func createTestTeam(db *gorm.DB, name string, managerID uint64) *models.Team {
	team := &models.Team{
		Name:      name,
		ManagerID: managerID,
		CreatedAt: time.Now(),
		IsActive:  true,
	}
	db.Create(team)
	return team
}

func createTestMember(db *gorm.DB, teamID, userID uint64) *models.TeamMember {
	member := &models.TeamMember{
		TeamID:   teamID,
		UserID:   userID,
		JoinedAt: time.Now(),
	}
	db.Create(member)
	return member
}

func createTestTask(db *gorm.DB, title string, createdByID uint64, assignedToID, teamID *uint64) *models.Task {
	task := &models.Task{
		Title:        title,
		Description:  "Test Description",
		Status:       models.TaskStatusToDo,
		Priority:     models.TaskPriorityMedium,
		CreatedByID:  createdByID,
		AssignedToID: assignedToID,
		TeamID:       teamID,
		CreatedAt:    time.Now(),
	}
	db.Create(task)
	return task
}

func createTestComment(db *gorm.DB, taskID, authorID uint64, content string) *models.Comment {
	comment := &models.Comment{
		Content:   content,
		TaskID:    taskID,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}
	db.Create(comment)
	return comment
}

func ptr(id uint64) *uint64 {
	return &id
}

// fakeNotifier records deliveries for assertions.
type fakeNotifier struct {
	assignments   []string
	statusChanges []string
	failWith      error
}

func (f *fakeNotifier) NotifyAssignment(email, taskTitle string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.assignments = append(f.assignments, fmt.Sprintf("%s:%s", email, taskTitle))
	return nil
}

func (f *fakeNotifier) NotifyStatusChange(email, taskTitle, newStatus string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.statusChanges = append(f.statusChanges, fmt.Sprintf("%s:%s:%s", email, taskTitle, newStatus))
	return nil
}
