package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/repository"
)

type TaskServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	service  *TaskService
	notifier *fakeNotifier
}

func (suite *TaskServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())

	taskRepo := repository.NewTaskRepository(suite.db)
	teamRepo := repository.NewTeamRepository(suite.db)
	userRepo := repository.NewUserRepository(suite.db)
	access := NewAccessResolver(taskRepo, teamRepo)

	suite.notifier = &fakeNotifier{}
	suite.service = NewTaskService(taskRepo, teamRepo, userRepo, access, suite.notifier, zap.NewNop().Sugar())
}

func (suite *TaskServiceTestSuite) TestCreate_DefaultsAndNotification() {
	manager := createTestUser(suite.db, "manager@example.com", models.RoleManager)
	assignee := createTestUser(suite.db, "assignee@example.com", models.RoleUser)

	task, err := suite.service.Create(CreateTaskInput{
		Title:        "New Task",
		AssignedToID: ptr(assignee.ID),
	}, manager.ID)

	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusToDo, task.Status)
	suite.Equal(models.TaskPriorityMedium, task.Priority)
	suite.Equal(manager.ID, task.CreatedByID)
	suite.Len(suite.notifier.assignments, 1)
	suite.Equal("assignee@example.com:New Task", suite.notifier.assignments[0])
}

func (suite *TaskServiceTestSuite) TestCreate_EmptyTitle() {
	manager := createTestUser(suite.db, "manager@example.com", models.RoleManager)

	_, err := suite.service.Create(CreateTaskInput{Title: ""}, manager.ID)

	suite.ErrorIs(err, ErrTitleRequired)
}

func (suite *TaskServiceTestSuite) TestCreate_ZeroRefsTreatedAsUnset() {
	manager := createTestUser(suite.db, "manager@example.com", models.RoleManager)

	task, err := suite.service.Create(CreateTaskInput{
		Title:        "No refs",
		AssignedToID: ptr(0),
		TeamID:       ptr(0),
	}, manager.ID)

	suite.Require().NoError(err)
	suite.Nil(task.AssignedToID)
	suite.Nil(task.TeamID)
	suite.Empty(suite.notifier.assignments)
}

func (suite *TaskServiceTestSuite) TestCreate_UpdatedAtNilUntilFirstUpdate() {
	manager := createTestUser(suite.db, "manager@example.com", models.RoleManager)

	created, err := suite.service.Create(CreateTaskInput{Title: "Fresh"}, manager.ID)
	suite.Require().NoError(err)
	suite.Nil(created.UpdatedAt)

	var stored models.Task
	suite.Require().NoError(suite.db.First(&stored, created.ID).Error)
	suite.Nil(stored.UpdatedAt)

	newTitle := "Touched"
	updated, err := suite.service.Update(created.ID, UpdateTaskInput{
		Title: &newTitle,
	}, manager.ID, models.RoleManager)
	suite.Require().NoError(err)
	suite.NotNil(updated.UpdatedAt)
}

func (suite *TaskServiceTestSuite) TestGet_NotFoundVsAccessDenied() {
	manager := createTestUser(suite.db, "manager@example.com", models.RoleManager)
	outsider := createTestUser(suite.db, "outsider@example.com", models.RoleUser)
	task := createTestTask(suite.db, "Private", manager.ID, nil, nil)

	_, err := suite.service.Get(task.ID+100, manager.ID, models.RoleManager)
	suite.ErrorIs(err, ErrTaskNotFound)

	_, err = suite.service.Get(task.ID, outsider.ID, models.RoleUser)
	suite.ErrorIs(err, ErrAccessDenied)
}

func (suite *TaskServiceTestSuite) TestUpdate_PartialLeavesOtherFieldsAlone() {
	manager := createTestUser(suite.db, "manager@example.com", models.RoleManager)
	assignee := createTestUser(suite.db, "assignee@example.com", models.RoleUser)
	task := createTestTask(suite.db, "Original", manager.ID, ptr(assignee.ID), nil)

	newTitle := "Renamed"
	updated, err := suite.service.Update(task.ID, UpdateTaskInput{
		Title: &newTitle,
	}, manager.ID, models.RoleManager)

	suite.Require().NoError(err)
	suite.Equal("Renamed", updated.Title)
	suite.Equal(task.Description, updated.Description)
	suite.Equal(task.Status, updated.Status)
	suite.Require().NotNil(updated.AssignedToID)
	suite.Equal(assignee.ID, *updated.AssignedToID)
	suite.NotNil(updated.UpdatedAt)
}

func (suite *TaskServiceTestSuite) TestUpdate_ZeroClearsAssignee() {
	manager := createTestUser(suite.db, "manager@example.com", models.RoleManager)
	assignee := createTestUser(suite.db, "assignee@example.com", models.RoleUser)
	task := createTestTask(suite.db, "Assigned", manager.ID, ptr(assignee.ID), nil)

	updated, err := suite.service.Update(task.ID, UpdateTaskInput{
		AssignedToID: ptr(0),
	}, manager.ID, models.RoleManager)

	suite.Require().NoError(err)
	suite.Nil(updated.AssignedToID)
}

func (suite *TaskServiceTestSuite) TestUpdate_StatusChangeNotifiesAssignee() {
	manager := createTestUser(suite.db, "manager@example.com", models.RoleManager)
	assignee := createTestUser(suite.db, "assignee@example.com", models.RoleUser)
	task := createTestTask(suite.db, "Tracked", manager.ID, ptr(assignee.ID), nil)

	status := string(models.TaskStatusInProgress)
	_, err := suite.service.Update(task.ID, UpdateTaskInput{
		Status: &status,
	}, manager.ID, models.RoleManager)

	suite.Require().NoError(err)
	suite.Len(suite.notifier.statusChanges, 1)
	suite.Equal("assignee@example.com:Tracked:InProgress", suite.notifier.statusChanges[0])
}

func (suite *TaskServiceTestSuite) TestUpdate_NotificationFailureDoesNotFailUpdate() {
	manager := createTestUser(suite.db, "manager@example.com", models.RoleManager)
	assignee := createTestUser(suite.db, "assignee@example.com", models.RoleUser)
	task := createTestTask(suite.db, "Tracked", manager.ID, ptr(assignee.ID), nil)
	suite.notifier.failWith = gorm.ErrInvalidDB

	status := string(models.TaskStatusDone)
	updated, err := suite.service.Update(task.ID, UpdateTaskInput{
		Status: &status,
	}, manager.ID, models.RoleManager)

	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusDone, updated.Status)
}

func (suite *TaskServiceTestSuite) TestUpdate_InvalidStatus() {
	manager := createTestUser(suite.db, "manager@example.com", models.RoleManager)
	task := createTestTask(suite.db, "Tracked", manager.ID, nil, nil)

	status := "Cancelled"
	_, err := suite.service.Update(task.ID, UpdateTaskInput{
		Status: &status,
	}, manager.ID, models.RoleManager)

	suite.ErrorIs(err, ErrInvalidStatus)
}

func (suite *TaskServiceTestSuite) TestUpdate_AccessDeniedForNonCreatorUser() {
	manager := createTestUser(suite.db, "manager@example.com", models.RoleManager)
	user := createTestUser(suite.db, "user@example.com", models.RoleUser)
	task := createTestTask(suite.db, "Protected", manager.ID, ptr(user.ID), nil)

	newTitle := "Hijacked"
	_, err := suite.service.Update(task.ID, UpdateTaskInput{
		Title: &newTitle,
	}, user.ID, models.RoleUser)

	suite.ErrorIs(err, ErrAccessDenied)
}

func (suite *TaskServiceTestSuite) TestDelete_RemovesComments() {
	manager := createTestUser(suite.db, "manager@example.com", models.RoleManager)
	task := createTestTask(suite.db, "Doomed", manager.ID, nil, nil)
	createTestComment(suite.db, task.ID, manager.ID, "first")
	createTestComment(suite.db, task.ID, manager.ID, "second")

	err := suite.service.Delete(task.ID, manager.ID, models.RoleManager)
	suite.Require().NoError(err)

	var taskCount, commentCount int64
	suite.db.Model(&models.Task{}).Count(&taskCount)
	suite.db.Model(&models.Comment{}).Count(&commentCount)
	suite.EqualValues(0, taskCount)
	suite.EqualValues(0, commentCount)
}

func (suite *TaskServiceTestSuite) TestFilter_OverdueExcludesDone() {
	manager := createTestUser(suite.db, "manager@example.com", models.RoleManager)

	past := time.Now().Add(-48 * time.Hour)
	overdue := createTestTask(suite.db, "Overdue", manager.ID, nil, nil)
	suite.db.Model(overdue).Update("due_date", past)

	done := createTestTask(suite.db, "Done late", manager.ID, nil, nil)
	suite.db.Model(done).Updates(map[string]interface{}{
		"due_date": past,
		"status":   models.TaskStatusDone,
	})

	createTestTask(suite.db, "No due date", manager.ID, nil, nil)

	tasks, err := suite.service.Filter(manager.ID, models.RoleManager, TaskFilter{OverdueOnly: true})

	suite.Require().NoError(err)
	suite.Require().Len(tasks, 1)
	suite.Equal(overdue.ID, tasks[0].ID)
}

func (suite *TaskServiceTestSuite) TestFilter_StatusAndPriority() {
	manager := createTestUser(suite.db, "manager@example.com", models.RoleManager)

	match := createTestTask(suite.db, "Match", manager.ID, nil, nil)
	suite.db.Model(match).Update("priority", models.TaskPriorityHigh)

	wrongPriority := createTestTask(suite.db, "Wrong priority", manager.ID, nil, nil)
	suite.db.Model(wrongPriority).Update("priority", models.TaskPriorityLow)

	status := models.TaskStatusToDo
	priority := models.TaskPriorityHigh
	tasks, err := suite.service.Filter(manager.ID, models.RoleManager, TaskFilter{
		Status:   &status,
		Priority: &priority,
	})

	suite.Require().NoError(err)
	suite.Require().Len(tasks, 1)
	suite.Equal(match.ID, tasks[0].ID)
}

func (suite *TaskServiceTestSuite) TestDescribe_ResolvesNames() {
	manager := createTestUser(suite.db, "manager@example.com", models.RoleManager)
	assignee := createTestUser(suite.db, "assignee@example.com", models.RoleUser)
	team := createTestTeam(suite.db, "Platform", manager.ID)
	task := createTestTask(suite.db, "Described", manager.ID, ptr(assignee.ID), ptr(team.ID))

	details, err := suite.service.Describe([]models.Task{*task})

	suite.Require().NoError(err)
	suite.Require().Len(details, 1)
	suite.Equal("Test User", details[0].CreatedByName)
	suite.Require().NotNil(details[0].AssignedToName)
	suite.Equal("Test User", *details[0].AssignedToName)
	suite.Require().NotNil(details[0].TeamName)
	suite.Equal("Platform", *details[0].TeamName)
}

func (suite *TaskServiceTestSuite) TestDescribe_DanglingReferencesRenderAsMissing() {
	manager := createTestUser(suite.db, "manager@example.com", models.RoleManager)
	task := createTestTask(suite.db, "Orphaned", manager.ID, ptr(manager.ID+100), ptr(uint64(999)))

	details, err := suite.service.Describe([]models.Task{*task})

	suite.Require().NoError(err)
	suite.Require().Len(details, 1)
	suite.Equal("Test User", details[0].CreatedByName)
	suite.Nil(details[0].AssignedToName)
	suite.Nil(details[0].TeamName)
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
