package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/repository"
)

type CommentServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *CommentService
}

func (suite *CommentServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())

	suite.service = NewCommentService(
		repository.NewCommentRepository(suite.db),
		repository.NewTaskRepository(suite.db),
		repository.NewUserRepository(suite.db),
	)
}

func (suite *CommentServiceTestSuite) TestAdd_Success() {
	author := createTestUser(suite.db, "author@example.com", models.RoleUser)
	task := createTestTask(suite.db, "Discussed", author.ID, nil, nil)

	info, err := suite.service.Add(task.ID, "Looks good", author.ID)

	suite.Require().NoError(err)
	suite.Equal("Looks good", info.Comment.Content)
	suite.Equal(task.ID, info.Comment.TaskID)
	suite.Require().NotNil(info.Author)
	suite.Equal(author.ID, info.Author.ID)
}

func (suite *CommentServiceTestSuite) TestAdd_EmptyContent() {
	author := createTestUser(suite.db, "author@example.com", models.RoleUser)
	task := createTestTask(suite.db, "Discussed", author.ID, nil, nil)

	_, err := suite.service.Add(task.ID, "   ", author.ID)

	suite.ErrorIs(err, ErrContentRequired)
}

func (suite *CommentServiceTestSuite) TestAdd_UnknownTask() {
	author := createTestUser(suite.db, "author@example.com", models.RoleUser)

	_, err := suite.service.Add(9999, "Orphan", author.ID)

	suite.ErrorIs(err, ErrTaskNotFound)
}

func (suite *CommentServiceTestSuite) TestListForTask_OldestFirst() {
	author := createTestUser(suite.db, "author@example.com", models.RoleUser)
	task := createTestTask(suite.db, "Discussed", author.ID, nil, nil)
	createTestComment(suite.db, task.ID, author.ID, "first")
	createTestComment(suite.db, task.ID, author.ID, "second")

	infos, err := suite.service.ListForTask(task.ID)

	suite.Require().NoError(err)
	suite.Require().Len(infos, 2)
	suite.Equal("first", infos[0].Comment.Content)
	suite.Equal("second", infos[1].Comment.Content)
	suite.Require().NotNil(infos[0].Author)
	suite.Equal("author@example.com", infos[0].Author.Email)
}

func (suite *CommentServiceTestSuite) TestDelete_AuthorOnly() {
	author := createTestUser(suite.db, "author@example.com", models.RoleUser)
	admin := createTestUser(suite.db, "admin@example.com", models.RoleAdmin)
	task := createTestTask(suite.db, "Discussed", author.ID, nil, nil)
	comment := createTestComment(suite.db, task.ID, author.ID, "mine")

	// The author-only rule has no role escape hatch.
	err := suite.service.Delete(comment.ID, admin.ID)
	suite.ErrorIs(err, ErrNotCommentAuthor)

	err = suite.service.Delete(comment.ID, author.ID)
	suite.Require().NoError(err)

	var count int64
	suite.db.Model(&models.Comment{}).Count(&count)
	suite.EqualValues(0, count)
}

func (suite *CommentServiceTestSuite) TestDelete_UnknownComment() {
	author := createTestUser(suite.db, "author@example.com", models.RoleUser)

	err := suite.service.Delete(9999, author.ID)

	suite.ErrorIs(err, ErrCommentNotFound)
}

func TestCommentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}
