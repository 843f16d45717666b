package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/repository"
)

// CommentService provides business logic for task comments.
type CommentService struct {
	commentRepo repository.CommentRepository
	taskRepo    repository.TaskRepository
	userRepo    repository.UserRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, taskRepo repository.TaskRepository, userRepo repository.UserRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		userRepo:    userRepo,
	}
}

// Add creates a comment on an existing task and returns it with the
// author resolved.
func (s *CommentService) Add(taskID uint64, content string, authorID uint64) (*CommentInfo, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	comment := &models.Comment{
		Content:   content,
		TaskID:    taskID,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	info := &CommentInfo{Comment: *comment}
	if author, err := s.userRepo.FindByID(authorID); err == nil {
		info.Author = author
	}

	return info, nil
}

// CommentInfo pairs a comment with its author's user record.
type CommentInfo struct {
	Comment models.Comment
	Author  *models.User
}

// ListForTask returns a task's comments oldest first, with authors
// resolved.
func (s *CommentService) ListForTask(taskID uint64) ([]CommentInfo, error) {
	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	comments, err := s.commentRepo.ListByTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	authors := make(map[uint64]*models.User)
	infos := make([]CommentInfo, 0, len(comments))
	for _, comment := range comments {
		info := CommentInfo{Comment: comment}
		author, ok := authors[comment.AuthorID]
		if !ok {
			author, _ = s.userRepo.FindByID(comment.AuthorID)
			authors[comment.AuthorID] = author
		}
		info.Author = author
		infos = append(infos, info)
	}

	return infos, nil
}

// Delete removes a comment. Only the author may delete it; the rule holds
// for every role, Admin included.
func (s *CommentService) Delete(commentID, callerID uint64) error {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("failed to find comment: %w", err)
	}

	if comment.AuthorID != callerID {
		return ErrNotCommentAuthor
	}

	if err := s.commentRepo.Delete(comment.ID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}
