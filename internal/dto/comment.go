package dto

import (
	"time"

	"github.com/taskboard/taskboard-api/internal/services"
)

// CreateCommentRequest is the payload for adding a comment
type CreateCommentRequest struct {
	TaskID  uint64 `json:"task_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CommentDTO represents a comment in API responses
type CommentDTO struct {
	ID         uint64    `json:"id"`
	Content    string    `json:"content"`
	TaskID     uint64    `json:"task_id"`
	AuthorID   uint64    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToCommentDTO converts a resolved comment to CommentDTO
func ToCommentDTO(info services.CommentInfo) CommentDTO {
	dto := CommentDTO{
		ID:         info.Comment.ID,
		Content:    info.Comment.Content,
		TaskID:     info.Comment.TaskID,
		AuthorID:   info.Comment.AuthorID,
		AuthorName: "Unknown",
		CreatedAt:  info.Comment.CreatedAt,
	}
	if info.Author != nil {
		dto.AuthorName = info.Author.FirstName + " " + info.Author.LastName
	}
	return dto
}

// ToCommentDTOs converts a slice of resolved comments
func ToCommentDTOs(infos []services.CommentInfo) []CommentDTO {
	dtos := make([]CommentDTO, len(infos))
	for i, info := range infos {
		dtos[i] = ToCommentDTO(info)
	}
	return dtos
}
