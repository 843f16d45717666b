package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskboard/taskboard-api/internal/dto"
	"github.com/taskboard/taskboard-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers returns all active users, for assignee pickers
func (h *UserHandler) ListUsers(c *gin.Context) {
	if _, _, ok := caller(c); !ok {
		return
	}

	users, err := h.userService.ListActive()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": dto.ToUserDTOs(users)})
}

// ListManagers returns all active users holding the Manager role
func (h *UserHandler) ListManagers(c *gin.Context) {
	if _, _, ok := caller(c); !ok {
		return
	}

	users, err := h.userService.ListManagers()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": dto.ToUserDTOs(users)})
}
