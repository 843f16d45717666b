package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/taskboard/taskboard-api/internal/dto"
	apierrors "github.com/taskboard/taskboard-api/internal/errors"
	"github.com/taskboard/taskboard-api/internal/middleware"
	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/services"
	"github.com/taskboard/taskboard-api/internal/utils"
)

type TaskHandler struct {
	taskService *services.TaskService
	aiService   *services.AIService
}

func NewTaskHandler(taskService *services.TaskService, aiService *services.AIService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		aiService:   aiService,
	}
}

// ListTasks returns the caller's visible tasks, newest first, paginated
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.List(userID, role)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	params := utils.GetPaginationParams(c)
	page, total := utils.Slice(tasks, params)

	details, err := h.taskService.Describe(page)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TaskListResponse{
		Tasks: dto.ToTaskDTOs(details),
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// ListMyTasks returns tasks assigned to the caller plus tasks of teams the
// caller belongs to, whatever the caller's role
func (h *TaskHandler) ListMyTasks(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListForUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	details, err := h.taskService.Describe(tasks)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(details)})
}

// GetTask returns a single task the caller may view
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.Get(id, userID, role)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	details, err := h.taskService.Describe([]models.Task{*task})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(details[0]))
}

// CreateTask creates a task; route-gated to Admin and Manager
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Create(services.CreateTaskInput{
		Title:        req.Title,
		Description:  req.Description,
		Priority:     req.Priority,
		DueDate:      req.DueDate,
		AssignedToID: req.AssignedToID,
		TeamID:       req.TeamID,
	}, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	details, err := h.taskService.Describe([]models.Task{*task})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(details[0]))
}

// UpdateTask applies a partial update to a task the caller may mutate
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Update(id, services.UpdateTaskInput{
		Title:        req.Title,
		Description:  req.Description,
		Status:       req.Status,
		Priority:     req.Priority,
		DueDate:      req.DueDate,
		AssignedToID: req.AssignedToID,
		TeamID:       req.TeamID,
	}, userID, role)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	details, err := h.taskService.Describe([]models.Task{*task})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(details[0]))
}

// DeleteTask hard-deletes a task and its comments
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(id, userID, role); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// FilterTasks narrows the caller's visible tasks by status, priority and
// overdue-only
func (h *TaskHandler) FilterTasks(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}

	var filter services.TaskFilter

	if raw := c.Query("status"); raw != "" {
		status, ok := models.ParseTaskStatus(raw)
		if !ok {
			apierrors.BadRequest(c, "Invalid status")
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("priority"); raw != "" {
		priority, ok := models.ParseTaskPriority(raw)
		if !ok {
			apierrors.BadRequest(c, "Invalid priority")
			return
		}
		filter.Priority = &priority
	}
	if raw := c.Query("overdue"); raw != "" {
		overdue, err := strconv.ParseBool(raw)
		if err != nil {
			apierrors.BadRequest(c, "Invalid overdue flag")
			return
		}
		filter.OverdueOnly = overdue
	}

	tasks, err := h.taskService.Filter(userID, role, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	details, err := h.taskService.Describe(tasks)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(details)})
}

// GenerateTasks extracts task drafts from free text via the AI service
func (h *TaskHandler) GenerateTasks(c *gin.Context) {
	if _, _, ok := caller(c); !ok {
		return
	}

	var req dto.GenerateTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	drafts, err := h.aiService.DraftTasksFromText(c.Request.Context(), req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": drafts})
}

// caller extracts the verified identity placed in the context by
// RequireAuth.
func caller(c *gin.Context) (uint64, models.Role, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return 0, "", false
	}
	role, exists := middleware.GetRole(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return 0, "", false
	}
	return userID, role, true
}

// pathID parses a numeric id path parameter.
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}
