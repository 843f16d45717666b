package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskboard/taskboard-api/internal/dto"
	apierrors "github.com/taskboard/taskboard-api/internal/errors"
	"github.com/taskboard/taskboard-api/internal/services"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// ListTeams returns the teams visible to the caller
func (h *TeamHandler) ListTeams(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}

	teams, err := h.teamService.List(userID, role)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": dto.ToTeamDTOs(teams)})
}

// GetTeam returns one team with its manager and member list
func (h *TeamHandler) GetTeam(c *gin.Context) {
	if _, _, ok := caller(c); !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.teamService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDetailDTO(*detail))
}

// CreateTeam creates a team; route-gated to Admin and Manager
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}

	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	team, err := h.teamService.Create(services.CreateTeamInput{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
	}, userID, role)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeamDTO(*team))
}

// AddMember adds a user to a team. The service enforces that only the
// team's manager may do this.
func (h *TeamHandler) AddMember(c *gin.Context) {
	callerID, _, ok := caller(c)
	if !ok {
		return
	}

	teamID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.teamService.AddMember(teamID, userID, callerID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member added"})
}

// RemoveMember removes a user from a team under the same manager-only rule
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	callerID, _, ok := caller(c)
	if !ok {
		return
	}

	teamID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.teamService.RemoveMember(teamID, userID, callerID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed"})
}
