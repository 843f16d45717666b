package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apierrors "github.com/taskboard/taskboard-api/internal/errors"
	"github.com/taskboard/taskboard-api/internal/services"
)

// respondServiceError maps a service error onto exactly one HTTP status.
// NotFound and Forbidden stay distinct: an id that does not resolve is
// 404, an entity that exists but is out of the caller's scope is 403.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCommentNotFound):
		apierrors.NotFound(c, err.Error())

	case errors.Is(err, services.ErrAccessDenied),
		errors.Is(err, services.ErrNotTeamManager),
		errors.Is(err, services.ErrNotCommentAuthor),
		errors.Is(err, services.ErrRoleNotAllowed):
		apierrors.Forbidden(c, err.Error())

	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrAlreadyTeamMember),
		errors.Is(err, services.ErrMemberNotFound):
		apierrors.Conflict(c, err.Error())

	case errors.Is(err, services.ErrAIServiceNotConfigured):
		apierrors.ServiceUnavailable(c, err.Error())

	case errors.Is(err, services.ErrAINoTasksGenerated):
		apierrors.BadRequest(c, err.Error())

	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c, err.Error())

	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrContentRequired),
		errors.Is(err, services.ErrEmailRequired),
		errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPriority):
		apierrors.BadRequest(c, err.Error())

	default:
		apierrors.InternalError(c, "")
	}
}
