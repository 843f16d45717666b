package services

import "errors"

// Service errors. Handlers map each to exactly one HTTP status; a missing
// entity and an existing-but-out-of-scope entity are distinct on purpose.
var (
	// ErrUserNotFound signals a user id or email that does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrTaskNotFound signals a missing task.
	ErrTaskNotFound = errors.New("task not found")
	// ErrTeamNotFound signals a missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrCommentNotFound signals a missing comment.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrAccessDenied signals a task that exists but is outside the caller's scope.
	ErrAccessDenied = errors.New("access denied")
	// ErrNotTeamManager signals a membership change by someone other than the team's manager.
	ErrNotTeamManager = errors.New("only the team manager can modify members")
	// ErrNotCommentAuthor signals a comment deletion by someone other than its author.
	ErrNotCommentAuthor = errors.New("only the comment author can delete it")
	// ErrRoleNotAllowed signals an operation outside the caller's role.
	ErrRoleNotAllowed = errors.New("role not allowed to perform this action")

	// ErrEmailTaken signals a duplicate registration email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrAlreadyTeamMember signals a duplicate (team, user) membership.
	ErrAlreadyTeamMember = errors.New("user is already a team member")
	// ErrMemberNotFound signals removal of a (team, user) pair that is not
	// a membership.
	ErrMemberNotFound = errors.New("user is not a team member")

	// ErrInvalidCredentials signals a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTitleRequired signals a task without a title.
	ErrTitleRequired = errors.New("title is required")
	// ErrNameRequired signals a team without a name.
	ErrNameRequired = errors.New("name is required")
	// ErrContentRequired signals a comment without content.
	ErrContentRequired = errors.New("content is required")
	// ErrEmailRequired signals a registration without an email.
	ErrEmailRequired = errors.New("email is required")
	// ErrPasswordTooShort signals a password under the minimum length.
	ErrPasswordTooShort = errors.New("password too short")
	// ErrInvalidRole signals a role outside the closed set.
	ErrInvalidRole = errors.New("invalid role")
	// ErrInvalidStatus signals a status outside the closed set.
	ErrInvalidStatus = errors.New("invalid task status")
	// ErrInvalidPriority signals a priority outside the closed set.
	ErrInvalidPriority = errors.New("invalid task priority")
)
