package constants

const (
	// ContextKeyUserID is the gin context key holding the verified caller id.
	ContextKeyUserID = "user_id"
	// ContextKeyRole is the gin context key holding the verified caller role.
	ContextKeyRole = "role"

	MinPasswordLength = 8

	DefaultPageSize = 20
	MinPageSize     = 1
	MaxPageSize     = 100

	MaxAIGeneratedTasks = 20
)
