// File: internal/common/context_keys.go
package common

const (
	// AuthorizationHeader is the header name for authorization token
	AuthorizationHeader = "Authorization"
	// AuthorizationTypeBearer is the prefix for Bearer tokens
	AuthorizationTypeBearer = "Bearer"
	// UserIDKey is the context key for storing the authenticated user's ID
	UserIDKey = "userID"
	// UsernameKey is the context key for storing the authenticated user's username
	UsernameKey = "username"
	// UserRoleKey is the context key for storing the authenticated user's role
	UserRoleKey = "userRole"
)

// User roles recognized by the portal.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)
