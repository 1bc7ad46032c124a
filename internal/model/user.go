package model

import "time"

// Roles a user can be registered with. The role is stored and echoed
// back to clients; it does not gate any route.
const (
	RoleWorker  = "worker"
	RoleForeman = "foreman"
	RoleAdmin   = "admin"
)

func ValidRole(role string) bool {
	switch role {
	case RoleWorker, RoleForeman, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type AuthClaims struct {
	UserID   string `json:"sub"`
	Username string `json:"username"`
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
