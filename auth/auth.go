package auth

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrUserNotFound       = errors.New("auth: user not found")
	ErrUserExists         = errors.New("auth: user already exists")
	ErrNotAuthorized      = errors.New("auth: not authorized")
)

// Role determines what a signed-in user may do in the admin panel.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleEditor        Role = "editor"
)

// User is an admin panel account. Credentials are stored in plain text, this
// is a demo login surface and never a real identity system.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      Role       `json:"role"`
	Password  string     `json:"password,omitempty"`
	Avatar    string     `json:"avatar,omitempty"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// Service implements the mock admin login.
type Service interface {
	// Authenticate matches email and password against the user directory and
	// records the login time. The returned user has its password cleared.
	Authenticate(ctx context.Context, email, password string) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	AddUser(ctx context.Context, user User) (*User, error)
}

// RequireRole guards admin operations that are limited to specific roles.
func RequireRole(user *User, roles ...Role) error {
	if user == nil {
		return ErrNotAuthorized
	}
	for _, role := range roles {
		if user.Role == role {
			return nil
		}
	}
	return ErrNotAuthorized
}
