package core

import (
	"time"

	"dietlog/internal/repository"
)

// AuthMessage carries credentials for login and registration.
type AuthMessage struct {
	Username string
	Password string
}

// AuthUser identifies the caller resolved from a session cookie. It is
// passed explicitly into every operation that needs authorization.
type AuthUser struct {
	ID        uint
	Username  string
	Role      string
	SessionID string
}

// CanModifyUser reports whether the caller may change the given account.
// Role "user" is limited to its own account; admins may target anyone. The
// rule is checked before any other handling of the request.
func (a AuthUser) CanModifyUser(id uint) bool {
	return a.Role == repository.RoleAdmin || a.ID == id
}

// MealMessage is the validated input for creating or fully replacing a meal.
type MealMessage struct {
	Name        string
	Description string
	EatenAt     time.Time
	InDiet      bool
}

type UserRecord struct {
	ID       uint
	Username string
}

type MealRecord struct {
	ID          uint
	Name        string
	Description string
	EatenAt     time.Time
	InDiet      bool
	UserID      uint
}
