package entity

import "time"

type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// User is a read-only snapshot of an account as served by the backend.
type User struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	ClassLevel string    `json:"class_level,omitempty"` // meaningful for students only
	IsActive   bool      `json:"is_active"`
	JoinedAt   time.Time `json:"joined_at"`
}

func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
