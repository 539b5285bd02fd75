package entity

import "time"

// Notification represents a notification delivered to a user.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// InstructorStats are backend-computed analytics for an instructor's
// courses. Engagement is nil until the backend starts reporting it.
type InstructorStats struct {
	ActiveStudents int  `json:"active_students"`
	CompletionRate int  `json:"completion_rate"`
	Engagement     *int `json:"engagement,omitempty"`
}
