package entity

import "time"

type Course struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	InstructorID string    `json:"instructor_id"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Enrollment links a student to a course.
type Enrollment struct {
	UserID        string        `json:"user_id"`
	CourseID      string        `json:"course_id"`
	Progress      int           `json:"progress"` // 0-100
	PaymentStatus PaymentStatus `json:"payment_status"`
	EnrolledAt    time.Time     `json:"enrolled_at"`
}
