package entity

import "time"

type SubmissionStatus string

const (
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionGraded    SubmissionStatus = "graded"
)

// Assignment belongs to a course. When fetched on behalf of a student the
// backend attaches that student's submission, if any.
type Assignment struct {
	ID          string      `json:"id"`
	CourseID    string      `json:"course_id"`
	Title       string      `json:"title"`
	DueAt       time.Time   `json:"due_at"`
	TotalPoints float64     `json:"total_points"`
	Submission  *Submission `json:"submission,omitempty"`
}

type Submission struct {
	ID           string           `json:"id"`
	AssignmentID string           `json:"assignment_id"`
	UserID       string           `json:"user_id"`
	Status       SubmissionStatus `json:"status"`
	Grade        *float64         `json:"grade,omitempty"` // bounded by the assignment's total points
	Feedback     string           `json:"feedback,omitempty"`
	SubmittedAt  time.Time        `json:"submitted_at"`
	GradedAt     *time.Time       `json:"graded_at,omitempty"`
}
