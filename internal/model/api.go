// Package model holds the wire shapes of the backend HTTP/JSON API.
// Timestamps travel as RFC 3339 strings and are parsed by the repo mapper.
package model

type User struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	ClassLevel string `json:"class_level"`
	IsActive   bool   `json:"is_active"`
	JoinedAt   string `json:"joined_at"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Course struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	InstructorID string  `json:"instructor_id"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	Published    bool    `json:"published"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type Enrollment struct {
	UserID        string `json:"user_id"`
	CourseID      string `json:"course_id"`
	Progress      int    `json:"progress"`
	PaymentStatus string `json:"payment_status"`
	EnrolledAt    string `json:"enrolled_at"`
}

type Assignment struct {
	ID          string      `json:"id"`
	CourseID    string      `json:"course_id"`
	Title       string      `json:"title"`
	DueAt       string      `json:"due_at"`
	TotalPoints float64     `json:"total_points"`
	Submission  *Submission `json:"submission,omitempty"`
}

type Submission struct {
	ID           string   `json:"id"`
	AssignmentID string   `json:"assignment_id"`
	UserID       string   `json:"user_id"`
	Status       string   `json:"status"`
	Grade        *float64 `json:"grade,omitempty"`
	Feedback     string   `json:"feedback,omitempty"`
	SubmittedAt  string   `json:"submitted_at"`
	GradedAt     *string  `json:"graded_at,omitempty"`
}

type Payment struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	CourseID      string  `json:"course_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	TransactionID string  `json:"transaction_id"`
	CreatedAt     string  `json:"created_at"`
}

type Notification struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

type InstructorStats struct {
	ActiveStudents int  `json:"active_students"`
	CompletionRate int  `json:"completion_rate"`
	Engagement     *int `json:"engagement,omitempty"`
}
