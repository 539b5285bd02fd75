package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"coursedeck/internal/entity"
	"coursedeck/internal/model"
)

type AssignmentRepository interface {
	// ListForStudent returns the student's assignments across enrolled
	// courses, each with that student's submission attached when present.
	ListForStudent(ctx context.Context, token, studentID string) ([]entity.Assignment, error)
	Get(ctx context.Context, token, assignmentID string) (*entity.Assignment, error)
	// ListPendingSubmissions returns ungraded submissions across the
	// instructor's courses.
	ListPendingSubmissions(ctx context.Context, token, instructorID string) ([]entity.Submission, error)
	// UpdateGrade records a grade and returns the submission as confirmed
	// by the backend.
	UpdateGrade(ctx context.Context, token, assignmentID, submissionID string, grade float64, feedback string) (*entity.Submission, error)
}

type assignmentRepository struct {
	client *Client
}

func NewAssignmentRepository(client *Client) AssignmentRepository {
	return &assignmentRepository{client: client}
}

func (r *assignmentRepository) ListForStudent(ctx context.Context, token, studentID string) ([]entity.Assignment, error) {
	var ms []model.Assignment
	path := "/assignments?student_id=" + url.QueryEscape(studentID)
	if err := r.client.get(ctx, token, path, &ms); err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return toAssignmentEntities(ms), nil
}

func (r *assignmentRepository) Get(ctx context.Context, token, assignmentID string) (*entity.Assignment, error) {
	var m model.Assignment
	path := fmt.Sprintf("/assignments/%s", assignmentID)
	if err := r.client.get(ctx, token, path, &m); err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	a := toAssignmentEntity(m)
	return &a, nil
}

func (r *assignmentRepository) ListPendingSubmissions(ctx context.Context, token, instructorID string) ([]entity.Submission, error) {
	var ms []model.Submission
	path := "/submissions?status=submitted&instructor_id=" + url.QueryEscape(instructorID)
	if err := r.client.get(ctx, token, path, &ms); err != nil {
		return nil, fmt.Errorf("failed to list pending submissions: %w", err)
	}
	return toSubmissionEntities(ms), nil
}

func (r *assignmentRepository) UpdateGrade(ctx context.Context, token, assignmentID, submissionID string, grade float64, feedback string) (*entity.Submission, error) {
	body := map[string]interface{}{
		"grade":    grade,
		"feedback": feedback,
	}
	var m model.Submission
	path := fmt.Sprintf("/assignments/%s/submissions/%s/grade", assignmentID, submissionID)
	if err := r.client.do(ctx, http.MethodPut, token, path, body, &m); err != nil {
		return nil, fmt.Errorf("failed to update grade: %w", err)
	}
	return toSubmissionEntity(&m), nil
}
