package backend

import (
	"context"
	"fmt"
	"net/url"

	"coursedeck/internal/entity"
	"coursedeck/internal/model"
)

type EnrollmentRepository interface {
	ListByStudent(ctx context.Context, token, studentID string) ([]entity.Enrollment, error)
}

type enrollmentRepository struct {
	client *Client
}

func NewEnrollmentRepository(client *Client) EnrollmentRepository {
	return &enrollmentRepository{client: client}
}

func (r *enrollmentRepository) ListByStudent(ctx context.Context, token, studentID string) ([]entity.Enrollment, error) {
	var ms []model.Enrollment
	path := "/enrollments?user_id=" + url.QueryEscape(studentID)
	if err := r.client.get(ctx, token, path, &ms); err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return toEnrollmentEntities(ms), nil
}
