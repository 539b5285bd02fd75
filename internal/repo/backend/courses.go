package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"coursedeck/internal/entity"
	"coursedeck/internal/model"
)

// CourseInput is the payload for creating a course. The instructor comes
// from the session, never from the request body.
type CourseInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

type CourseRepository interface {
	List(ctx context.Context, token string) ([]entity.Course, error)
	ListByInstructor(ctx context.Context, token, instructorID string) ([]entity.Course, error)
	Create(ctx context.Context, token string, input CourseInput) (*entity.Course, error)
}

type courseRepository struct {
	client *Client
}

func NewCourseRepository(client *Client) CourseRepository {
	return &courseRepository{client: client}
}

func (r *courseRepository) List(ctx context.Context, token string) ([]entity.Course, error) {
	var ms []model.Course
	if err := r.client.get(ctx, token, "/courses", &ms); err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return toCourseEntities(ms), nil
}

func (r *courseRepository) ListByInstructor(ctx context.Context, token, instructorID string) ([]entity.Course, error) {
	var ms []model.Course
	path := "/courses?instructor_id=" + url.QueryEscape(instructorID)
	if err := r.client.get(ctx, token, path, &ms); err != nil {
		return nil, fmt.Errorf("failed to list instructor courses: %w", err)
	}
	return toCourseEntities(ms), nil
}

func (r *courseRepository) Create(ctx context.Context, token string, input CourseInput) (*entity.Course, error) {
	var m model.Course
	if err := r.client.do(ctx, http.MethodPost, token, "/courses", input, &m); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}
	course := toCourseEntity(m)
	return &course, nil
}
