package backend

import (
	"context"
	"fmt"

	"coursedeck/internal/entity"
	"coursedeck/internal/model"
)

type AnalyticsRepository interface {
	// InstructorStats fetches backend-computed aggregates for an
	// instructor's courses. Fields the backend does not report yet come
	// back nil and stay "not available" in the views.
	InstructorStats(ctx context.Context, token, instructorID string) (*entity.InstructorStats, error)
}

type analyticsRepository struct {
	client *Client
}

func NewAnalyticsRepository(client *Client) AnalyticsRepository {
	return &analyticsRepository{client: client}
}

func (r *analyticsRepository) InstructorStats(ctx context.Context, token, instructorID string) (*entity.InstructorStats, error) {
	var m model.InstructorStats
	path := fmt.Sprintf("/analytics/instructors/%s", instructorID)
	if err := r.client.get(ctx, token, path, &m); err != nil {
		return nil, fmt.Errorf("failed to get instructor stats: %w", err)
	}
	return &entity.InstructorStats{
		ActiveStudents: m.ActiveStudents,
		CompletionRate: m.CompletionRate,
		Engagement:     m.Engagement,
	}, nil
}
