package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"coursedeck/internal/entity"
	"coursedeck/pkg/logger"
	"coursedeck/pkg/session"
)

type stubAssignmentRepo struct {
	assignments []entity.Assignment
	submissions []entity.Submission
	graded      *entity.Submission
	err         error

	gradeCalls int
	lastGrade  float64
}

func (s *stubAssignmentRepo) ListForStudent(ctx context.Context, token, studentID string) ([]entity.Assignment, error) {
	return s.assignments, s.err
}

func (s *stubAssignmentRepo) Get(ctx context.Context, token, assignmentID string) (*entity.Assignment, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.assignments {
		if s.assignments[i].ID == assignmentID {
			return &s.assignments[i], nil
		}
	}
	return nil, errors.New("assignment not found")
}

func (s *stubAssignmentRepo) ListPendingSubmissions(ctx context.Context, token, instructorID string) ([]entity.Submission, error) {
	return s.submissions, s.err
}

func (s *stubAssignmentRepo) UpdateGrade(ctx context.Context, token, assignmentID, submissionID string, grade float64, feedback string) (*entity.Submission, error) {
	s.gradeCalls++
	s.lastGrade = grade
	return s.graded, s.err
}

type stubNotifier struct {
	pushed []string
}

func (s *stubNotifier) Push(ctx context.Context, userID, title, message string) error {
	s.pushed = append(s.pushed, userID)
	return nil
}

func studentSession() *session.Session {
	return &session.Session{
		ID:           "sess-2",
		UserID:       "u-student",
		Role:         string(entity.RoleStudent),
		BackendToken: "backend-token",
	}
}

func TestForStudent_SortsByDueDate(t *testing.T) {
	now := time.Now()
	repo := &stubAssignmentRepo{assignments: []entity.Assignment{
		{ID: "a-late", DueAt: now.Add(72 * time.Hour), TotalPoints: 10},
		{ID: "a-soon", DueAt: now.Add(24 * time.Hour), TotalPoints: 10},
	}}
	uc := NewAssignmentUseCase(repo, &stubNotifier{}, newMemSessionStore(), logger.New())

	statuses, err := uc.ForStudent(context.Background(), studentSession())

	assert.NoError(t, err)
	assert.Len(t, statuses, 2)
	assert.Equal(t, "a-soon", statuses[0].Assignment.ID)
	assert.Equal(t, "a-late", statuses[1].Assignment.ID)
}

func TestForStudent_AnnotatesSubmissionState(t *testing.T) {
	now := time.Now()
	grade := 18.0
	repo := &stubAssignmentRepo{assignments: []entity.Assignment{
		{ID: "a-open", DueAt: now.Add(48 * time.Hour), TotalPoints: 20},
		{ID: "a-missed", DueAt: now.Add(-48 * time.Hour), TotalPoints: 20},
		{ID: "a-done", DueAt: now.Add(-24 * time.Hour), TotalPoints: 20, Submission: &entity.Submission{
			ID: "s-1", Status: entity.SubmissionGraded, Grade: &grade,
		}},
	}}
	uc := NewAssignmentUseCase(repo, &stubNotifier{}, newMemSessionStore(), logger.New())

	statuses, err := uc.ForStudent(context.Background(), studentSession())
	assert.NoError(t, err)

	byID := make(map[string]AssignmentStatus)
	for _, s := range statuses {
		byID[s.Assignment.ID] = s
	}
	assert.False(t, byID["a-open"].Overdue)
	assert.Equal(t, 2, byID["a-open"].DaysLeft)
	assert.True(t, byID["a-missed"].Overdue)
	assert.False(t, byID["a-done"].Overdue)
	assert.True(t, byID["a-done"].Submitted)
	assert.True(t, byID["a-done"].Graded)
}

func TestGrade_RejectsOutOfRange(t *testing.T) {
	repo := &stubAssignmentRepo{assignments: []entity.Assignment{
		{ID: "a-1", TotalPoints: 20},
	}}
	uc := NewAssignmentUseCase(repo, &stubNotifier{}, newMemSessionStore(), logger.New())

	_, err := uc.Grade(context.Background(), studentSession(), "a-1", "s-1", 25, "")

	assert.ErrorIs(t, err, ErrInvalidGrade)
	assert.Zero(t, repo.gradeCalls)

	_, err = uc.Grade(context.Background(), studentSession(), "a-1", "s-1", -1, "")
	assert.ErrorIs(t, err, ErrInvalidGrade)
}

func TestGrade_ReturnsConfirmedSubmissionAndNotifies(t *testing.T) {
	repo := &stubAssignmentRepo{
		assignments: []entity.Assignment{{ID: "a-1", Title: "Essay", TotalPoints: 20}},
		graded: &entity.Submission{
			ID: "s-1", UserID: "u-student", Status: entity.SubmissionGraded,
		},
	}
	notifier := &stubNotifier{}
	uc := NewAssignmentUseCase(repo, notifier, newMemSessionStore(), logger.New())

	sub, err := uc.Grade(context.Background(), studentSession(), "a-1", "s-1", 18, "well done")

	assert.NoError(t, err)
	assert.Equal(t, entity.SubmissionGraded, sub.Status)
	assert.Equal(t, 18.0, repo.lastGrade)
	assert.Equal(t, []string{"u-student"}, notifier.pushed)
}
