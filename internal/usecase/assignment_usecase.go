package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"coursedeck/internal/entity"
	"coursedeck/internal/repo/backend"
	"coursedeck/pkg/derive"
	"coursedeck/pkg/logger"
	"coursedeck/pkg/session"
)

var ErrInvalidGrade = errors.New("grade is out of range")

// AssignmentStatus is an assignment annotated with the deadline and
// submission state a dashboard card needs.
type AssignmentStatus struct {
	Assignment entity.Assignment `json:"assignment"`
	DaysLeft   int               `json:"days_left"`
	Overdue    bool              `json:"overdue"`
	Submitted  bool              `json:"submitted"`
	Graded     bool              `json:"graded"`
}

type AssignmentUseCase interface {
	ForStudent(ctx context.Context, sess *session.Session) ([]AssignmentStatus, error)
	PendingSubmissions(ctx context.Context, sess *session.Session) ([]entity.Submission, error)
	Grade(ctx context.Context, sess *session.Session, assignmentID, submissionID string, grade float64, feedback string) (*entity.Submission, error)
}

type assignmentUseCase struct {
	guard
	assignmentRepo backend.AssignmentRepository
	notifier       Notifier
}

func NewAssignmentUseCase(
	assignmentRepo backend.AssignmentRepository,
	notifier Notifier,
	sessions session.Store,
	log *logger.Logger,
) AssignmentUseCase {
	return &assignmentUseCase{
		guard:          guard{sessions: sessions, log: log},
		assignmentRepo: assignmentRepo,
		notifier:       notifier,
	}
}

func (uc *assignmentUseCase) ForStudent(ctx context.Context, sess *session.Session) ([]AssignmentStatus, error) {
	assignments, err := uc.assignmentRepo.ListForStudent(ctx, sess.BackendToken, sess.UserID)
	if err != nil {
		return nil, uc.check(ctx, sess, err)
	}
	return annotateAssignments(assignments, time.Now()), nil
}

func annotateAssignments(assignments []entity.Assignment, now time.Time) []AssignmentStatus {
	statuses := make([]AssignmentStatus, 0, len(assignments))
	for _, a := range assignments {
		s := AssignmentStatus{
			Assignment: a,
			DaysLeft:   derive.DaysUntil(a.DueAt, now),
		}
		if a.Submission != nil {
			s.Submitted = true
			s.Graded = a.Submission.Status == entity.SubmissionGraded
		} else {
			s.Overdue = derive.Overdue(a.DueAt, now)
		}
		statuses = append(statuses, s)
	}
	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].Assignment.DueAt.Before(statuses[j].Assignment.DueAt)
	})
	return statuses
}

func (uc *assignmentUseCase) PendingSubmissions(ctx context.Context, sess *session.Session) ([]entity.Submission, error) {
	submissions, err := uc.assignmentRepo.ListPendingSubmissions(ctx, sess.BackendToken, sess.UserID)
	if err != nil {
		return nil, uc.check(ctx, sess, err)
	}
	return submissions, nil
}

// Grade records a grade for a submission. The result reflects what the
// backend stored, not what was sent.
func (uc *assignmentUseCase) Grade(ctx context.Context, sess *session.Session, assignmentID, submissionID string, grade float64, feedback string) (*entity.Submission, error) {
	assignment, err := uc.assignmentRepo.Get(ctx, sess.BackendToken, assignmentID)
	if err != nil {
		return nil, uc.check(ctx, sess, err)
	}
	if grade < 0 || grade > assignment.TotalPoints {
		return nil, fmt.Errorf("%w: %.1f not in [0, %.1f]", ErrInvalidGrade, grade, assignment.TotalPoints)
	}

	sub, err := uc.assignmentRepo.UpdateGrade(ctx, sess.BackendToken, assignmentID, submissionID, grade, feedback)
	if err != nil {
		return nil, uc.check(ctx, sess, err)
	}

	if err := uc.notifier.Push(ctx, sub.UserID, "Assignment graded",
		fmt.Sprintf("Your submission for %q was graded: %.1f/%.1f", assignment.Title, grade, assignment.TotalPoints)); err != nil {
		uc.log.Warn("Failed to push grade notification: %v", err)
	}
	return sub, nil
}
