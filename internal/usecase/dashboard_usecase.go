package usecase

import (
	"context"
	"time"

	"coursedeck/internal/entity"
	"coursedeck/internal/nav"
	"coursedeck/internal/repo/backend"
	"coursedeck/pkg/derive"
	"coursedeck/pkg/logger"
	"coursedeck/pkg/session"
)

// EnrolledCourse is a course joined with the viewer's enrollment state.
type EnrolledCourse struct {
	Course        entity.Course        `json:"course"`
	Progress      int                  `json:"progress"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
}

type StudentOverview struct {
	Courses             []EnrolledCourse   `json:"courses"`
	UpcomingAssignments []AssignmentStatus `json:"upcoming_assignments"`
	AverageGrade        int                `json:"average_grade"`
	UnreadNotifications int                `json:"unread_notifications"`
	Navigation          []nav.Entry        `json:"navigation"`
}

type InstructorOverview struct {
	Courses          []entity.Course         `json:"courses"`
	PublishedPercent int                     `json:"published_percent"`
	PendingGrading   int                     `json:"pending_grading"`
	Earnings         float64                 `json:"earnings"`
	Currency         string                  `json:"currency"`
	Stats            *entity.InstructorStats `json:"stats,omitempty"`
	Navigation       []nav.Entry             `json:"navigation"`
}

type AdminOverview struct {
	TotalUsers    int                `json:"total_users"`
	RoleCounts    map[string]int     `json:"role_counts"`
	ActivePercent int                `json:"active_percent"`
	ClassLevels   map[string]int     `json:"class_levels"`
	PaymentTotals map[string]float64 `json:"payment_totals"`
	Currency      string             `json:"currency"`
	Navigation    []nav.Entry        `json:"navigation"`
}

type DashboardUseCase interface {
	StudentOverview(ctx context.Context, sess *session.Session) (*StudentOverview, error)
	InstructorOverview(ctx context.Context, sess *session.Session) (*InstructorOverview, error)
	AdminOverview(ctx context.Context, sess *session.Session) (*AdminOverview, error)
	Navigation(ctx context.Context, sess *session.Session) ([]nav.Entry, error)
}

type dashboardUseCase struct {
	guard
	courseRepo     backend.CourseRepository
	enrollmentRepo backend.EnrollmentRepository
	assignmentRepo backend.AssignmentRepository
	userRepo       backend.UserRepository
	paymentRepo    backend.PaymentRepository
	analyticsRepo  backend.AnalyticsRepository
	notifications  NotificationUseCase
	currency       string
}

func NewDashboardUseCase(
	courseRepo backend.CourseRepository,
	enrollmentRepo backend.EnrollmentRepository,
	assignmentRepo backend.AssignmentRepository,
	userRepo backend.UserRepository,
	paymentRepo backend.PaymentRepository,
	analyticsRepo backend.AnalyticsRepository,
	notifications NotificationUseCase,
	currency string,
	sessions session.Store,
	log *logger.Logger,
) DashboardUseCase {
	return &dashboardUseCase{
		guard:          guard{sessions: sessions, log: log},
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		paymentRepo:    paymentRepo,
		analyticsRepo:  analyticsRepo,
		notifications:  notifications,
		currency:       currency,
	}
}

func (uc *dashboardUseCase) StudentOverview(ctx context.Context, sess *session.Session) (*StudentOverview, error) {
	enrollments, err := uc.enrollmentRepo.ListByStudent(ctx, sess.BackendToken, sess.UserID)
	if err != nil {
		return nil, uc.check(ctx, sess, err)
	}
	courses, err := uc.courseRepo.List(ctx, sess.BackendToken)
	if err != nil {
		return nil, uc.check(ctx, sess, err)
	}
	assignments, err := uc.assignmentRepo.ListForStudent(ctx, sess.BackendToken, sess.UserID)
	if err != nil {
		return nil, uc.check(ctx, sess, err)
	}

	byID := make(map[string]entity.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}
	enrolled := make([]EnrolledCourse, 0, len(enrollments))
	for _, e := range enrollments {
		course, ok := byID[e.CourseID]
		if !ok {
			// Backend returned an enrollment for a course it no longer
			// lists; skip it rather than render a hole.
			uc.log.Warn("Enrollment for unknown course %s ignored", e.CourseID)
			continue
		}
		enrolled = append(enrolled, EnrolledCourse{
			Course:        course,
			Progress:      e.Progress,
			PaymentStatus: e.PaymentStatus,
		})
	}

	now := time.Now()
	statuses := annotateAssignments(assignments, now)
	upcoming := make([]AssignmentStatus, 0, len(statuses))
	scores := make([]derive.Score, 0, len(statuses))
	for _, s := range statuses {
		if !s.Submitted && !s.Overdue {
			upcoming = append(upcoming, s)
		}
		if s.Graded && s.Assignment.Submission.Grade != nil {
			scores = append(scores, derive.Score{
				Earned: *s.Assignment.Submission.Grade,
				Total:  s.Assignment.TotalPoints,
			})
		}
	}

	unread, err := uc.notifications.UnreadCount(ctx, sess)
	if err != nil {
		return nil, err
	}

	entries := nav.EntriesFor(entity.Role(sess.Role))
	nav.SetBadge(entries, "notifications", unread)

	return &StudentOverview{
		Courses:             enrolled,
		UpcomingAssignments: upcoming,
		AverageGrade:        derive.AveragePercent(scores),
		UnreadNotifications: unread,
		Navigation:          entries,
	}, nil
}

func (uc *dashboardUseCase) InstructorOverview(ctx context.Context, sess *session.Session) (*InstructorOverview, error) {
	courses, err := uc.courseRepo.ListByInstructor(ctx, sess.BackendToken, sess.UserID)
	if err != nil {
		return nil, uc.check(ctx, sess, err)
	}
	pending, err := uc.assignmentRepo.ListPendingSubmissions(ctx, sess.BackendToken, sess.UserID)
	if err != nil {
		return nil, uc.check(ctx, sess, err)
	}
	payments, err := uc.paymentRepo.ListByUser(ctx, sess.BackendToken, sess.UserID)
	if err != nil {
		return nil, uc.check(ctx, sess, err)
	}

	published := derive.CountBy(courses, func(c entity.Course) bool { return c.Published })
	earnings := derive.SumBy(payments,
		func(p entity.Payment) bool { return p.Status == entity.PaymentCompleted },
		func(p entity.Payment) float64 { return p.Amount })

	// Stats are best effort. When the analytics service cannot answer,
	// the overview says so instead of inventing numbers.
	stats, err := uc.analyticsRepo.InstructorStats(ctx, sess.BackendToken, sess.UserID)
	if err != nil {
		uc.log.Warn("Instructor stats unavailable for %s: %v", sess.UserID, err)
		stats = nil
	}

	entries := nav.EntriesFor(entity.Role(sess.Role))
	nav.SetBadge(entries, "grading", len(pending))

	return &InstructorOverview{
		Courses:          courses,
		PublishedPercent: derive.Percentage(published, len(courses)),
		PendingGrading:   len(pending),
		Earnings:         earnings,
		Currency:         uc.currency,
		Stats:            stats,
		Navigation:       entries,
	}, nil
}

func (uc *dashboardUseCase) AdminOverview(ctx context.Context, sess *session.Session) (*AdminOverview, error) {
	users, err := uc.userRepo.List(ctx, sess.BackendToken)
	if err != nil {
		return nil, uc.check(ctx, sess, err)
	}
	payments, err := uc.paymentRepo.List(ctx, sess.BackendToken)
	if err != nil {
		return nil, uc.check(ctx, sess, err)
	}

	roleCounts := make(map[string]int)
	classLevels := make(map[string]int)
	active := 0
	for _, u := range users {
		roleCounts[string(u.Role)]++
		if u.IsActive {
			active++
		}
		if u.Role == entity.RoleStudent && u.ClassLevel != "" {
			classLevels[u.ClassLevel]++
		}
	}

	totals := make(map[string]float64)
	for _, status := range entity.PaymentStatuses {
		s := status
		totals[string(s)] = derive.SumBy(payments,
			func(p entity.Payment) bool { return p.Status == s },
			func(p entity.Payment) float64 { return p.Amount })
	}

	return &AdminOverview{
		TotalUsers:    len(users),
		RoleCounts:    roleCounts,
		ActivePercent: derive.Percentage(active, len(users)),
		ClassLevels:   classLevels,
		PaymentTotals: totals,
		Currency:      uc.currency,
		Navigation:    nav.EntriesFor(entity.Role(sess.Role)),
	}, nil
}

// Navigation returns the caller's menu with the unread badge stamped on.
func (uc *dashboardUseCase) Navigation(ctx context.Context, sess *session.Session) ([]nav.Entry, error) {
	entries := nav.EntriesFor(entity.Role(sess.Role))
	unread, err := uc.notifications.UnreadCount(ctx, sess)
	if err != nil {
		// The menu itself never depends on backend data.
		uc.log.Warn("Unread count unavailable for session %s: %v", sess.ID, err)
		return entries, nil
	}
	nav.SetBadge(entries, "notifications", unread)
	return entries, nil
}
