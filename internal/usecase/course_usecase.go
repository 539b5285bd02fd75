package usecase

import (
	"context"

	"coursedeck/internal/entity"
	"coursedeck/internal/repo/backend"
	"coursedeck/pkg/filter"
	"coursedeck/pkg/logger"
	"coursedeck/pkg/session"
)

// CourseQuery carries the catalog filters.
type CourseQuery struct {
	Search   string
	Category string
}

type CourseUseCase interface {
	Browse(ctx context.Context, sess *session.Session, q CourseQuery) ([]entity.Course, error)
	Mine(ctx context.Context, sess *session.Session) ([]entity.Course, error)
	Create(ctx context.Context, sess *session.Session, input backend.CourseInput) (*entity.Course, error)
}

type courseUseCase struct {
	guard
	courseRepo backend.CourseRepository
}

func NewCourseUseCase(
	courseRepo backend.CourseRepository,
	sessions session.Store,
	log *logger.Logger,
) CourseUseCase {
	return &courseUseCase{
		guard:      guard{sessions: sessions, log: log},
		courseRepo: courseRepo,
	}
}

// Browse lists the catalog. Students only ever see published courses;
// instructors and admins see everything.
func (uc *courseUseCase) Browse(ctx context.Context, sess *session.Session, q CourseQuery) ([]entity.Course, error) {
	courses, err := uc.courseRepo.List(ctx, sess.BackendToken)
	if err != nil {
		return nil, uc.check(ctx, sess, err)
	}

	criteria := []filter.Criterion[entity.Course]{
		filter.Search(q.Search,
			func(c entity.Course) string { return c.Title },
			func(c entity.Course) string { return c.Description },
		),
		filter.Equals(q.Category, func(c entity.Course) string { return c.Category }),
	}
	if entity.Role(sess.Role) == entity.RoleStudent {
		criteria = append(criteria, func(c entity.Course) bool { return c.Published })
	}
	return filter.Apply(courses, criteria...), nil
}

// Mine lists the courses the instructor owns, unpublished included.
func (uc *courseUseCase) Mine(ctx context.Context, sess *session.Session) ([]entity.Course, error) {
	courses, err := uc.courseRepo.ListByInstructor(ctx, sess.BackendToken, sess.UserID)
	if err != nil {
		return nil, uc.check(ctx, sess, err)
	}
	return courses, nil
}

func (uc *courseUseCase) Create(ctx context.Context, sess *session.Session, input backend.CourseInput) (*entity.Course, error) {
	course, err := uc.courseRepo.Create(ctx, sess.BackendToken, input)
	if err != nil {
		return nil, uc.check(ctx, sess, err)
	}
	uc.log.Info("Instructor %s created course %s", sess.UserID, course.ID)
	return course, nil
}
