package usecase

import (
	"context"

	"coursedeck/internal/entity"
	"coursedeck/internal/repo/backend"
	"coursedeck/internal/store"
	"coursedeck/pkg/filter"
	"coursedeck/pkg/logger"
	"coursedeck/pkg/session"
)

// UserQuery carries the user list filters. Search matches name and
// email; the other fields accept "all" or empty to disable themselves.
type UserQuery struct {
	Search     string
	Role       string
	ClassLevel string
	Status     string
}

type UserAdminUseCase interface {
	List(ctx context.Context, sess *session.Session, q UserQuery) ([]entity.User, bool, error)
	SetActive(ctx context.Context, sess *session.Session, userID string, active bool) error
	Delete(ctx context.Context, sess *session.Session, userID string) error
	DropSession(sessionID string)
}

type userAdminUseCase struct {
	guard
	userRepo backend.UserRepository
	views    *store.Views[entity.User]
}

func NewUserAdminUseCase(
	userRepo backend.UserRepository,
	sessions session.Store,
	log *logger.Logger,
) UserAdminUseCase {
	return &userAdminUseCase{
		guard:    guard{sessions: sessions, log: log},
		userRepo: userRepo,
		views:    store.NewViews[entity.User](),
	}
}

func (uc *userAdminUseCase) List(ctx context.Context, sess *session.Session, q UserQuery) ([]entity.User, bool, error) {
	snap := uc.views.For(sess.ID)
	token := snap.Begin()

	users, err := uc.userRepo.List(ctx, sess.BackendToken)
	stale := false
	if err != nil {
		cached, ok := snap.Get()
		if !ok {
			return nil, false, uc.check(ctx, sess, err)
		}
		uc.log.Warn("Serving cached users for session %s: %v", sess.ID, err)
		users, stale = cached, true
	} else if !snap.Commit(token, users) {
		users, _ = snap.Get()
	}

	criteria := []filter.Criterion[entity.User]{
		filter.Search(q.Search,
			func(u entity.User) string { return u.FullName() },
			func(u entity.User) string { return u.Email },
		),
		filter.Equals(q.Role, func(u entity.User) string { return string(u.Role) }),
		filter.Equals(q.ClassLevel, func(u entity.User) string { return u.ClassLevel }),
		statusCriterion(q.Status),
	}
	return filter.Apply(users, criteria...), stale, nil
}

func statusCriterion(status string) filter.Criterion[entity.User] {
	switch status {
	case "active":
		return func(u entity.User) bool { return u.IsActive }
	case "inactive":
		return func(u entity.User) bool { return !u.IsActive }
	default:
		return nil
	}
}

func (uc *userAdminUseCase) SetActive(ctx context.Context, sess *session.Session, userID string, active bool) error {
	if err := uc.userRepo.SetActive(ctx, sess.BackendToken, userID, active); err != nil {
		return uc.check(ctx, sess, err)
	}
	// The snapshot is now behind the backend; the next list refetches.
	uc.views.For(sess.ID).Clear()
	return nil
}

func (uc *userAdminUseCase) Delete(ctx context.Context, sess *session.Session, userID string) error {
	if err := uc.userRepo.Delete(ctx, sess.BackendToken, userID); err != nil {
		return uc.check(ctx, sess, err)
	}
	uc.views.For(sess.ID).Clear()
	return nil
}

func (uc *userAdminUseCase) DropSession(sessionID string) {
	uc.views.Drop(sessionID)
}
