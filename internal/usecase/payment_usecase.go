package usecase

import (
	"context"

	"coursedeck/internal/entity"
	"coursedeck/internal/repo/backend"
	"coursedeck/internal/store"
	"coursedeck/pkg/derive"
	"coursedeck/pkg/filter"
	"coursedeck/pkg/logger"
	"coursedeck/pkg/session"
)

type PaymentUseCase interface {
	List(ctx context.Context, sess *session.Session, status string) ([]entity.Payment, bool, error)
	Totals(ctx context.Context, sess *session.Session) (map[string]float64, error)
	DropSession(sessionID string)
}

type paymentUseCase struct {
	guard
	paymentRepo backend.PaymentRepository
	views       *store.Views[entity.Payment]
}

func NewPaymentUseCase(
	paymentRepo backend.PaymentRepository,
	sessions session.Store,
	log *logger.Logger,
) PaymentUseCase {
	return &paymentUseCase{
		guard:       guard{sessions: sessions, log: log},
		paymentRepo: paymentRepo,
		views:       store.NewViews[entity.Payment](),
	}
}

func (uc *paymentUseCase) fetch(ctx context.Context, sess *session.Session) ([]entity.Payment, bool, error) {
	snap := uc.views.For(sess.ID)
	token := snap.Begin()

	var payments []entity.Payment
	var err error
	if entity.Role(sess.Role) == entity.RoleAdmin {
		payments, err = uc.paymentRepo.List(ctx, sess.BackendToken)
	} else {
		payments, err = uc.paymentRepo.ListByUser(ctx, sess.BackendToken, sess.UserID)
	}
	if err != nil {
		if cached, ok := snap.Get(); ok {
			uc.log.Warn("Serving cached payments for session %s: %v", sess.ID, err)
			return cached, true, nil
		}
		return nil, false, uc.check(ctx, sess, err)
	}

	if !snap.Commit(token, payments) {
		// A newer fetch finished first; its result wins.
		latest, _ := snap.Get()
		return latest, false, nil
	}
	return payments, false, nil
}

func (uc *paymentUseCase) List(ctx context.Context, sess *session.Session, status string) ([]entity.Payment, bool, error) {
	payments, stale, err := uc.fetch(ctx, sess)
	if err != nil {
		return nil, false, err
	}
	byStatus := filter.Equals(status, func(p entity.Payment) string { return string(p.Status) })
	return filter.Apply(payments, byStatus), stale, nil
}

// Totals sums amounts per status over the caller's visible payments.
func (uc *paymentUseCase) Totals(ctx context.Context, sess *session.Session) (map[string]float64, error) {
	payments, _, err := uc.fetch(ctx, sess)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]float64)
	for _, status := range entity.PaymentStatuses {
		s := status
		totals[string(s)] = derive.SumBy(payments,
			func(p entity.Payment) bool { return p.Status == s },
			func(p entity.Payment) float64 { return p.Amount })
	}
	return totals, nil
}

func (uc *paymentUseCase) DropSession(sessionID string) {
	uc.views.Drop(sessionID)
}
