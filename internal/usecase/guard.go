package usecase

import (
	"context"
	"errors"

	"coursedeck/internal/repo/backend"
	"coursedeck/pkg/logger"
	"coursedeck/pkg/session"
)

// guard ends the session when the backend rejects its token, so the next
// request fails authentication outright instead of reusing a dead token.
type guard struct {
	sessions session.Store
	log      *logger.Logger
}

func (g *guard) check(ctx context.Context, sess *session.Session, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, backend.ErrUnauthorized) {
		if derr := g.sessions.Delete(ctx, sess.ID); derr != nil {
			g.log.Warn("Failed to end session %s: %v", sess.ID, derr)
		}
	}
	return err
}
