package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coursedeck/internal/entity"
	"coursedeck/internal/repo/backend"
	"coursedeck/pkg/jwt"
	"coursedeck/pkg/logger"
	"coursedeck/pkg/session"
)

type AuthUseCase interface {
	// Login verifies credentials against the backend, opens a session and
	// returns the dashboard token for it.
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Logout(ctx context.Context, sess *session.Session) error
	Profile(ctx context.Context, sess *session.Session) (*entity.User, error)
}

type authUseCase struct {
	guard
	authRepo   backend.AuthRepository
	jwtService *jwt.Service
	// onLogout drops per-session view snapshots held by other usecases.
	onLogout []func(sessionID string)
}

func NewAuthUseCase(
	authRepo backend.AuthRepository,
	jwtService *jwt.Service,
	sessions session.Store,
	log *logger.Logger,
	onLogout ...func(sessionID string),
) AuthUseCase {
	return &authUseCase{
		guard:      guard{sessions: sessions, log: log},
		authRepo:   authRepo,
		jwtService: jwtService,
		onLogout:   onLogout,
	}
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, backendToken, err := uc.authRepo.Login(ctx, email, password)
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}
	if !user.IsActive {
		return nil, "", fmt.Errorf("account is deactivated")
	}

	sess := &session.Session{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		Role:         string(user.Role),
		BackendToken: backendToken,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.sessions.Save(ctx, sess); err != nil {
		uc.log.Error("Failed to store session: %v", err)
		return nil, "", fmt.Errorf("failed to open session")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role), sess.ID)
	if err != nil {
		uc.log.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	uc.log.Info("User %s signed in with role %s", user.ID, user.Role)
	return user, token, nil
}

func (uc *authUseCase) Logout(ctx context.Context, sess *session.Session) error {
	if err := uc.sessions.Delete(ctx, sess.ID); err != nil {
		uc.log.Error("Failed to delete session %s: %v", sess.ID, err)
		return fmt.Errorf("failed to log out")
	}
	for _, drop := range uc.onLogout {
		drop(sess.ID)
	}
	return nil
}

func (uc *authUseCase) Profile(ctx context.Context, sess *session.Session) (*entity.User, error) {
	user, err := uc.authRepo.Me(ctx, sess.BackendToken)
	if err != nil {
		return nil, uc.check(ctx, sess, err)
	}
	return user, nil
}
