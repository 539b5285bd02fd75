package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"coursedeck/internal/entity"
	"coursedeck/internal/repo/backend"
	"coursedeck/pkg/derive"
	"coursedeck/pkg/logger"
	"coursedeck/pkg/session"
)

// Notifier pushes a transient notification to a user's live stream.
type Notifier interface {
	Push(ctx context.Context, userID, title, message string) error
}

type NotificationUseCase interface {
	Notifier
	List(ctx context.Context, sess *session.Session) ([]entity.Notification, error)
	UnreadCount(ctx context.Context, sess *session.Session) (int, error)
	MarkRead(ctx context.Context, sess *session.Session, notificationID string) error
}

type notificationUseCase struct {
	guard
	notificationRepo backend.NotificationRepository
	redisClient      *redis.Client
}

func NewNotificationUseCase(
	notificationRepo backend.NotificationRepository,
	redisClient *redis.Client,
	sessions session.Store,
	log *logger.Logger,
) NotificationUseCase {
	return &notificationUseCase{
		guard:            guard{sessions: sessions, log: log},
		notificationRepo: notificationRepo,
		redisClient:      redisClient,
	}
}

// Channel names the Redis pub/sub channel carrying a user's live
// notifications.
func Channel(userID string) string {
	return fmt.Sprintf("notifications:%s", userID)
}

func (uc *notificationUseCase) List(ctx context.Context, sess *session.Session) ([]entity.Notification, error) {
	notifications, err := uc.notificationRepo.List(ctx, sess.BackendToken)
	if err != nil {
		return nil, uc.check(ctx, sess, err)
	}
	return notifications, nil
}

func (uc *notificationUseCase) UnreadCount(ctx context.Context, sess *session.Session) (int, error) {
	notifications, err := uc.List(ctx, sess)
	if err != nil {
		return 0, err
	}
	return derive.CountBy(notifications, func(n entity.Notification) bool { return !n.IsRead }), nil
}

func (uc *notificationUseCase) MarkRead(ctx context.Context, sess *session.Session, notificationID string) error {
	if err := uc.notificationRepo.MarkRead(ctx, sess.BackendToken, notificationID); err != nil {
		return uc.check(ctx, sess, err)
	}
	return nil
}

// Push publishes to the user's channel only; durable storage of the
// notification is the backend's job.
func (uc *notificationUseCase) Push(ctx context.Context, userID, title, message string) error {
	notification := entity.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	if err := uc.redisClient.Publish(ctx, Channel(userID), data).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	uc.log.Info("Published notification to user %s: %s", userID, title)
	return nil
}
