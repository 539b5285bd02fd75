package backend

import (
	"context"
	"fmt"
	"net/http"

	"coursedeck/internal/entity"
	"coursedeck/internal/model"
)

type NotificationRepository interface {
	List(ctx context.Context, token string) ([]entity.Notification, error)
	MarkRead(ctx context.Context, token, notificationID string) error
}

type notificationRepository struct {
	client *Client
}

func NewNotificationRepository(client *Client) NotificationRepository {
	return &notificationRepository{client: client}
}

func (r *notificationRepository) List(ctx context.Context, token string) ([]entity.Notification, error) {
	var ms []model.Notification
	if err := r.client.get(ctx, token, "/notifications", &ms); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return toNotificationEntities(ms), nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, token, notificationID string) error {
	path := fmt.Sprintf("/notifications/%s/read", notificationID)
	if err := r.client.do(ctx, http.MethodPut, token, path, nil, nil); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
