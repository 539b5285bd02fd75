package backend

import (
	"context"
	"fmt"
	"net/http"

	"coursedeck/internal/entity"
	"coursedeck/internal/model"
)

type UserRepository interface {
	List(ctx context.Context, token string) ([]entity.User, error)
	SetActive(ctx context.Context, token, userID string, active bool) error
	Delete(ctx context.Context, token, userID string) error
}

type userRepository struct {
	client *Client
}

func NewUserRepository(client *Client) UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) List(ctx context.Context, token string) ([]entity.User, error) {
	var ms []model.User
	if err := r.client.get(ctx, token, "/users", &ms); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return toUserEntities(ms), nil
}

func (r *userRepository) SetActive(ctx context.Context, token, userID string, active bool) error {
	body := map[string]bool{"is_active": active}
	path := fmt.Sprintf("/users/%s/active", userID)
	if err := r.client.do(ctx, http.MethodPut, token, path, body, nil); err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, token, userID string) error {
	path := fmt.Sprintf("/users/%s", userID)
	if err := r.client.do(ctx, http.MethodDelete, token, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
