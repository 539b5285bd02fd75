package backend

import (
	"context"
	"fmt"

	"coursedeck/internal/entity"
	"coursedeck/internal/model"
)

type AuthRepository interface {
	// Login exchanges credentials for the backend bearer token and the
	// signed-in user's profile.
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Me(ctx context.Context, token string) (*entity.User, error)
}

type authRepository struct {
	client *Client
}

func NewAuthRepository(client *Client) AuthRepository {
	return &authRepository{client: client}
}

func (r *authRepository) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	var resp model.LoginResponse
	req := model.LoginRequest{Email: email, Password: password}
	if err := r.client.do(ctx, "POST", "", "/auth/login", req, &resp); err != nil {
		return nil, "", err
	}
	if resp.Token == "" {
		return nil, "", fmt.Errorf("backend login returned no token")
	}
	user := toUserEntity(resp.User)
	return &user, resp.Token, nil
}

func (r *authRepository) Me(ctx context.Context, token string) (*entity.User, error) {
	var m model.User
	if err := r.client.get(ctx, token, "/auth/me", &m); err != nil {
		return nil, err
	}
	user := toUserEntity(m)
	return &user, nil
}
