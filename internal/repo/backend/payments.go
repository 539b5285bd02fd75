package backend

import (
	"context"
	"fmt"
	"net/url"

	"coursedeck/internal/entity"
	"coursedeck/internal/model"
)

type PaymentRepository interface {
	// List returns all payments; the backend scopes the result to what the
	// token's role may see.
	List(ctx context.Context, token string) ([]entity.Payment, error)
	ListByUser(ctx context.Context, token, userID string) ([]entity.Payment, error)
}

type paymentRepository struct {
	client *Client
}

func NewPaymentRepository(client *Client) PaymentRepository {
	return &paymentRepository{client: client}
}

func (r *paymentRepository) List(ctx context.Context, token string) ([]entity.Payment, error) {
	var ms []model.Payment
	if err := r.client.get(ctx, token, "/payments", &ms); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return toPaymentEntities(ms), nil
}

func (r *paymentRepository) ListByUser(ctx context.Context, token, userID string) ([]entity.Payment, error) {
	var ms []model.Payment
	path := "/payments?user_id=" + url.QueryEscape(userID)
	if err := r.client.get(ctx, token, path, &ms); err != nil {
		return nil, fmt.Errorf("failed to list user payments: %w", err)
	}
	return toPaymentEntities(ms), nil
}
