package entity

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// PaymentStatuses lists every payment status; per-status aggregates
// iterate this so none is silently dropped.
var PaymentStatuses = []PaymentStatus{
	PaymentPending,
	PaymentCompleted,
	PaymentFailed,
	PaymentRefunded,
}

type Payment struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	CourseID      string        `json:"course_id"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id"`
	CreatedAt     time.Time     `json:"created_at"`
}
