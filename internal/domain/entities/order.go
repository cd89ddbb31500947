package entities

import "time"

// OrderPaymentStatus mirrors the payment state the storefront keeps on its
// order records. This service owns the pending -> paid/failed transition and
// nothing else about the order.

type OrderPaymentStatus string

const (
	OrderPaymentStatusPending OrderPaymentStatus = "pending"
	OrderPaymentStatusPaid    OrderPaymentStatus = "paid"
	OrderPaymentStatusFailed  OrderPaymentStatus = "failed"
)

// Order is the storefront's order entity, referenced but not owned here.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Amount is in minor units (VND has no fractional unit, so 1 == 1 VND).
// PaymentStatus moves to paid exactly once, driven by exactly one succeeded
// Transaction; the repository enforces the transition with a conditional
// write so concurrent reconcilers cannot pay an order twice.

type Order struct {
	ID                    string             `json:"id"`
	UserID                string             `json:"user_id"`
	Amount                int64              `json:"amount"`
	Description           string             `json:"description,omitempty"`
	Status                string             `json:"status,omitempty"`
	PaymentStatus         OrderPaymentStatus `json:"payment_status"`
	ProviderTransactionID string             `json:"provider_transaction_id,omitempty"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}
