package response

import (
	"time"

	"storefront_payments/internal/domain/entities"
)

type TransactionResponse struct {
	Reference             string    `json:"reference"`
	OrderID               string    `json:"order_id"`
	Provider              string    `json:"provider"`
	Amount                int64     `json:"amount"`
	Status                string    `json:"status"`
	ProviderTransactionID string    `json:"provider_transaction_id,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func FromTransaction(tx entities.Transaction) TransactionResponse {
	return TransactionResponse{
		Reference:             tx.Reference,
		OrderID:               tx.OrderID,
		Provider:              string(tx.Provider),
		Amount:                tx.Amount,
		Status:                string(tx.Status),
		ProviderTransactionID: tx.ProviderTransactionID,
		CreatedAt:             tx.CreatedAt,
		UpdatedAt:             tx.UpdatedAt,
	}
}

func FromTransactions(txs []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, FromTransaction(tx))
	}
	return out
}

// PaymentVerifyResponse summarizes where an order's payment stands: the
// order-side state plus the latest ledger attempt, if any.
type PaymentVerifyResponse struct {
	OrderID           string               `json:"order_id"`
	PaymentStatus     string               `json:"payment_status"`
	Paid              bool                 `json:"paid"`
	LatestTransaction *TransactionResponse `json:"latest_transaction,omitempty"`
}

func FromOrderVerification(order entities.Order, latest entities.Transaction) PaymentVerifyResponse {
	resp := PaymentVerifyResponse{
		OrderID:       order.ID,
		PaymentStatus: string(order.PaymentStatus),
		Paid:          order.PaymentStatus == entities.OrderPaymentStatusPaid,
	}
	if latest.Reference != "" {
		tx := FromTransaction(latest)
		resp.LatestTransaction = &tx
	}
	return resp
}
