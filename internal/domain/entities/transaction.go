package entities

import (
	"encoding/json"
	"time"
)

// Provider identifies the external payment gateway handling an attempt.

type Provider string

const (
	ProviderVNPay Provider = "vnpay"
	ProviderMoMo  Provider = "momo"
)

func (p Provider) Valid() bool {
	return p == ProviderVNPay || p == ProviderMoMo
}

// TransactionStatus is the lifecycle of a single payment attempt.
//
// pending is the only non-terminal state. Once a transaction reaches
// succeeded or failed it never transitions again; repeated gateway
// notifications for the same reference are no-ops.

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusSucceeded TransactionStatus = "succeeded"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is the append-only ledger record of a payment attempt.
//
// Storage model (DynamoDB):
//   - PK: reference
//   - GSI1 (order_id-index): order_id
//
// Reference is the provider-facing correlation id (vnp_TxnRef / requestId).
// Retried checkouts create new transactions for the same order, so the
// order relation is many-to-one.
//
// RawProviderPayload keeps the last verified provider message (JSON) for
// audit; it is never interpreted after finalization.

type Transaction struct {
	Reference             string            `json:"reference"`
	OrderID               string            `json:"order_id"`
	Provider              Provider          `json:"provider"`
	Amount                int64             `json:"amount"`
	Status                TransactionStatus `json:"status"`
	ProviderTransactionID string            `json:"provider_transaction_id,omitempty"`
	RawProviderPayload    json.RawMessage   `json:"raw_provider_payload,omitempty"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
}
