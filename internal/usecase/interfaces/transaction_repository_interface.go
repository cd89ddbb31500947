package interfaces

import (
	"context"
	"encoding/json"

	"storefront_payments/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for the transaction
// ledger.
//
// GetByReference returns a zero-value Transaction (empty Reference) when the
// record does not exist.
//
// FinalizeByReference is the idempotent conditional finalize: it must be a
// single conditional write that only moves a record out of pending. When the
// record is already terminal the call is a no-op that returns the existing
// record unchanged and transitioned=false, so racing callers and retried
// webhooks are safe by construction.

type ITransactionRepository interface {
	Create(ctx context.Context, tx entities.Transaction) (entities.Transaction, error)
	GetByReference(ctx context.Context, reference string) (entities.Transaction, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Transaction, error)
	FinalizeByReference(ctx context.Context, reference string, status entities.TransactionStatus, providerTransactionID string, rawPayload json.RawMessage) (tx entities.Transaction, transitioned bool, err error)
}
