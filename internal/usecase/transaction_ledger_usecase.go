package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"storefront_payments/internal/domain/entities"
	"storefront_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidReference    = errors.New("invalid transaction reference")
	ErrInvalidAmount       = errors.New("invalid payment amount")
	ErrInvalidProvider     = errors.New("invalid payment provider")
)

// ITransactionLedgerUseCase is the append-only ledger of payment attempts.
//
// CreateAttempt mints the provider-facing reference and persists the attempt
// as pending. Finalize is idempotent: the first call for a reference moves
// it to its terminal status, every later call is a no-op that returns the
// unchanged record with transitioned=false.

type ITransactionLedgerUseCase interface {
	CreateAttempt(ctx context.Context, orderID string, provider entities.Provider, amount int64) (entities.Transaction, error)
	FindByReference(ctx context.Context, reference string) (entities.Transaction, error)
	Finalize(ctx context.Context, reference string, succeeded bool, providerTransactionID string, rawPayload json.RawMessage) (entities.Transaction, bool, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Transaction, error)
}

type TransactionLedgerUseCase struct {
	repo interfaces.ITransactionRepository
}

var _ ITransactionLedgerUseCase = (*TransactionLedgerUseCase)(nil)

func NewTransactionLedgerUseCase(repo interfaces.ITransactionRepository) *TransactionLedgerUseCase {
	return &TransactionLedgerUseCase{repo: repo}
}

func (u *TransactionLedgerUseCase) CreateAttempt(ctx context.Context, orderID string, provider entities.Provider, amount int64) (entities.Transaction, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Transaction{}, ErrInvalidOrderID
	}
	if !provider.Valid() {
		return entities.Transaction{}, ErrInvalidProvider
	}
	if amount <= 0 {
		return entities.Transaction{}, ErrInvalidAmount
	}

	now := time.Now().UTC()
	tx := entities.Transaction{
		Reference: newReference(orderID, now),
		OrderID:   orderID,
		Provider:  provider,
		Amount:    amount,
		Status:    entities.TransactionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, tx)
	if err != nil {
		log.Printf("[ledger][usecase] create failed order_id=%s reference=%s err=%v", orderID, tx.Reference, err)
		return entities.Transaction{}, err
	}
	log.Printf("[ledger][usecase] attempt created order_id=%s reference=%s provider=%s amount=%d", orderID, created.Reference, provider, amount)
	return created, nil
}

func (u *TransactionLedgerUseCase) FindByReference(ctx context.Context, reference string) (entities.Transaction, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.Transaction{}, ErrInvalidReference
	}
	tx, err := u.repo.GetByReference(ctx, reference)
	if err != nil {
		return entities.Transaction{}, err
	}
	if tx.Reference == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return tx, nil
}

func (u *TransactionLedgerUseCase) Finalize(ctx context.Context, reference string, succeeded bool, providerTransactionID string, rawPayload json.RawMessage) (entities.Transaction, bool, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.Transaction{}, false, ErrInvalidReference
	}

	status := entities.TransactionStatusFailed
	if succeeded {
		status = entities.TransactionStatusSucceeded
	}

	tx, transitioned, err := u.repo.FinalizeByReference(ctx, reference, status, providerTransactionID, rawPayload)
	if err != nil {
		log.Printf("[ledger][usecase] finalize failed reference=%s err=%v", reference, err)
		return entities.Transaction{}, false, err
	}
	if tx.Reference == "" {
		return entities.Transaction{}, false, ErrTransactionNotFound
	}
	if transitioned {
		log.Printf("[ledger][usecase] finalized reference=%s status=%s", reference, tx.Status)
	} else {
		log.Printf("[ledger][usecase] finalize no-op reference=%s status=%s", reference, tx.Status)
	}
	return tx, transitioned, nil
}

func (u *TransactionLedgerUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.Transaction, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

// newReference composes the provider-facing correlation id. The nanosecond
// timestamp keeps retries for the same order distinct and monotonically
// ordered; the uuid fragment guards against clock collisions across
// instances.
func newReference(orderID string, now time.Time) string {
	return fmt.Sprintf("%s-%d%s", orderID, now.UnixNano(), strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
}
