package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"storefront_payments/internal/domain/entities"
	"storefront_payments/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderNotPayable       = errors.New("order is not awaiting payment")
	ErrPaymentCreationFailed = errors.New("payment creation failed")
	ErrUnsupportedProvider   = errors.New("no adapter configured for provider")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrNotOrderOwner         = errors.New("requesting user does not own the order")
)

// ReconcileStatus classifies the outcome of processing one inbound gateway
// message. Verification and lookup failures are in-band statuses, never
// errors: every path must produce a well-formed provider acknowledgment.
type ReconcileStatus string

const (
	// ReconcileApplied: this message won the finalize and the order was
	// updated (or the update failure was surfaced as partial reconciliation).
	ReconcileApplied ReconcileStatus = "applied"
	// ReconcileDuplicate: the transaction was already terminal. The caller
	// must send the same acknowledgment as a first success, with no writes.
	ReconcileDuplicate ReconcileStatus = "duplicate"
	// ReconcileSignatureInvalid: recomputed signature mismatch (or the
	// payload could not be canonicalized). Nothing was touched.
	ReconcileSignatureInvalid ReconcileStatus = "signature_invalid"
	// ReconcileUnknownReference: no ledger record for the reference. Hard
	// rejection; no speculative record is created.
	ReconcileUnknownReference ReconcileStatus = "unknown_reference"
)

// ReconcileResult is what the HTTP layer turns into a provider-specific
// acknowledgment (redirect vs JSON ack).
type ReconcileResult struct {
	Status      ReconcileStatus
	Outcome     entities.PaymentOutcome
	Transaction entities.Transaction
}

// IPaymentUseCase is the reconciliation coordinator: payment creation plus
// the single algorithm behind every inbound trigger (browser callback and
// server-to-server IPN), and the ownership-gated read queries.

type IPaymentUseCase interface {
	CreatePayment(ctx context.Context, orderID string, provider entities.Provider, clientIP string) (entities.SignedArtifact, error)
	Reconcile(ctx context.Context, provider entities.Provider, params map[string]string) (ReconcileResult, error)
	GetTransactionsByOrderID(ctx context.Context, orderID, userID string) ([]entities.Transaction, error)
	VerifyOrderPayment(ctx context.Context, orderID, userID string) (entities.Order, entities.Transaction, error)
}

type PaymentReconciliationUseCase struct {
	ledger    ITransactionLedgerUseCase
	orderRepo interfaces.IOrderRepository
	adapters  map[entities.Provider]interfaces.IGatewayAdapter
}

var _ IPaymentUseCase = (*PaymentReconciliationUseCase)(nil)

func NewPaymentReconciliationUseCase(ledger ITransactionLedgerUseCase, orderRepo interfaces.IOrderRepository, adapters []interfaces.IGatewayAdapter) *PaymentReconciliationUseCase {
	byProvider := make(map[entities.Provider]interfaces.IGatewayAdapter, len(adapters))
	for _, a := range adapters {
		if a != nil {
			byProvider[a.Provider()] = a
		}
	}
	return &PaymentReconciliationUseCase{ledger: ledger, orderRepo: orderRepo, adapters: byProvider}
}

func (u *PaymentReconciliationUseCase) CreatePayment(ctx context.Context, orderID string, provider entities.Provider, clientIP string) (entities.SignedArtifact, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.SignedArtifact{}, ErrInvalidOrderID
	}
	if !provider.Valid() {
		return entities.SignedArtifact{}, ErrInvalidProvider
	}
	adapter, ok := u.adapters[provider]
	if !ok {
		return entities.SignedArtifact{}, ErrUnsupportedProvider
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[payment][usecase] order lookup failed order_id=%s err=%v", orderID, err)
		return entities.SignedArtifact{}, err
	}
	if order.ID == "" {
		return entities.SignedArtifact{}, ErrOrderNotFound
	}
	// Only a paid order blocks creation. A failed attempt leaves the order
	// retryable: each retry mints a fresh ledger entry.
	if order.PaymentStatus == entities.OrderPaymentStatusPaid {
		log.Printf("[payment][usecase] order not payable order_id=%s payment_status=%s", orderID, order.PaymentStatus)
		return entities.SignedArtifact{}, ErrOrderNotPayable
	}

	tx, err := u.ledger.CreateAttempt(ctx, orderID, provider, order.Amount)
	if err != nil {
		return entities.SignedArtifact{}, err
	}

	artifact, err := adapter.BuildRequest(ctx, entities.PaymentRequest{
		OrderID:          orderID,
		Amount:           order.Amount,
		OrderDescription: order.Description,
		ClientIP:         clientIP,
		Provider:         provider,
	}, tx.Reference)
	if err != nil {
		// The ledger entry stays pending on purpose: nothing here implies a
		// charge succeeded, and the attempt remains reconcilable by a late
		// webhook or an out-of-band sweep.
		log.Printf("[payment][usecase] build request failed order_id=%s reference=%s err=%v", orderID, tx.Reference, err)
		return entities.SignedArtifact{}, fmt.Errorf("%w: %w", ErrPaymentCreationFailed, err)
	}

	log.Printf("[payment][usecase] payment created order_id=%s reference=%s provider=%s", orderID, tx.Reference, provider)
	return artifact, nil
}

// Reconcile applies one verified gateway message. It is invoked identically
// from the browser-redirect and IPN paths, which may race for the same
// reference; correctness relies on the ledger's conditional finalize, not on
// in-process sequencing.
func (u *PaymentReconciliationUseCase) Reconcile(ctx context.Context, provider entities.Provider, params map[string]string) (ReconcileResult, error) {
	adapter, ok := u.adapters[provider]
	if !ok {
		return ReconcileResult{}, ErrUnsupportedProvider
	}

	outcome, err := adapter.ParseCallback(params)
	if err != nil {
		// Any parse/verify failure is a signature failure: respond with a
		// failure acknowledgment, touch nothing. The expected signature is
		// never logged.
		log.Printf("[payment][usecase] callback verification failed provider=%s err=%v", provider, err)
		return ReconcileResult{Status: ReconcileSignatureInvalid}, nil
	}

	tx, err := u.ledger.FindByReference(ctx, outcome.Reference)
	if errors.Is(err, ErrTransactionNotFound) {
		log.Printf("[payment][usecase] unknown reference provider=%s reference=%s", provider, outcome.Reference)
		return ReconcileResult{Status: ReconcileUnknownReference, Outcome: outcome}, nil
	}
	if err != nil {
		return ReconcileResult{}, err
	}

	if tx.Status != entities.TransactionStatusPending {
		// Duplicate/retry delivery. Same acknowledgment as a first success,
		// no further writes.
		log.Printf("[payment][usecase] duplicate delivery reference=%s status=%s", tx.Reference, tx.Status)
		return ReconcileResult{Status: ReconcileDuplicate, Outcome: outcome, Transaction: tx}, nil
	}

	final, transitioned, err := u.ledger.Finalize(ctx, outcome.Reference, outcome.Succeeded, outcome.ProviderTransactionID, outcome.RawPayload)
	if err != nil {
		return ReconcileResult{}, err
	}
	if !transitioned {
		// Lost the race against a concurrent delivery; the winner already
		// handled the order update.
		log.Printf("[payment][usecase] finalize raced reference=%s status=%s", final.Reference, final.Status)
		return ReconcileResult{Status: ReconcileDuplicate, Outcome: outcome, Transaction: final}, nil
	}

	orderStatus := entities.OrderPaymentStatusFailed
	if outcome.Succeeded {
		orderStatus = entities.OrderPaymentStatusPaid
	}
	updated, err := u.orderRepo.SetPaymentStatus(ctx, final.OrderID, orderStatus, outcome.ProviderTransactionID)
	switch {
	case err != nil:
		// Money state and order state have diverged: the transaction is
		// terminal but the order still says otherwise. This must be loud and
		// carry both ids so an operator (or sweep) can repair it.
		log.Printf("[payment][usecase] ERROR partial reconciliation reference=%s order_id=%s tx_status=%s err=%v", final.Reference, final.OrderID, final.Status, err)
	case updated.ID == "":
		// Conditional no-op: the order already sits past this transition,
		// e.g. a sibling attempt paid it before this failed one landed.
		log.Printf("[payment][usecase] order update no-op reference=%s order_id=%s tx_status=%s target=%s", final.Reference, final.OrderID, final.Status, orderStatus)
	default:
		log.Printf("[payment][usecase] reconciled reference=%s order_id=%s tx_status=%s order_payment_status=%s", final.Reference, final.OrderID, final.Status, updated.PaymentStatus)
	}

	return ReconcileResult{Status: ReconcileApplied, Outcome: outcome, Transaction: final}, nil
}

func (u *PaymentReconciliationUseCase) GetTransactionsByOrderID(ctx context.Context, orderID, userID string) ([]entities.Transaction, error) {
	order, err := u.ownedOrder(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	return u.ledger.ListByOrderID(ctx, order.ID)
}

func (u *PaymentReconciliationUseCase) VerifyOrderPayment(ctx context.Context, orderID, userID string) (entities.Order, entities.Transaction, error) {
	order, err := u.ownedOrder(ctx, orderID, userID)
	if err != nil {
		return entities.Order{}, entities.Transaction{}, err
	}

	txs, err := u.ledger.ListByOrderID(ctx, order.ID)
	if err != nil {
		return entities.Order{}, entities.Transaction{}, err
	}

	var latest entities.Transaction
	for _, tx := range txs {
		if latest.Reference == "" || tx.UpdatedAt.After(latest.UpdatedAt) {
			latest = tx
		}
	}
	return order, latest, nil
}

func (u *PaymentReconciliationUseCase) ownedOrder(ctx context.Context, orderID, userID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Order{}, ErrInvalidUserID
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if order.UserID != userID {
		return entities.Order{}, ErrNotOrderOwner
	}
	return order, nil
}
