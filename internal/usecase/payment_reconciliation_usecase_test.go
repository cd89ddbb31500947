package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"storefront_payments/internal/domain/entities"
	"storefront_payments/internal/usecase/interfaces"
	mock_interfaces "storefront_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newVNPayAdapterMock(ctrl *gomock.Controller) *mock_interfaces.MockIGatewayAdapter {
	adapter := mock_interfaces.NewMockIGatewayAdapter(ctrl)
	adapter.EXPECT().Provider().Return(entities.ProviderVNPay).AnyTimes()
	return adapter
}

func newCoordinator(repo interfaces.ITransactionRepository, orderRepo interfaces.IOrderRepository, adapters ...interfaces.IGatewayAdapter) *PaymentReconciliationUseCase {
	return NewPaymentReconciliationUseCase(NewTransactionLedgerUseCase(repo), orderRepo, adapters)
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestPaymentReconciliationUseCase_CreatePayment_Validations(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc := newCoordinator(nil, nil)
		_, err := uc.CreatePayment(context.Background(), " ", entities.ProviderVNPay, "")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("invalid provider", func(t *testing.T) {
		uc := newCoordinator(nil, nil)
		_, err := uc.CreatePayment(context.Background(), "ord-1", entities.Provider("stripe"), "")
		if !errors.Is(err, ErrInvalidProvider) {
			t.Fatalf("expected ErrInvalidProvider, got %v", err)
		}
	})

	t.Run("no adapter configured", func(t *testing.T) {
		uc := newCoordinator(nil, nil)
		_, err := uc.CreatePayment(context.Background(), "ord-1", entities.ProviderMoMo, "")
		if !errors.Is(err, ErrUnsupportedProvider) {
			t.Fatalf("expected ErrUnsupportedProvider, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newCoordinator(nil, orderRepo, newVNPayAdapterMock(ctrl))

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		_, err := uc.CreatePayment(context.Background(), "ord-1", entities.ProviderVNPay, "")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("order already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newCoordinator(nil, orderRepo, newVNPayAdapterMock(ctrl))

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").
			Return(entities.Order{ID: "ord-1", PaymentStatus: entities.OrderPaymentStatusPaid}, nil)

		_, err := uc.CreatePayment(context.Background(), "ord-1", entities.ProviderVNPay, "")
		if !errors.Is(err, ErrOrderNotPayable) {
			t.Fatalf("expected ErrOrderNotPayable, got %v", err)
		}
	})
}

func TestPaymentReconciliationUseCase_CreatePayment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		adapter := newVNPayAdapterMock(ctrl)
		uc := newCoordinator(repo, orderRepo, adapter)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").
			Return(entities.Order{ID: "ord-1", Amount: 150000, Description: "Don hang", PaymentStatus: entities.OrderPaymentStatusPending}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) { return tx, nil })
		adapter.EXPECT().BuildRequest(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.PaymentRequest, reference string) (entities.SignedArtifact, error) {
				if req.OrderID != "ord-1" || req.Amount != 150000 || req.ClientIP != "203.0.113.9" {
					t.Fatalf("unexpected payment request %+v", req)
				}
				return entities.SignedArtifact{Provider: entities.ProviderVNPay, Reference: reference, PayURL: "https://pay/" + reference}, nil
			})

		artifact, err := uc.CreatePayment(context.Background(), "ord-1", entities.ProviderVNPay, "203.0.113.9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if artifact.PayURL == "" || artifact.Reference == "" {
			t.Fatalf("incomplete artifact %+v", artifact)
		}
	})

	t.Run("failed order stays retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		adapter := newVNPayAdapterMock(ctrl)
		uc := newCoordinator(repo, orderRepo, adapter)

		// A recorded failed attempt must not strand the order: the retry
		// mints a second ledger entry for the same order.
		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").
			Return(entities.Order{ID: "ord-1", Amount: 150000, PaymentStatus: entities.OrderPaymentStatusFailed}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if tx.Status != entities.TransactionStatusPending {
					t.Fatalf("expected pending attempt, got %s", tx.Status)
				}
				return tx, nil
			})
		adapter.EXPECT().BuildRequest(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.PaymentRequest, reference string) (entities.SignedArtifact, error) {
				return entities.SignedArtifact{Provider: entities.ProviderVNPay, Reference: reference, PayURL: "https://pay/" + reference}, nil
			})

		artifact, err := uc.CreatePayment(context.Background(), "ord-1", entities.ProviderVNPay, "")
		if err != nil {
			t.Fatalf("failed order must accept a new attempt, got %v", err)
		}
		if artifact.Reference == "" {
			t.Fatalf("incomplete artifact %+v", artifact)
		}
	})

	t.Run("build failure leaves attempt pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		adapter := newVNPayAdapterMock(ctrl)
		uc := newCoordinator(repo, orderRepo, adapter)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").
			Return(entities.Order{ID: "ord-1", Amount: 150000, PaymentStatus: entities.OrderPaymentStatusPending}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if tx.Status != entities.TransactionStatusPending {
					t.Fatalf("expected pending attempt, got %s", tx.Status)
				}
				return tx, nil
			})
		adapter.EXPECT().BuildRequest(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.SignedArtifact{}, errors.New("gateway down"))

		_, err := uc.CreatePayment(context.Background(), "ord-1", entities.ProviderVNPay, "")
		if !errors.Is(err, ErrPaymentCreationFailed) {
			t.Fatalf("expected ErrPaymentCreationFailed, got %v", err)
		}
	})
}

func TestPaymentReconciliationUseCase_Reconcile(t *testing.T) {
	raw := json.RawMessage(`{"vnp_ResponseCode":"00"}`)
	outcome := entities.PaymentOutcome{
		Reference:             "ref-1",
		Amount:                150000,
		Succeeded:             true,
		ProviderCode:          "00",
		ProviderTransactionID: "14226112",
		RawPayload:            raw,
	}
	params := map[string]string{"vnp_TxnRef": "ref-1"}

	t.Run("applies success and marks order paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		adapter := newVNPayAdapterMock(ctrl)
		uc := newCoordinator(repo, orderRepo, adapter)

		adapter.EXPECT().ParseCallback(params).Return(outcome, nil)
		repo.EXPECT().GetByReference(gomock.Any(), "ref-1").
			Return(entities.Transaction{Reference: "ref-1", OrderID: "ord-1", Status: entities.TransactionStatusPending}, nil)
		repo.EXPECT().
			FinalizeByReference(gomock.Any(), "ref-1", entities.TransactionStatusSucceeded, "14226112", raw).
			Return(entities.Transaction{Reference: "ref-1", OrderID: "ord-1", Status: entities.TransactionStatusSucceeded}, true, nil)
		orderRepo.EXPECT().
			SetPaymentStatus(gomock.Any(), "ord-1", entities.OrderPaymentStatusPaid, "14226112").
			Return(entities.Order{ID: "ord-1", PaymentStatus: entities.OrderPaymentStatusPaid}, nil).
			Times(1)

		result, err := uc.Reconcile(context.Background(), entities.ProviderVNPay, params)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != ReconcileApplied {
			t.Fatalf("expected applied, got %s", result.Status)
		}
		if result.Transaction.Status != entities.TransactionStatusSucceeded {
			t.Fatalf("unexpected transaction status %s", result.Transaction.Status)
		}
	})

	t.Run("applies failure and marks order failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		adapter := newVNPayAdapterMock(ctrl)
		uc := newCoordinator(repo, orderRepo, adapter)

		failed := outcome
		failed.Succeeded = false
		failed.ProviderCode = "24"

		adapter.EXPECT().ParseCallback(params).Return(failed, nil)
		repo.EXPECT().GetByReference(gomock.Any(), "ref-1").
			Return(entities.Transaction{Reference: "ref-1", OrderID: "ord-1", Status: entities.TransactionStatusPending}, nil)
		repo.EXPECT().
			FinalizeByReference(gomock.Any(), "ref-1", entities.TransactionStatusFailed, "14226112", gomock.Any()).
			Return(entities.Transaction{Reference: "ref-1", OrderID: "ord-1", Status: entities.TransactionStatusFailed}, true, nil)
		orderRepo.EXPECT().
			SetPaymentStatus(gomock.Any(), "ord-1", entities.OrderPaymentStatusFailed, "14226112").
			Return(entities.Order{ID: "ord-1", PaymentStatus: entities.OrderPaymentStatusFailed}, nil)

		result, err := uc.Reconcile(context.Background(), entities.ProviderVNPay, params)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != ReconcileApplied {
			t.Fatalf("expected applied, got %s", result.Status)
		}
	})

	t.Run("signature failure touches nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		adapter := newVNPayAdapterMock(ctrl)
		uc := newCoordinator(repo, orderRepo, adapter)

		adapter.EXPECT().ParseCallback(params).Return(entities.PaymentOutcome{}, errors.New("gateway signature mismatch"))

		result, err := uc.Reconcile(context.Background(), entities.ProviderVNPay, params)
		if err != nil {
			t.Fatalf("verification failure must be in-band, got error %v", err)
		}
		if result.Status != ReconcileSignatureInvalid {
			t.Fatalf("expected signature_invalid, got %s", result.Status)
		}
	})

	t.Run("unknown reference is a hard reject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		adapter := newVNPayAdapterMock(ctrl)
		uc := newCoordinator(repo, orderRepo, adapter)

		adapter.EXPECT().ParseCallback(params).Return(outcome, nil)
		repo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(entities.Transaction{}, nil)

		result, err := uc.Reconcile(context.Background(), entities.ProviderVNPay, params)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != ReconcileUnknownReference {
			t.Fatalf("expected unknown_reference, got %s", result.Status)
		}
	})

	t.Run("duplicate delivery writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		adapter := newVNPayAdapterMock(ctrl)
		uc := newCoordinator(repo, orderRepo, adapter)

		adapter.EXPECT().ParseCallback(params).Return(outcome, nil)
		repo.EXPECT().GetByReference(gomock.Any(), "ref-1").
			Return(entities.Transaction{Reference: "ref-1", OrderID: "ord-1", Status: entities.TransactionStatusSucceeded}, nil)

		result, err := uc.Reconcile(context.Background(), entities.ProviderVNPay, params)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != ReconcileDuplicate {
			t.Fatalf("expected duplicate, got %s", result.Status)
		}
	})

	t.Run("lost finalize race is a duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		adapter := newVNPayAdapterMock(ctrl)
		uc := newCoordinator(repo, orderRepo, adapter)

		adapter.EXPECT().ParseCallback(params).Return(outcome, nil)
		repo.EXPECT().GetByReference(gomock.Any(), "ref-1").
			Return(entities.Transaction{Reference: "ref-1", OrderID: "ord-1", Status: entities.TransactionStatusPending}, nil)
		repo.EXPECT().
			FinalizeByReference(gomock.Any(), "ref-1", entities.TransactionStatusSucceeded, "14226112", gomock.Any()).
			Return(entities.Transaction{Reference: "ref-1", OrderID: "ord-1", Status: entities.TransactionStatusSucceeded}, false, nil)

		result, err := uc.Reconcile(context.Background(), entities.ProviderVNPay, params)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != ReconcileDuplicate {
			t.Fatalf("expected duplicate, got %s", result.Status)
		}
	})

	t.Run("partial reconciliation still reports applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		adapter := newVNPayAdapterMock(ctrl)
		uc := newCoordinator(repo, orderRepo, adapter)

		adapter.EXPECT().ParseCallback(params).Return(outcome, nil)
		repo.EXPECT().GetByReference(gomock.Any(), "ref-1").
			Return(entities.Transaction{Reference: "ref-1", OrderID: "ord-1", Status: entities.TransactionStatusPending}, nil)
		repo.EXPECT().
			FinalizeByReference(gomock.Any(), "ref-1", entities.TransactionStatusSucceeded, "14226112", gomock.Any()).
			Return(entities.Transaction{Reference: "ref-1", OrderID: "ord-1", Status: entities.TransactionStatusSucceeded}, true, nil)
		orderRepo.EXPECT().
			SetPaymentStatus(gomock.Any(), "ord-1", entities.OrderPaymentStatusPaid, "14226112").
			Return(entities.Order{}, errors.New("dynamodb unavailable"))

		logged := captureLog(t)
		result, err := uc.Reconcile(context.Background(), entities.ProviderVNPay, params)
		if err != nil {
			t.Fatalf("partial reconciliation must not fail the ack, got %v", err)
		}
		if result.Status != ReconcileApplied {
			t.Fatalf("expected applied, got %s", result.Status)
		}
		if !strings.Contains(logged.String(), "partial reconciliation") {
			t.Fatalf("store error must surface as partial reconciliation, got %q", logged.String())
		}
	})

	t.Run("conditional order no-op is not partial reconciliation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		adapter := newVNPayAdapterMock(ctrl)
		uc := newCoordinator(repo, orderRepo, adapter)

		failed := outcome
		failed.Succeeded = false
		failed.ProviderCode = "24"

		adapter.EXPECT().ParseCallback(params).Return(failed, nil)
		repo.EXPECT().GetByReference(gomock.Any(), "ref-1").
			Return(entities.Transaction{Reference: "ref-1", OrderID: "ord-1", Status: entities.TransactionStatusPending}, nil)
		repo.EXPECT().
			FinalizeByReference(gomock.Any(), "ref-1", entities.TransactionStatusFailed, "14226112", gomock.Any()).
			Return(entities.Transaction{Reference: "ref-1", OrderID: "ord-1", Status: entities.TransactionStatusFailed}, true, nil)
		// A sibling attempt already paid the order: the conditional update
		// no-ops with a zero order and no error.
		orderRepo.EXPECT().
			SetPaymentStatus(gomock.Any(), "ord-1", entities.OrderPaymentStatusFailed, "14226112").
			Return(entities.Order{}, nil)

		logged := captureLog(t)
		result, err := uc.Reconcile(context.Background(), entities.ProviderVNPay, params)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != ReconcileApplied {
			t.Fatalf("expected applied, got %s", result.Status)
		}
		if strings.Contains(logged.String(), "partial reconciliation") {
			t.Fatalf("benign no-op must not raise partial reconciliation, got %q", logged.String())
		}
	})

	t.Run("unsupported provider", func(t *testing.T) {
		uc := newCoordinator(nil, nil)
		_, err := uc.Reconcile(context.Background(), entities.ProviderMoMo, params)
		if !errors.Is(err, ErrUnsupportedProvider) {
			t.Fatalf("expected ErrUnsupportedProvider, got %v", err)
		}
	})
}

// casTransactionRepo is an in-memory repository with the same conditional
// finalize semantics as the DynamoDB implementation, for exercising
// concurrent deliveries end to end.
type casTransactionRepo struct {
	mu sync.Mutex
	tx entities.Transaction
}

func (r *casTransactionRepo) Create(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tx = tx
	return tx, nil
}

func (r *casTransactionRepo) GetByReference(_ context.Context, reference string) (entities.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tx.Reference != reference {
		return entities.Transaction{}, nil
	}
	return r.tx, nil
}

func (r *casTransactionRepo) ListByOrderID(_ context.Context, orderID string) ([]entities.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tx.OrderID != orderID {
		return nil, nil
	}
	return []entities.Transaction{r.tx}, nil
}

func (r *casTransactionRepo) FinalizeByReference(_ context.Context, reference string, status entities.TransactionStatus, providerTransactionID string, rawPayload json.RawMessage) (entities.Transaction, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tx.Reference != reference {
		return entities.Transaction{}, false, nil
	}
	if r.tx.Status != entities.TransactionStatusPending {
		return r.tx, false, nil
	}
	r.tx.Status = status
	r.tx.ProviderTransactionID = providerTransactionID
	r.tx.RawProviderPayload = rawPayload
	r.tx.UpdatedAt = time.Now().UTC()
	return r.tx, true, nil
}

var _ interfaces.ITransactionRepository = (*casTransactionRepo)(nil)

func TestPaymentReconciliationUseCase_Reconcile_ConcurrentDeliveries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := &casTransactionRepo{tx: entities.Transaction{
		Reference: "ref-1",
		OrderID:   "ord-1",
		Status:    entities.TransactionStatusPending,
	}}
	orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
	adapter := newVNPayAdapterMock(ctrl)
	uc := newCoordinator(repo, orderRepo, adapter)

	outcome := entities.PaymentOutcome{Reference: "ref-1", Succeeded: true, ProviderTransactionID: "tx-9"}
	adapter.EXPECT().ParseCallback(gomock.Any()).Return(outcome, nil).Times(2)

	// Exactly one of the two deliveries may update the order.
	orderRepo.EXPECT().
		SetPaymentStatus(gomock.Any(), "ord-1", entities.OrderPaymentStatusPaid, "tx-9").
		Return(entities.Order{ID: "ord-1", PaymentStatus: entities.OrderPaymentStatusPaid}, nil).
		Times(1)

	results := make([]ReconcileResult, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := uc.Reconcile(context.Background(), entities.ProviderVNPay, map[string]string{"vnp_TxnRef": "ref-1"})
			if err != nil {
				t.Errorf("delivery %d: unexpected error: %v", i, err)
				return
			}
			results[i] = result
		}(i)
	}
	wg.Wait()

	applied, duplicates := 0, 0
	for _, result := range results {
		switch result.Status {
		case ReconcileApplied:
			applied++
		case ReconcileDuplicate:
			duplicates++
		default:
			t.Fatalf("unexpected status %s", result.Status)
		}
	}
	if applied != 1 || duplicates != 1 {
		t.Fatalf("expected exactly one applied and one duplicate, got applied=%d duplicates=%d", applied, duplicates)
	}
}

func TestPaymentReconciliationUseCase_OwnedReads(t *testing.T) {
	t.Run("empty user id", func(t *testing.T) {
		uc := newCoordinator(nil, nil)
		_, err := uc.GetTransactionsByOrderID(context.Background(), "ord-1", " ")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("foreign order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newCoordinator(nil, orderRepo)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", UserID: "user-2"}, nil)

		_, err := uc.GetTransactionsByOrderID(context.Background(), "ord-1", "user-1")
		if !errors.Is(err, ErrNotOrderOwner) {
			t.Fatalf("expected ErrNotOrderOwner, got %v", err)
		}
	})

	t.Run("lists owned transactions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newCoordinator(repo, orderRepo)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", UserID: "user-1"}, nil)
		repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.Transaction{{Reference: "ref-1"}}, nil)

		txs, err := uc.GetTransactionsByOrderID(context.Background(), "ord-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txs) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(txs))
		}
	})

	t.Run("verify picks latest attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newCoordinator(repo, orderRepo)

		now := time.Now().UTC()
		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").
			Return(entities.Order{ID: "ord-1", UserID: "user-1", PaymentStatus: entities.OrderPaymentStatusPaid}, nil)
		repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.Transaction{
			{Reference: "old", Status: entities.TransactionStatusFailed, UpdatedAt: now.Add(-time.Hour)},
			{Reference: "new", Status: entities.TransactionStatusSucceeded, UpdatedAt: now},
		}, nil)

		order, latest, err := uc.VerifyOrderPayment(context.Background(), "ord-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.PaymentStatus != entities.OrderPaymentStatusPaid {
			t.Fatalf("unexpected order status %s", order.PaymentStatus)
		}
		if latest.Reference != "new" {
			t.Fatalf("expected latest attempt, got %s", latest.Reference)
		}
	})

	t.Run("verify with no attempts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newCoordinator(repo, orderRepo)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").
			Return(entities.Order{ID: "ord-1", UserID: "user-1", PaymentStatus: entities.OrderPaymentStatusPending}, nil)
		repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return(nil, nil)

		_, latest, err := uc.VerifyOrderPayment(context.Background(), "ord-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if latest.Reference != "" {
			t.Fatalf("expected zero-value latest transaction, got %+v", latest)
		}
	})
}
