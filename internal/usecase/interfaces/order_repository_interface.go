package interfaces

import (
	"context"

	"storefront_payments/internal/domain/entities"
)

// IOrderRepository is the Order Store collaborator. Orders are owned by the
// storefront; this service only reads them and flips payment_status.
//
// GetByID returns a zero-value Order (empty ID) when the record does not
// exist.
//
// SetPaymentStatus applies the status conditionally:
//   - paid requires the current payment_status to not already be paid
//     (an order is paid exactly once);
//   - failed requires the current payment_status to be pending (a failed
//     attempt never demotes a paid order).
//
// A failed condition returns a zero-value Order and no error, mirroring the
// not-found convention, so callers can detect that nothing was applied.

type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	SetPaymentStatus(ctx context.Context, orderID string, status entities.OrderPaymentStatus, providerTransactionID string) (entities.Order, error)
}
