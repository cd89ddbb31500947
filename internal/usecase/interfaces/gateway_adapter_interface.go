package interfaces

import (
	"context"

	"storefront_payments/internal/domain/entities"
)

// IGatewayAdapter abstracts an external payment gateway (VNPay, MoMo).
//
// BuildRequest turns an internal PaymentRequest plus the ledger reference
// into the provider's signed artifact. For MoMo this performs the
// synchronous create call against the provider; a same-request rejection or
// timeout surfaces as an error and is never retried here.
//
// ParseCallback verifies and normalizes an inbound gateway message (browser
// callback or IPN). A recomputed-signature mismatch returns
// ErrSignatureMismatch and no state may change for such messages. Amounts in
// the returned PaymentOutcome are already converted to the canonical
// minor-unit scale.

type IGatewayAdapter interface {
	Provider() entities.Provider
	BuildRequest(ctx context.Context, req entities.PaymentRequest, reference string) (entities.SignedArtifact, error)
	ParseCallback(params map[string]string) (entities.PaymentOutcome, error)
}
