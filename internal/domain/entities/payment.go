package entities

import "encoding/json"

// PaymentRequest is the transient per-checkout request handed to a gateway
// adapter. It is never persisted; the ledger Transaction is the durable
// record of the attempt.

type PaymentRequest struct {
	OrderID          string
	Amount           int64 // minor units, canonical scale
	OrderDescription string
	ClientIP         string
	Provider         Provider
}

// SignedArtifact is the provider-specific, signed output of building a
// payment request: for VNPay a redirect URL carrying vnp_SecureHash, for
// MoMo the payUrl (and optional app deeplink) returned by its create call.

type SignedArtifact struct {
	Provider  Provider `json:"provider"`
	Reference string   `json:"reference"`
	PayURL    string   `json:"pay_url"`
	Deeplink  string   `json:"deeplink,omitempty"`
}

// PaymentOutcome is the normalized result of a verified inbound gateway
// message (browser callback or IPN). Amount is already converted back to
// the canonical minor-unit scale by the adapter.

type PaymentOutcome struct {
	Reference             string
	OrderID               string
	Amount                int64
	Succeeded             bool
	ProviderCode          string
	ProviderTransactionID string
	RawPayload            json.RawMessage
}
