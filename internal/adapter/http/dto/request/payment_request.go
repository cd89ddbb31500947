package request

import (
	"strings"

	"storefront_payments/internal/domain/entities"
)

// PaymentCreateRequest is the payload for POST /payment/create. client_ip is
// optional; when absent the handler falls back to the connection's remote
// address so the gateway still receives a plausible value.

type PaymentCreateRequest struct {
	OrderID  string `json:"order_id" binding:"required"`
	Provider string `json:"provider" binding:"required"`
	ClientIP string `json:"client_ip"`
}

func (r PaymentCreateRequest) ResolveOrderID() string {
	return strings.TrimSpace(r.OrderID)
}

// ResolveProvider normalizes the provider string; an unknown value maps to
// the zero Provider, which the use case rejects.
func (r PaymentCreateRequest) ResolveProvider() entities.Provider {
	switch strings.ToLower(strings.TrimSpace(r.Provider)) {
	case string(entities.ProviderVNPay):
		return entities.ProviderVNPay
	case string(entities.ProviderMoMo):
		return entities.ProviderMoMo
	default:
		return entities.Provider("")
	}
}
