package response

import (
	"storefront_payments/internal/domain/entities"
)

// PaymentCreateResponse carries the signed artifact the client needs to hand
// control to the gateway.

type PaymentCreateResponse struct {
	Provider  string `json:"provider"`
	Reference string `json:"reference"`
	PayURL    string `json:"pay_url"`
	Deeplink  string `json:"deeplink,omitempty"`
}

func FromSignedArtifact(a entities.SignedArtifact) PaymentCreateResponse {
	return PaymentCreateResponse{
		Provider:  string(a.Provider),
		Reference: a.Reference,
		PayURL:    a.PayURL,
		Deeplink:  a.Deeplink,
	}
}

// MoMoIPNAck is the load-bearing webhook acknowledgment: resultCode 0 stops
// redelivery, anything else asks the provider to retry.
type MoMoIPNAck struct {
	PartnerCode string `json:"partnerCode"`
	OrderID     string `json:"orderId"`
	RequestID   string `json:"requestId"`
	ResultCode  int    `json:"resultCode"`
	Message     string `json:"message"`
}

// VNPayIPNAck follows VNPay's IPN confirm contract ("00" stops redelivery).
type VNPayIPNAck struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}
