package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"storefront_payments/internal/domain/entities"
	"storefront_payments/internal/signature"
	"storefront_payments/internal/usecase/interfaces"
)

var (
	ErrSignatureMismatch    = errors.New("gateway signature mismatch")
	ErrCreateRejected       = errors.New("gateway rejected payment creation")
	ErrUpstreamTimeout      = errors.New("gateway creation call timed out")
	ErrMissingGatewayConfig = errors.New("missing gateway configuration")
)

const (
	vnpayVersion     = "2.1.0"
	vnpayCommandPay  = "pay"
	vnpayCurrency    = "VND"
	vnpayDateLayout  = "20060102150405"
	vnpaySuccessCode = "00"
)

// VNPayConfig carries the static merchant configuration supplied externally.
type VNPayConfig struct {
	TmnCode    string
	HashSecret string
	PayURL     string
	ReturnURL  string
	Algorithm  signature.Algorithm
}

// VNPayGateway builds signed redirect URLs and verifies VNPay callbacks.
//
// VNPay's hash data is the alphabetically sorted, URL-encoded query string,
// signed with HMAC (SHA-512 on current merchant accounts, configurable).
// VNPay states amounts in 1/100 VND, so the canonical minor-unit amount is
// scaled x100 on the way out and /100 on the way in; the scaled value never
// leaves this adapter.

type VNPayGateway struct {
	cfg VNPayConfig
	now func() time.Time
}

var _ interfaces.IGatewayAdapter = (*VNPayGateway)(nil)

func NewVNPayGateway(cfg VNPayConfig) (*VNPayGateway, error) {
	if cfg.TmnCode == "" || cfg.HashSecret == "" || cfg.PayURL == "" || cfg.ReturnURL == "" {
		return nil, fmt.Errorf("%w: vnpay requires tmn code, hash secret, pay url and return url", ErrMissingGatewayConfig)
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = signature.AlgorithmSHA512
	}
	return &VNPayGateway{cfg: cfg, now: time.Now}, nil
}

func (g *VNPayGateway) Provider() entities.Provider { return entities.ProviderVNPay }

func (g *VNPayGateway) BuildRequest(_ context.Context, req entities.PaymentRequest, reference string) (entities.SignedArtifact, error) {
	orderInfo := req.OrderDescription
	if orderInfo == "" {
		orderInfo = "Thanh toan don hang " + req.OrderID
	}
	clientIP := req.ClientIP
	if clientIP == "" {
		clientIP = "127.0.0.1"
	}

	params := map[string]string{
		"vnp_Version":    vnpayVersion,
		"vnp_Command":    vnpayCommandPay,
		"vnp_TmnCode":    g.cfg.TmnCode,
		"vnp_Amount":     strconv.FormatInt(req.Amount*100, 10),
		"vnp_CurrCode":   vnpayCurrency,
		"vnp_TxnRef":     reference,
		"vnp_OrderInfo":  orderInfo,
		"vnp_OrderType":  "other",
		"vnp_Locale":     "vn",
		"vnp_ReturnUrl":  g.cfg.ReturnURL,
		"vnp_IpAddr":     clientIP,
		"vnp_CreateDate": g.now().Format(vnpayDateLayout),
	}

	canonical, err := signature.Canonicalize(params, signature.Rules{Style: signature.StyleSortedEncoded})
	if err != nil {
		return entities.SignedArtifact{}, err
	}
	sig, err := signature.Sign(canonical, g.cfg.HashSecret, g.cfg.Algorithm)
	if err != nil {
		return entities.SignedArtifact{}, err
	}

	// The sorted encoded canonical string doubles as the query string, so the
	// redirect URL re-canonicalizes to exactly the signed data.
	payURL := g.cfg.PayURL + "?" + canonical + "&vnp_SecureHash=" + sig
	log.Printf("[gateway][vnpay] build success reference=%s amount=%d", reference, req.Amount)

	return entities.SignedArtifact{
		Provider:  entities.ProviderVNPay,
		Reference: reference,
		PayURL:    payURL,
	}, nil
}

func (g *VNPayGateway) ParseCallback(params map[string]string) (entities.PaymentOutcome, error) {
	candidate := params["vnp_SecureHash"]
	if candidate == "" {
		log.Printf("[gateway][vnpay] callback missing secure hash")
		return entities.PaymentOutcome{}, ErrSignatureMismatch
	}

	signed := make(map[string]string, len(params))
	for k, v := range params {
		if k == "vnp_SecureHash" || k == "vnp_SecureHashType" {
			continue
		}
		signed[k] = v
	}

	canonical, err := signature.Canonicalize(signed, signature.Rules{Style: signature.StyleSortedEncoded})
	if err != nil {
		// Inability to canonicalize is a signature failure, not a crash.
		log.Printf("[gateway][vnpay] callback canonicalization failed reference=%s err=%v", params["vnp_TxnRef"], err)
		return entities.PaymentOutcome{}, ErrSignatureMismatch
	}
	if !signature.Verify(candidate, canonical, g.cfg.HashSecret, g.cfg.Algorithm) {
		log.Printf("[gateway][vnpay] callback signature mismatch reference=%s", params["vnp_TxnRef"])
		return entities.PaymentOutcome{}, ErrSignatureMismatch
	}

	reference := params["vnp_TxnRef"]
	if reference == "" {
		return entities.PaymentOutcome{}, ErrSignatureMismatch
	}

	scaledAmount, parseErr := strconv.ParseInt(params["vnp_Amount"], 10, 64)
	if parseErr != nil {
		// The value passed signature verification, so this is provider-side
		// breakage; keep the outcome (amount zero) but leave an audit line.
		log.Printf("[gateway][vnpay] callback amount unparseable reference=%s vnp_Amount=%q err=%v", reference, params["vnp_Amount"], parseErr)
	}
	responseCode := params["vnp_ResponseCode"]
	raw, _ := json.Marshal(params)

	return entities.PaymentOutcome{
		Reference: reference,
		Amount:    scaledAmount / 100,
		// Exact string comparison: VNPay returns a two-character code with a
		// leading zero, and anything other than "00" (including absent) is a
		// failure.
		Succeeded:             responseCode == vnpaySuccessCode,
		ProviderCode:          responseCode,
		ProviderTransactionID: params["vnp_TransactionNo"],
		RawPayload:            raw,
	}, nil
}
