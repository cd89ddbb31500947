package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"storefront_payments/internal/domain/entities"
	"storefront_payments/internal/signature"
	"storefront_payments/internal/usecase/interfaces"
)

const (
	momoDefaultRequestType = "captureWallet"
	momoDefaultTimeout     = 10 * time.Second
)

// momoCreateFieldOrder is the byte-for-byte signing template of the create
// request. The order and field name spelling are part of MoMo's contract.
var momoCreateFieldOrder = []string{
	"accessKey", "amount", "extraData", "ipnUrl", "orderId",
	"orderInfo", "partnerCode", "redirectUrl", "requestId", "requestType",
}

// momoCallbackFieldOrder is the signing template of the IPN/redirect
// payload. MoMo echoes a superset of the create fields, so this is a
// different template than the one used at build time.
var momoCallbackFieldOrder = []string{
	"accessKey", "amount", "extraData", "message", "orderId", "orderInfo",
	"orderType", "partnerCode", "payType", "requestId", "responseTime",
	"resultCode", "transId",
}

// MoMoConfig carries the static partner configuration supplied externally.
type MoMoConfig struct {
	PartnerCode string
	AccessKey   string
	SecretKey   string
	Endpoint    string
	RedirectURL string
	IPNURL      string
	RequestType string
	Algorithm   signature.Algorithm
	Timeout     time.Duration
}

type momoCreateRequest struct {
	PartnerCode string `json:"partnerCode"`
	RequestID   string `json:"requestId"`
	Amount      int64  `json:"amount"`
	OrderID     string `json:"orderId"`
	OrderInfo   string `json:"orderInfo"`
	RedirectURL string `json:"redirectUrl"`
	IPNURL      string `json:"ipnUrl"`
	ExtraData   string `json:"extraData"`
	RequestType string `json:"requestType"`
	Signature   string `json:"signature"`
	Lang        string `json:"lang"`
}

type momoCreateResponse struct {
	PartnerCode string `json:"partnerCode"`
	OrderID     string `json:"orderId"`
	RequestID   string `json:"requestId"`
	ResultCode  int    `json:"resultCode"`
	Message     string `json:"message"`
	PayURL      string `json:"payUrl"`
	Deeplink    string `json:"deeplink"`
}

// MoMoGateway creates MoMo payments over the partner HTTP API and verifies
// IPN/redirect payloads.
//
// Unlike VNPay there is no signed redirect URL: the signed payload is POSTed
// to the provider and the synchronous response carries the initial outcome.
// The create call has a hard timeout and is never retried; retrying a
// payment-creation call can create duplicate downstream charges.

type MoMoGateway struct {
	cfg    MoMoConfig
	client *http.Client
}

var _ interfaces.IGatewayAdapter = (*MoMoGateway)(nil)

func NewMoMoGateway(cfg MoMoConfig) (*MoMoGateway, error) {
	if cfg.PartnerCode == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Endpoint == "" {
		return nil, fmt.Errorf("%w: momo requires partner code, access key, secret key and endpoint", ErrMissingGatewayConfig)
	}
	if cfg.RequestType == "" {
		cfg.RequestType = momoDefaultRequestType
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = signature.AlgorithmSHA256
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = momoDefaultTimeout
	}
	return &MoMoGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (g *MoMoGateway) Provider() entities.Provider { return entities.ProviderMoMo }

func (g *MoMoGateway) BuildRequest(ctx context.Context, req entities.PaymentRequest, reference string) (entities.SignedArtifact, error) {
	orderInfo := req.OrderDescription
	if orderInfo == "" {
		orderInfo = "Thanh toan don hang " + req.OrderID
	}

	// extraData carries the storefront order id so the IPN can be correlated
	// for audit without decoding the reference.
	params := map[string]string{
		"accessKey":   g.cfg.AccessKey,
		"amount":      strconv.FormatInt(req.Amount, 10),
		"extraData":   req.OrderID,
		"ipnUrl":      g.cfg.IPNURL,
		"orderId":     reference,
		"orderInfo":   orderInfo,
		"partnerCode": g.cfg.PartnerCode,
		"redirectUrl": g.cfg.RedirectURL,
		"requestId":   reference,
		"requestType": g.cfg.RequestType,
	}

	canonical, err := signature.Canonicalize(params, signature.Rules{Style: signature.StyleFixedOrder, FieldOrder: momoCreateFieldOrder})
	if err != nil {
		return entities.SignedArtifact{}, err
	}
	sig, err := signature.Sign(canonical, g.cfg.SecretKey, g.cfg.Algorithm)
	if err != nil {
		return entities.SignedArtifact{}, err
	}

	body := momoCreateRequest{
		PartnerCode: g.cfg.PartnerCode,
		RequestID:   reference,
		Amount:      req.Amount,
		OrderID:     reference,
		OrderInfo:   orderInfo,
		RedirectURL: g.cfg.RedirectURL,
		IPNURL:      g.cfg.IPNURL,
		ExtraData:   req.OrderID,
		RequestType: g.cfg.RequestType,
		Signature:   sig,
		Lang:        "vi",
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return entities.SignedArtifact{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return entities.SignedArtifact{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	log.Printf("[gateway][momo] create start reference=%s amount=%d", reference, req.Amount)
	resp, err := g.client.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			log.Printf("[gateway][momo] create timed out reference=%s", reference)
			return entities.SignedArtifact{}, fmt.Errorf("%w: reference=%s", ErrUpstreamTimeout, reference)
		}
		log.Printf("[gateway][momo] create failed reference=%s err=%v", reference, err)
		return entities.SignedArtifact{}, err
	}
	defer resp.Body.Close()

	var out momoCreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Printf("[gateway][momo] create response decode failed reference=%s err=%v", reference, err)
		return entities.SignedArtifact{}, err
	}
	if out.ResultCode != 0 {
		log.Printf("[gateway][momo] create rejected reference=%s result_code=%d message=%s", reference, out.ResultCode, out.Message)
		return entities.SignedArtifact{}, fmt.Errorf("%w: resultCode=%d message=%s", ErrCreateRejected, out.ResultCode, out.Message)
	}
	log.Printf("[gateway][momo] create success reference=%s", reference)

	return entities.SignedArtifact{
		Provider:  entities.ProviderMoMo,
		Reference: reference,
		PayURL:    out.PayURL,
		Deeplink:  out.Deeplink,
	}, nil
}

func (g *MoMoGateway) ParseCallback(params map[string]string) (entities.PaymentOutcome, error) {
	candidate := params["signature"]
	if candidate == "" {
		log.Printf("[gateway][momo] callback missing signature")
		return entities.PaymentOutcome{}, ErrSignatureMismatch
	}

	// accessKey is not echoed in the payload; the template requires it from
	// configuration.
	signed := make(map[string]string, len(params)+1)
	for k, v := range params {
		signed[k] = v
	}
	signed["accessKey"] = g.cfg.AccessKey

	canonical, err := signature.Canonicalize(signed, signature.Rules{Style: signature.StyleFixedOrder, FieldOrder: momoCallbackFieldOrder})
	if err != nil {
		log.Printf("[gateway][momo] callback canonicalization failed reference=%s err=%v", params["orderId"], err)
		return entities.PaymentOutcome{}, ErrSignatureMismatch
	}
	if !signature.Verify(candidate, canonical, g.cfg.SecretKey, g.cfg.Algorithm) {
		log.Printf("[gateway][momo] callback signature mismatch reference=%s", params["orderId"])
		return entities.PaymentOutcome{}, ErrSignatureMismatch
	}

	reference := params["orderId"]
	if reference == "" {
		return entities.PaymentOutcome{}, ErrSignatureMismatch
	}

	amount, _ := strconv.ParseInt(params["amount"], 10, 64)
	resultCode, codeErr := strconv.Atoi(params["resultCode"])
	raw, _ := json.Marshal(params)

	return entities.PaymentOutcome{
		Reference: reference,
		OrderID:   params["extraData"],
		Amount:    amount,
		// resultCode is numeric zero on success, unlike VNPay's string code.
		Succeeded:             codeErr == nil && resultCode == 0,
		ProviderCode:          params["resultCode"],
		ProviderTransactionID: params["transId"],
		RawPayload:            raw,
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var timeoutErr interface{ Timeout() bool }
	return errors.As(err, &timeoutErr) && timeoutErr.Timeout()
}
