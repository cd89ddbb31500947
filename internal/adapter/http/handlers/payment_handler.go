package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	request "storefront_payments/internal/adapter/http/dto/request"
	response "storefront_payments/internal/adapter/http/dto/response"
	"storefront_payments/internal/domain/entities"
	"storefront_payments/internal/usecase"
	"storefront_payments/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the payment creation, gateway callback/IPN and
// status-query endpoints.
//
// The two callback handlers and the two IPN handlers all funnel into the
// same Reconcile use case; only the acknowledgment protocol differs
// (browser redirect vs provider-specific JSON ack).

type PaymentHandler struct {
	usecase   usecase.IPaymentUseCase
	resultURL string
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, resultURL string) *PaymentHandler {
	return &PaymentHandler{usecase: uc, resultURL: resultURL}
}

// CreatePayment starts a checkout attempt and returns the signed artifact
// to redirect (or deep-link) the shopper to.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	clientIP := strings.TrimSpace(payload.ClientIP)
	if clientIP == "" {
		clientIP = c.ClientIP()
	}

	orderID := payload.ResolveOrderID()
	log.Printf("[payment][handler] create start order_id=%s provider=%s", orderID, payload.Provider)

	artifact, err := h.usecase.CreatePayment(c.Request.Context(), orderID, payload.ResolveProvider(), clientIP)
	if err != nil {
		log.Printf("[payment][handler] create failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] create success order_id=%s reference=%s", orderID, artifact.Reference)
	c.JSON(http.StatusCreated, response.FromSignedArtifact(artifact))
}

// VNPayCallback handles the user-present browser redirect from VNPay. The
// redirect target is informational only; trust comes from the signed
// parameters, and the same reconcile runs for the server-to-server IPN.
func (h *PaymentHandler) VNPayCallback(c *gin.Context) {
	h.gatewayRedirect(c, entities.ProviderVNPay)
}

// MoMoCallback handles the user-present browser redirect from MoMo.
func (h *PaymentHandler) MoMoCallback(c *gin.Context) {
	h.gatewayRedirect(c, entities.ProviderMoMo)
}

func (h *PaymentHandler) gatewayRedirect(c *gin.Context, provider entities.Provider) {
	params := queryToMap(c)
	result, err := h.usecase.Reconcile(c.Request.Context(), provider, params)
	if err != nil {
		log.Printf("[payment][handler] callback reconcile error provider=%s err=%v", provider, err)
		h.redirectToResult(c, "", "", "error")
		return
	}

	status := redirectStatus(result)
	h.redirectToResult(c, result.Transaction.OrderID, result.Outcome.Reference, status)
}

func redirectStatus(result usecase.ReconcileResult) string {
	switch result.Status {
	case usecase.ReconcileSignatureInvalid:
		return "invalid"
	case usecase.ReconcileUnknownReference:
		return "unknown"
	case usecase.ReconcileApplied, usecase.ReconcileDuplicate:
		if result.Transaction.Status == entities.TransactionStatusSucceeded {
			return "paid"
		}
		return "failed"
	default:
		return "error"
	}
}

func (h *PaymentHandler) redirectToResult(c *gin.Context, orderID, reference, status string) {
	q := url.Values{}
	if orderID != "" {
		q.Set("orderId", orderID)
	}
	if reference != "" {
		q.Set("reference", reference)
	}
	q.Set("status", status)
	c.Redirect(http.StatusFound, h.resultURL+"?"+q.Encode())
}

// VNPayIPN handles VNPay's server-to-server confirmation. VNPay redelivers
// until it receives RspCode "00", so duplicates must ack exactly like the
// first success.
func (h *PaymentHandler) VNPayIPN(c *gin.Context) {
	params := queryToMap(c)
	result, err := h.usecase.Reconcile(c.Request.Context(), entities.ProviderVNPay, params)
	if err != nil {
		log.Printf("[payment][handler] vnpay ipn reconcile error err=%v", err)
		c.JSON(http.StatusOK, response.VNPayIPNAck{RspCode: "99", Message: "Unknown error"})
		return
	}

	var ack response.VNPayIPNAck
	switch result.Status {
	case usecase.ReconcileSignatureInvalid:
		ack = response.VNPayIPNAck{RspCode: "97", Message: "Invalid signature"}
	case usecase.ReconcileUnknownReference:
		ack = response.VNPayIPNAck{RspCode: "01", Message: "Order not found"}
	default:
		ack = response.VNPayIPNAck{RspCode: "00", Message: "Confirm Success"}
	}
	c.JSON(http.StatusOK, ack)
}

// MoMoIPN handles MoMo's webhook. The response contract is load-bearing:
// resultCode 0 acknowledges delivery (for duplicates too), any non-zero
// value makes the provider retry.
func (h *PaymentHandler) MoMoIPN(c *gin.Context) {
	params, err := jsonBodyToMap(c)
	if err != nil {
		log.Printf("[payment][handler] momo ipn bad body err=%v", err)
		c.JSON(http.StatusOK, momoAck(map[string]string{}, 97, "Invalid payload"))
		return
	}

	result, err := h.usecase.Reconcile(c.Request.Context(), entities.ProviderMoMo, params)
	if err != nil {
		log.Printf("[payment][handler] momo ipn reconcile error err=%v", err)
		c.JSON(http.StatusOK, momoAck(params, 99, "Unknown error"))
		return
	}

	switch result.Status {
	case usecase.ReconcileSignatureInvalid:
		c.JSON(http.StatusOK, momoAck(params, 97, "Invalid signature"))
	case usecase.ReconcileUnknownReference:
		c.JSON(http.StatusOK, momoAck(params, 1, "Order not found"))
	default:
		c.JSON(http.StatusOK, momoAck(params, 0, "Success"))
	}
}

func momoAck(params map[string]string, resultCode int, message string) response.MoMoIPNAck {
	return response.MoMoIPNAck{
		PartnerCode: params["partnerCode"],
		OrderID:     params["orderId"],
		RequestID:   params["requestId"],
		ResultCode:  resultCode,
		Message:     message,
	}
}

// GetTransactionsByOrderID lists the ledger attempts for an order owned by
// the requesting user.
func (h *PaymentHandler) GetTransactionsByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")
	userID := c.GetHeader("X-User-Id")

	txs, err := h.usecase.GetTransactionsByOrderID(c.Request.Context(), orderID, userID)
	if err != nil {
		log.Printf("[payment][handler] list transactions failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(txs))
}

// VerifyPayment reports the payment state of an order owned by the
// requesting user.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	orderID := c.Param("order_id")
	userID := c.GetHeader("X-User-Id")

	order, latest, err := h.usecase.VerifyOrderPayment(c.Request.Context(), orderID, userID)
	if err != nil {
		log.Printf("[payment][handler] verify failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderVerification(order, latest))
}

func queryToMap(c *gin.Context) map[string]string {
	params := make(map[string]string)
	for k, vs := range c.Request.URL.Query() {
		if len(vs) > 0 {
			params[k] = vs[0]
		}
	}
	return params
}

// jsonBodyToMap flattens the IPN JSON body to the string map the adapters
// sign over. Numbers decode via json.Number so 150000 stays "150000"
// instead of "150000.000000" and large transaction ids keep their digits.
func jsonBodyToMap(c *gin.Context) (map[string]string, error) {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.UseNumber()

	var body map[string]any
	if err := decoder.Decode(&body); err != nil {
		return nil, err
	}

	params := make(map[string]string, len(body))
	for k, v := range body {
		switch val := v.(type) {
		case string:
			params[k] = val
		case json.Number:
			params[k] = val.String()
		case bool:
			if val {
				params[k] = "true"
			} else {
				params[k] = "false"
			}
		case nil:
			params[k] = ""
		default:
			params[k] = fmt.Sprintf("%v", val)
		}
	}
	return params, nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidProvider), errors.Is(err, usecase.ErrInvalidAmount), errors.Is(err, usecase.ErrInvalidReference):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid user identity", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNotOrderOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Order belongs to another user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotPayable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_PAYABLE", "Order is not awaiting payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnsupportedProvider):
		return pkg.NewDomainErrorSimple("PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentCreationFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_CREATION_FAILED", "Payment provider rejected or did not answer the creation request", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
