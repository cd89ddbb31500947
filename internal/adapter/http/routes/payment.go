package routes

import (
	"storefront_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayment = "/payment"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payment := rg.Group(PathPayment)
	{
		payment.POST("/create", paymentHandler.CreatePayment)

		// Gateway-facing endpoints: browser redirects plus server-to-server
		// IPNs. Both paths for a provider drive the same reconcile.
		payment.GET("/vnpay/callback", paymentHandler.VNPayCallback)
		payment.GET("/vnpay/ipn", paymentHandler.VNPayIPN)
		payment.GET("/momo/callback", paymentHandler.MoMoCallback)
		payment.POST("/momo/ipn", paymentHandler.MoMoIPN)

		// Ownership-gated status queries.
		payment.GET("/transaction/:order_id", paymentHandler.GetTransactionsByOrderID)
		payment.GET("/verify/:order_id", paymentHandler.VerifyPayment)
	}
}
