package routes

import (
	"log"
	"os"
	"strconv"

	_ "storefront_payments/docs" // swag-generated
	"storefront_payments/internal/adapter/http/handlers"
	"storefront_payments/internal/adapter/persistence/repository"
	"storefront_payments/internal/infrastructure/database"
	"storefront_payments/internal/infrastructure/payments"
	"storefront_payments/internal/signature"
	"storefront_payments/internal/usecase"
	"storefront_payments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	transactionRepo := repository.NewTransactionDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)

	ledger := usecase.NewTransactionLedgerUseCase(transactionRepo)

	var adapters []interfaces.IGatewayAdapter
	if vnpay, err := payments.NewVNPayGateway(vnpayConfigFromEnv()); err != nil {
		log.Printf("VNPay gateway not configured: %v", err)
	} else {
		adapters = append(adapters, vnpay)
	}
	if momo, err := payments.NewMoMoGateway(momoConfigFromEnv()); err != nil {
		log.Printf("MoMo gateway not configured: %v", err)
	} else {
		adapters = append(adapters, momo)
	}

	paymentUseCase := usecase.NewPaymentReconciliationUseCase(ledger, orderRepo, adapters)

	resultURL := getenvDefault("PAYMENT_RESULT_URL", "http://localhost:3000/payment/result")
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, resultURL)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
}

func vnpayConfigFromEnv() payments.VNPayConfig {
	return payments.VNPayConfig{
		TmnCode:    os.Getenv("VNPAY_TMN_CODE"),
		HashSecret: os.Getenv("VNPAY_HASH_SECRET"),
		PayURL:     getenvDefault("VNPAY_PAY_URL", "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html"),
		ReturnURL:  os.Getenv("VNPAY_RETURN_URL"),
		Algorithm:  signature.Algorithm(getenvDefault("VNPAY_HASH_ALGO", string(signature.AlgorithmSHA512))),
	}
}

func momoConfigFromEnv() payments.MoMoConfig {
	return payments.MoMoConfig{
		PartnerCode: os.Getenv("MOMO_PARTNER_CODE"),
		AccessKey:   os.Getenv("MOMO_ACCESS_KEY"),
		SecretKey:   os.Getenv("MOMO_SECRET_KEY"),
		Endpoint:    getenvDefault("MOMO_ENDPOINT", "https://test-payment.momo.vn/v2/gateway/api/create"),
		RedirectURL: os.Getenv("MOMO_REDIRECT_URL"),
		IPNURL:      os.Getenv("MOMO_IPN_URL"),
		Algorithm:   signature.Algorithm(getenvDefault("MOMO_HASH_ALGO", string(signature.AlgorithmSHA256))),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
