package main

import (
	_ "storefront_payments/docs"
	"storefront_payments/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Storefront Payments API
// @version         1.0
// @description     Payment gateway integration and transaction reconciliation (VNPay + MoMo) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
