package main

import (
	_ "konkred_vault/docs"
	"konkred_vault/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           KONKRED Vault Billing API
// @version         1.0
// @description     Storefront payment settlement service (checkout + NOWPayments IPN) backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
