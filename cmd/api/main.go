package main

import (
	_ "painel_master/docs"
	"painel_master/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Painel Master API
// @version         1.0
// @description     Reseller PIX administration panel: plans, resellers, charges, renewals and bill payments.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Session
// @in header
// @name painelMasterUser
// @description Session cookie set by POST /auth/login.

func main() {
	routes.Run()
}
