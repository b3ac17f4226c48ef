package main

import (
	"context"
	"log/slog"
	"os"

	"detailshop/internal/adapter/http/routes"
	"detailshop/internal/config"
	"detailshop/pkg/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Detail Shop API
// @version         1.0
// @description     Multi-tenant auto-detailing back end: catalog, clients, assessments with estimate snapshots, public booking and payments.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("[config] invalid configuration", "err", err)
		os.Exit(1)
	}

	if err := routes.Run(context.Background(), cfg); err != nil {
		slog.Error("[http] server stopped", "err", err)
		os.Exit(1)
	}
}
