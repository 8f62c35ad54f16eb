// Package main is the entry point for the courier portal API.
//
// @title           Courier Portal API
// @version         1.0.0
// @description     Backend-for-frontend of the courier portal: price quotes, chargeable weight,
// @description     HSN code search, shipment booking and tracking, OTP login and staff tools.
//
//	Pricing, bookings, credentials and OTP issuance are owned by the logistics backend;
//	this service validates input, derives chargeable weight and shapes responses.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/courier-portal
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Session token as "Bearer <token>", issued once the login flow reaches the authenticated stage.
//
// @tag.name        Quotes
// @tag.description Domestic and international price quotes
//
// @tag.name        Tools
// @tag.description Chargeable weight calculator
//
// @tag.name        HSN
// @tag.description HSN code search and lookup
//
// @tag.name        Shipments
// @tag.description Shipment booking and tracking
//
// @tag.name        Auth
// @tag.description Signup, login and OTP verification
//
// @tag.name        Employee
// @tag.description Staff-only operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/courier-portal/docs" // swagger docs

	"github.com/guttosm/courier-portal/config"
	"github.com/guttosm/courier-portal/internal/app"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server)
	runErr := server.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Close(ctx)

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
