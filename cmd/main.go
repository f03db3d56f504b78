// Package main is the entry point for the label-service application.
//
// @title           Label Service API
// @version         1.0.0
// @description     API for generating, decoding and tracking pack labels for reusable packaging.
//
//	Labels carry a category prefix (supplier, packaging type, size, production month and year)
//	and a base-31 serial. Serial ranges are reserved atomically per prefix bucket, so every
//	label printed is unique for the lifetime of the system.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@kooply.com
// @contact.url    https://github.com/kooply/label-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token issued by the central identity service.
//
// @tag.name        Labels
// @tag.description Label generation, decoding and lifecycle operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/kooply/label-service/docs" // swagger docs

	"github.com/kooply/label-service/config"
	"github.com/kooply/label-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
