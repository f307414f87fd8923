package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-request-inbox/internal/broker"
	"github.com/MKhiriev/go-request-inbox/internal/config"
	"github.com/MKhiriev/go-request-inbox/internal/handler"
	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/internal/server"
	"github.com/MKhiriev/go-request-inbox/internal/service"
	"github.com/MKhiriev/go-request-inbox/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("request-inbox-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).Msg("received configs")

	ctx := context.Background()

	if cfg.IssueToken != "" {
		token, err := service.NewAuthService(cfg.App, log).CreateToken(ctx, cfg.IssueToken)
		if err != nil {
			log.Fatal().Err(err).Msg("error issuing token")
		}
		fmt.Println(token.String())
		return
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	b := broker.New(cfg.Server.StreamBuffer, log)
	repositories := store.NewRepositories(db, log)

	services, err := service.NewServices(repositories, b, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, b, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
