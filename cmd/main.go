package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	gql "github.com/acamargo/persona-server/internal/api/graphql"
	"github.com/acamargo/persona-server/internal/api/http/router"
	"github.com/acamargo/persona-server/internal/config"
	"github.com/acamargo/persona-server/internal/logger"
	"github.com/acamargo/persona-server/internal/metrics"
	"github.com/acamargo/persona-server/internal/model"
	"github.com/acamargo/persona-server/internal/repository/mongo"
	"github.com/acamargo/persona-server/internal/seed"
	"github.com/acamargo/persona-server/internal/server"
	"github.com/acamargo/persona-server/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	conn, err := mongo.NewConnection(ctx, cfg.Database.URI, cfg.Database.Name)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	defer conn.Close(context.Background())

	personRepo := mongo.NewPersonRepository(conn)
	if err := personRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("failed to ensure indexes", "error", err)
	}

	personService := service.NewPerson(personRepo, logger)
	statsService := service.NewStats(personRepo, logger)

	if cfg.Seed.Enable {
		if err := seed.Run(ctx, personService, logger); err != nil {
			logger.Fatal("failed to seed database", "error", err)
		}
	}

	resolver := gql.NewResolver(personService, statsService, logger)
	handler, err := router.New(resolver, logger, metrics.New())
	if err != nil {
		logger.Fatal("failed to build router", "error", err)
	}

	httpServer := server.NewHTTPServer(handler, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
