package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ridloal/product-transactions/internal/platform/config"
	"github.com/ridloal/product-transactions/internal/platform/database"
	"github.com/ridloal/product-transactions/internal/platform/logger"
	transactionAPI "github.com/ridloal/product-transactions/internal/transaction/api"
	transactionRepo "github.com/ridloal/product-transactions/internal/transaction/repository"
	"github.com/ridloal/product-transactions/internal/transaction/seed"
	transactionService "github.com/ridloal/product-transactions/internal/transaction/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		logger.Error("Transaction Service stopped", err)
		logger.Sync()
		os.Exit(1)
	}
}

func run() error {
	// Load Config
	if err := config.LoadDotEnv(); err != nil {
		logger.Warn("Could not read .env file: %v", err)
	}
	logCfg := config.LoadLoggerConfig()
	if err := logger.Setup(logCfg.Mode, logCfg.Filename); err != nil {
		return err
	}
	defer logger.Sync()

	dbCfg := config.LoadTransactionDBConfig()
	serverCfg := config.LoadServerConfig("3001")
	seedCfg := config.LoadSeedConfig()
	seedMode, err := seed.ParseMode(seedCfg.Mode)
	if err != nil {
		return err
	}

	logger.Info("Starting Transaction Service...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Setup Database
	db, err := database.Connect(dbCfg)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := transactionRepo.NewSQLTransactionRepository(db, dbCfg.Driver)

	// Seed before accepting requests so no request sees a half-loaded table.
	source := seed.NewSourceClient(seedCfg.SourceURL, seedCfg.Timeout)
	if _, err := seed.NewLoader(repo, source, seedMode).Run(ctx); err != nil {
		return err
	}

	// Setup Dependencies
	txService := transactionService.NewTransactionService(repo)
	txHandler := transactionAPI.NewTransactionHandler(txService)
	router := transactionAPI.NewRouter(txHandler)

	server := &http.Server{
		Addr:    serverCfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Transaction Service running on port " + serverCfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down Transaction Service...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
