package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ridloal/product-transactions/internal/platform/config"
	"github.com/ridloal/product-transactions/internal/platform/database"
	"github.com/ridloal/product-transactions/internal/platform/logger"
	"github.com/ridloal/product-transactions/internal/transaction/repository"
	"github.com/ridloal/product-transactions/internal/transaction/seed"
)

var errIncompleteSeed = errors.New("seeding incomplete")

// seed loads the remote dataset into the configured database and exits.
func main() {
	if err := run(os.Args[1:]); err != nil {
		logger.Error("Seeding failed", err)
		logger.Sync()
		if errors.Is(err, seed.ErrUnknownMode) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		logger.Warn("Could not read .env file: %v", err)
	}
	logCfg := config.LoadLoggerConfig()
	if err := logger.Setup(logCfg.Mode, logCfg.Filename); err != nil {
		return err
	}
	defer logger.Sync()

	dbCfg := config.LoadTransactionDBConfig()
	seedCfg := config.LoadSeedConfig()

	flags := flag.NewFlagSet("seed", flag.ContinueOnError)
	mode := flags.String("mode", seedCfg.Mode, "seed mode: always, if-empty or off")
	source := flags.String("source", seedCfg.SourceURL, "URL of the JSON dataset")
	if err := flags.Parse(args); err != nil {
		return err
	}

	seedMode, err := seed.ParseMode(*mode)
	if err != nil {
		return err
	}

	db, err := database.Connect(dbCfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	repo := repository.NewSQLTransactionRepository(db, dbCfg.Driver)
	res, err := seed.NewLoader(repo, seed.NewSourceClient(*source, seedCfg.Timeout), seedMode).Run(context.Background())
	if err != nil {
		return err
	}
	if res.Failed > 0 || (!res.Skipped && res.Fetched == 0) {
		return fmt.Errorf("%w: fetched=%d inserted=%d failed=%d", errIncompleteSeed, res.Fetched, res.Inserted, res.Failed)
	}
	return nil
}
