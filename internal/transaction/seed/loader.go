package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/ridloal/product-transactions/internal/platform/logger"
	"github.com/ridloal/product-transactions/internal/transaction/repository"
)

type Mode string

// ModeAlways inserts the whole dataset on every run, so restarts duplicate rows.
// ModeIfEmpty inserts only when the products table has no rows.
const (
	ModeAlways  Mode = "always"
	ModeIfEmpty Mode = "if-empty"
	ModeOff     Mode = "off"
)

var ErrUnknownMode = errors.New("unknown seed mode")

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAlways, ModeIfEmpty, ModeOff:
		return m, nil
	case "":
		return ModeIfEmpty, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

type Result struct {
	Fetched  int
	Inserted int
	Failed   int
	Skipped  bool
}

type Loader struct {
	repo   repository.TransactionRepository
	source ProductSource
	mode   Mode
}

func NewLoader(repo repository.TransactionRepository, source ProductSource, mode Mode) *Loader {
	return &Loader{repo: repo, source: source, mode: mode}
}

// Run creates the products table and inserts the fetched records one by one.
// Only a schema failure is returned; fetch and insert failures are logged and
// leave whatever was inserted in place.
func (l *Loader) Run(ctx context.Context) (Result, error) {
	var res Result

	if err := l.repo.EnsureSchema(ctx); err != nil {
		return res, fmt.Errorf("ensure products schema: %w", err)
	}

	switch l.mode {
	case ModeOff:
		logger.Info("Seed: disabled, skipping")
		res.Skipped = true
		return res, nil
	case ModeIfEmpty:
		n, err := l.repo.CountProducts(ctx)
		if err != nil {
			logger.Error("Seed: could not count existing products, skipping", err)
			res.Skipped = true
			return res, nil
		}
		if n > 0 {
			logger.Info("Seed: products table already holds %d rows, skipping", n)
			res.Skipped = true
			return res, nil
		}
	}

	records, err := l.source.FetchProducts(ctx)
	if err != nil {
		logger.Error("Seed: fetch failed, serving without seed data", err)
		return res, nil
	}
	res.Fetched = len(records)

	for i, rec := range records {
		p := rec.ToProduct()
		if err := l.repo.CreateProduct(ctx, &p); err != nil {
			logger.Error("Seed: insert of record %d failed", err, i)
			res.Failed++
			continue
		}
		res.Inserted++
	}

	logger.Info("Seed: fetched %d, inserted %d, failed %d", res.Fetched, res.Inserted, res.Failed)
	return res, nil
}
