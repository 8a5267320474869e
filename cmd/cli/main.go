package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/rs/zerolog"

	"github.com/sandrolex/rsu/pkg/runtime/terminal"
	"github.com/sandrolex/rsu/pkg/services/config"
	"github.com/sandrolex/rsu/pkg/services/fx"
	"github.com/sandrolex/rsu/pkg/services/marketdata"
	"github.com/sandrolex/rsu/pkg/services/quotes"
	"github.com/sandrolex/rsu/pkg/services/scenario"
	"github.com/sandrolex/rsu/pkg/store/quotecache"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Profiles are optional; the CLI runs fine without a config file.
	var registry config.Registry
	if usr, err := user.Current(); err == nil {
		if r, err := config.NewRegistry(usr.HomeDir + "/.rsucfg"); err == nil {
			registry = r
		}
	}

	cache, err := openCache()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	prices := marketdata.NewStooqClient(logger, os.Getenv("STOOQ_BASE_URL"))
	fxClient := fx.NewClient(logger, os.Getenv("FX_BASE_URL"))
	quoteSvc := quotes.NewService(prices, fxClient, cache)

	cli := terminal.NewCLI(terminal.Options{
		Estimator: scenario.NewEstimator(quoteSvc, quoteSvc),
		Registry:  registry,
		Output:    os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openCache() (quotecache.Store, error) {
	dbPath := os.Getenv("CACHE_DB_PATH")
	if dbPath == "" {
		dbPath = "rsu.db"
	}
	db, err := quotecache.NewDB(quotecache.Settings{DbPath: dbPath})
	if err != nil {
		return nil, fmt.Errorf("failed to open quote cache: %w", err)
	}
	return quotecache.NewStore(db)
}
