package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sandrolex/rsu/pkg/scheduler"
	"github.com/sandrolex/rsu/pkg/server"
	"github.com/sandrolex/rsu/pkg/services/config"
	"github.com/sandrolex/rsu/pkg/services/fx"
	"github.com/sandrolex/rsu/pkg/services/marketdata"
	"github.com/sandrolex/rsu/pkg/services/quotes"
	"github.com/sandrolex/rsu/pkg/services/scenario"
	"github.com/sandrolex/rsu/pkg/store/quotecache"
)

var ratesPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the RSU calculator web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&ratesPath, "rates", "c", "",
		"Path to an optional rates config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	rates, err := config.LoadRates(ratesPath)
	if err != nil {
		return fmt.Errorf("failed to load rates config: %w", err)
	}

	dbPath := os.Getenv("CACHE_DB_PATH")
	if dbPath == "" {
		dbPath = "rsu.db"
	}
	db, err := quotecache.NewDB(quotecache.Settings{DbPath: dbPath})
	if err != nil {
		return fmt.Errorf("failed to open quote cache: %w", err)
	}
	defer db.Close()

	cache, err := quotecache.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create quote cache store: %w", err)
	}

	prices := marketdata.NewStooqClient(logger, os.Getenv("STOOQ_BASE_URL"))
	fxClient := fx.NewClient(logger, os.Getenv("FX_BASE_URL"))
	quoteSvc := quotes.NewService(prices, fxClient, cache)
	estimator := scenario.NewEstimator(quoteSvc, quoteSvc)

	sched := scheduler.New(logger)
	if err := sched.AddJob("@hourly", quotes.NewRateRefreshJob(quoteSvc, logger)); err != nil {
		return fmt.Errorf("failed to schedule rate refresh: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	webAPI := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Estimator: estimator,
			Quotes:    quoteSvc,
			Rates:     rates,
			Logger:    logger,
		},
	})

	return webAPI.Start()
}
