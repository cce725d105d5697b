package main

import (
	auction "auction-ledger/internal/auctionService"
	"auction-ledger/internal/config"
	"auction-ledger/internal/metrics"
	model "auction-ledger/internal/models"
	"auction-ledger/internal/notify"
	"auction-ledger/internal/ratelimit"
	"auction-ledger/internal/repository"
	"auction-ledger/internal/server"
	"auction-ledger/internal/treasury"
	handler "auction-ledger/services/auction/handler"
	"auction-ledger/services/auction/helpers"
	"auction-ledger/utils"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	daemonName = "auctiond"
	v          = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   daemonName,
	Short: "auctiond hosts a single-item English auction ledger over HTTP",
	Long:  `auctiond hosts a single-item English auction ledger: one seller lists a product, bidders escrow value, the seller finalizes and losing bidders withdraw.`,
	RunE: func(c *cobra.Command, args []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		if err := utils.ConfigureLogging(cfg.LogLevel, cfg.LogJSON); err != nil {
			return err
		}
		utils.Info("loaded config", map[string]any{"config": cfg})

		return run(cfg)
	},
}

func init() {
	if err := config.ConfigureCLI(v, config.Flags, rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure CLI: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	blocked := make([]model.Identity, 0, len(cfg.BlockedRecipients))
	for _, id := range cfg.BlockedRecipients {
		blocked = append(blocked, model.Identity(id))
	}

	ledger := repository.NewMemoryLedger()
	vault := treasury.NewVault(blocked...)
	feed := notify.NewFeed(cfg.EventsCapacity)
	notifier := notify.Fanout{notify.LogNotifier{}, feed}

	auctionSvc := auction.NewAuction(model.Identity(cfg.Seller), cfg.Product, ledger, vault, notifier)

	var m *metrics.Metrics
	if cfg.Metrics {
		m = metrics.New(auctionSvc)
	}
	limiter := ratelimit.New(float64(cfg.RateLimitRPS), cfg.RateLimitBurst, 10*time.Minute)

	auctionHandler := handler.NewAuctionHandler(auctionSvc, feed, m, helpers.AmountFormatter{Decimals: int32(cfg.TokenDecimals)})
	router := server.SetupRouter(auctionHandler, server.Options{Metrics: m, Limiter: limiter})

	utils.Info("starting auction server", map[string]any{
		"addr":    cfg.Addr(),
		"seller":  cfg.Seller,
		"product": cfg.Product,
	})
	if err := router.Run(cfg.Addr()); err != nil {
		return fmt.Errorf("run server on %s: %w", cfg.Addr(), err)
	}
	return nil
}
