package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"

	"github.com/JhonesBR/go-ledger-explorer/internal/api"
	"github.com/JhonesBR/go-ledger-explorer/internal/config"
	"github.com/JhonesBR/go-ledger-explorer/internal/db"
	"github.com/JhonesBR/go-ledger-explorer/internal/ledger"
	"github.com/JhonesBR/go-ledger-explorer/internal/metrics"
)

// shutdownOnCancel stops the Fiber listener once the context is cancelled,
// so Listen returns and deferred cleanup in main runs.
func shutdownOnCancel(ctx context.Context, app *fiber.App) {
	<-ctx.Done()
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

func main() {
	cfg := config.Load()
	if cfg.LedgerAPIURL == "" {
		log.Fatal("LEDGER_API_URL is required")
	}

	// Initialize a new Fiber app
	app := fiber.New()

	// DB connection for the chart-sample store
	pool := db.NewConnection(cfg.DatabaseURL)
	defer pool.Close()

	client := ledger.NewClient(cfg.LedgerAPIURL, cfg.LedgerTimeout)
	store := metrics.NewPostgresStore(pool)

	// Poll chart samples until shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	poller := metrics.NewPoller(client, store, cfg.PollInterval)
	go poller.Run(ctx)

	// Initialize the API routes
	api.InitializeRoutes(app, client, store)

	// The first signal stops the listener as well as the poller
	go shutdownOnCancel(ctx, app)

	if err := app.Listen(cfg.Port); err != nil {
		log.Fatal(err)
	}
}
