package api

import (
	"github.com/gofiber/fiber/v3"

	"github.com/JhonesBR/go-ledger-explorer/internal/api/account"
	"github.com/JhonesBR/go-ledger-explorer/internal/api/block"
	"github.com/JhonesBR/go-ledger-explorer/internal/api/chart"
	"github.com/JhonesBR/go-ledger-explorer/internal/api/transaction"
	"github.com/JhonesBR/go-ledger-explorer/internal/ledger"
	"github.com/JhonesBR/go-ledger-explorer/internal/metrics"
)

func InitializeRoutes(app *fiber.App, client *ledger.Client, store metrics.Store) {
	account.InitializeRoutes(app, client)
	transaction.InitializeRoutes(app, client)
	block.InitializeRoutes(app, client)
	chart.InitializeRoutes(app, store)

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
