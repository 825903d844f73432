package chart

import (
	"github.com/gofiber/fiber/v3"

	"github.com/JhonesBR/go-ledger-explorer/internal/metrics"
)

func InitializeRoutes(app *fiber.App, store metrics.Store) {
	app.Get("/v1/metrics/blocks", GetBlockSamplesHandler(store))
}
