package chart

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/JhonesBR/go-ledger-explorer/internal/metrics"
)

func GetBlockSamplesHandler(store metrics.Store) fiber.Handler {
	return func(c fiber.Ctx) error {
		size, _ := strconv.Atoi(c.Query("size", "50"))
		if size < 1 {
			size = 1
		} else if size > 500 {
			size = 500
		}

		samples, err := store.RecentSamples(c.RequestCtx(), size)
		if err != nil {
			log.Printf("chart: load samples: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load samples",
			})
		}

		return c.JSON(fiber.Map{
			"items": samples,
		})
	}
}
