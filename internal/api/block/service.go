package block

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/JhonesBR/go-ledger-explorer/internal/helper"
)

type heightReader interface {
	LastBlockIndex(ctx context.Context) (int64, error)
}

func GetHeightHandler(client heightReader) fiber.Handler {
	return func(c fiber.Ctx) error {
		height, err := client.LastBlockIndex(c.RequestCtx())
		if err != nil {
			return helper.RenderLedgerError(c, err)
		}

		return c.JSON(fiber.Map{
			"height": height,
		})
	}
}
