package helper

import (
	"github.com/gofiber/fiber/v3"

	"github.com/JhonesBR/go-ledger-explorer/internal/ledger"
)

// RenderLedgerError maps the client error taxonomy onto HTTP responses.
// Every handler that talks to the ledger goes through this one table.
func RenderLedgerError(c fiber.Ctx, err error) error {
	switch {
	case ledger.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "not found",
		})
	case ledger.IsTimeout(err):
		return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
			"error": "ledger request timed out",
		})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "ledger unavailable",
		})
	}
}
