package account

import (
	"github.com/gofiber/fiber/v3"

	"github.com/JhonesBR/go-ledger-explorer/internal/ledger"
)

func InitializeRoutes(app *fiber.App, client *ledger.Client) {
	app.Get("/v1/accounts/:address", GetAccountHandler(client))
}
