package account

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/JhonesBR/go-ledger-explorer/internal/helper"
	"github.com/JhonesBR/go-ledger-explorer/internal/ledger"
)

type balanceReader interface {
	AccountBalance(ctx context.Context, address string) (ledger.Account, error)
}

func GetAccountHandler(client balanceReader) fiber.Handler {
	return func(c fiber.Ctx) error {
		// Validate the address before spending a ledger round trip on it
		params := AccountParamsSchema{Address: c.Params("address")}
		if err := helper.ValidateInput(&params); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		// Get the balance from the ledger
		acc, err := client.AccountBalance(c.RequestCtx(), params.Address)
		if err != nil {
			return helper.RenderLedgerError(c, err)
		}

		return c.JSON(AccountShowSchema{
			Address:    acc.Address,
			BalanceE8s: acc.Balance.String(),
			Balance:    helper.FormatE8s(acc.Balance, 8, helper.Truncate),
		})
	}
}
