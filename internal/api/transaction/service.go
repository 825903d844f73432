package transaction

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/JhonesBR/go-ledger-explorer/internal/helper"
	"github.com/JhonesBR/go-ledger-explorer/internal/ledger"
)

type transactionReader interface {
	Transaction(ctx context.Context, hash string) (ledger.Transaction, error)
}

type transactionLister interface {
	LastBlockIndex(ctx context.Context) (int64, error)
	Transactions(ctx context.Context, limit int, maxIndex, offset int64) ([]ledger.Transaction, error)
}

func GetTransactionHandler(client transactionReader) fiber.Handler {
	return func(c fiber.Ctx) error {
		params := TransactionParamsSchema{Hash: c.Params("hash")}
		if err := helper.ValidateInput(&params); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		tx, err := client.Transaction(c.RequestCtx(), params.Hash)
		if err != nil {
			return helper.RenderLedgerError(c, err)
		}

		return c.JSON(ShowSchemaFromLedger(tx))
	}
}

func GetTransactionsHandler(client transactionLister) fiber.Handler {
	return func(c fiber.Ctx) error {
		// Get pagination
		pagination := helper.GetPagination[TransactionShowSchema](c)

		// The page bounds come from the current ledger height
		height, err := client.LastBlockIndex(c.RequestCtx())
		if err != nil {
			return helper.RenderLedgerError(c, err)
		}
		total := height + 1
		pagination.Total = &total

		// Shrink the last page so the window never crosses the ledger start
		offset := int64(pagination.Page-1) * int64(pagination.Size)
		limit := pagination.Size
		if remaining := total - offset; remaining < int64(limit) {
			if remaining < 0 {
				remaining = 0
			}
			limit = int(remaining)
		}

		txs, err := client.Transactions(c.RequestCtx(), limit, height, offset)
		if err != nil {
			return helper.RenderLedgerError(c, err)
		}

		for _, tx := range txs {
			pagination.Items = append(pagination.Items, ShowSchemaFromLedger(tx))
		}
		return c.JSON(pagination)
	}
}
