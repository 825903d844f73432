package transaction

import (
	"time"

	"github.com/JhonesBR/go-ledger-explorer/internal/helper"
	"github.com/JhonesBR/go-ledger-explorer/internal/ledger"
)

type TransactionParamsSchema struct {
	Hash string `validate:"required,len=64,hexadecimal"`
}

type TransactionShowSchema struct {
	Hash       string        `json:"hash"`
	BlockIndex int64         `json:"block_index"`
	Type       ledger.TxType `json:"type"`
	Timestamp  time.Time     `json:"timestamp"`
	Account1   string        `json:"account1"`
	Account2   string        `json:"account2,omitempty"`
	AmountE8s  string        `json:"amount_e8s"`
	Amount     string        `json:"amount"`
	FeeE8s     string        `json:"fee_e8s"`
	Memo       string        `json:"memo"`
	Status     string        `json:"status"`
}

func ShowSchemaFromLedger(tx ledger.Transaction) TransactionShowSchema {
	return TransactionShowSchema{
		Hash:       tx.Hash,
		BlockIndex: tx.BlockIndex,
		Type:       tx.Type,
		Timestamp:  tx.Timestamp,
		Account1:   tx.Account1,
		Account2:   tx.Account2,
		AmountE8s:  tx.Amount.String(),
		Amount:     helper.FormatE8s(tx.Amount, 8, helper.Truncate),
		FeeE8s:     tx.Fee.String(),
		Memo:       tx.Memo.String(),
		Status:     tx.Status,
	}
}
