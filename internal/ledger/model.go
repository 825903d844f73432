package ledger

import (
	"math/big"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type TxType string

const (
	Transfer TxType = "transfer"
	Mint     TxType = "mint"
	Burn     TxType = "burn"
)

type Account struct {
	Address string   `json:"address"`
	Balance *big.Int `json:"balance"`
}

// Transaction is a single ledger entry. Amount, Fee and Memo are e8s
// quantities and stay arbitrary-precision from the parse boundary on;
// display conversion happens in helper.FormatE8s.
type Transaction struct {
	Hash       string    `json:"hash"`
	BlockIndex int64     `json:"block_index"`
	Type       TxType    `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
	Account1   string    `json:"account1"`
	Account2   string    `json:"account2"`
	Amount     *big.Int  `json:"amount"`
	Fee        *big.Int  `json:"fee"`
	Memo       *big.Int  `json:"memo"`
	Status     string    `json:"status"`
}

// wireAmount accepts both integer and integer-string JSON fields, since the
// ledger API emits either depending on the endpoint version.
type wireAmount struct {
	val *big.Int
}

func (a *wireAmount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	// An explicit null means the same as an absent field
	if s == "null" {
		a.val = nil
		return nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return errors.Errorf("invalid e8s amount %q", s)
	}
	a.val = v
	return nil
}

type wireBalance struct {
	Balance wireAmount `json:"balance"`
}

type wireTransaction struct {
	Hash        string     `json:"hash"`
	BlockIndex  int64      `json:"block_index"`
	FromAccount string     `json:"from_account"`
	ToAccount   string     `json:"to_account"`
	Amount      wireAmount `json:"amount"`
	Fee         wireAmount `json:"fee"`
	Memo        wireAmount `json:"memo"`
	Status      string     `json:"status"`
	CreatedAtMs int64      `json:"created_at"`
}

type wireTransactionList struct {
	Total  int64             `json:"total"`
	Blocks []wireTransaction `json:"blocks"`
}

type wireHeight struct {
	Height int64 `json:"height"`
}

// classify derives the transaction kind from which address fields are
// populated: mint has only a recipient, burn only a sender, transfer both.
// A shape matching none of the three is rejected instead of defaulted.
func classify(w wireTransaction) (TxType, error) {
	switch {
	case w.FromAccount != "" && w.ToAccount != "":
		return Transfer, nil
	case w.FromAccount == "" && w.ToAccount != "":
		return Mint, nil
	case w.FromAccount != "" && w.ToAccount == "":
		return Burn, nil
	default:
		return "", errors.Errorf("transaction %s has no accounts", w.Hash)
	}
}

// Fee and memo may be omitted for mint and burn entries.
func orZero(v *big.Int) *big.Int {
	if v == nil {
		return big.NewInt(0)
	}
	return v
}

func mapTransaction(w wireTransaction) (Transaction, error) {
	kind, err := classify(w)
	if err != nil {
		return Transaction{}, err
	}
	if w.BlockIndex < 0 {
		return Transaction{}, errors.Errorf("transaction %s has negative block index %d", w.Hash, w.BlockIndex)
	}

	tx := Transaction{
		Hash:       w.Hash,
		BlockIndex: w.BlockIndex,
		Type:       kind,
		Timestamp:  time.UnixMilli(w.CreatedAtMs).UTC(),
		Amount:     orZero(w.Amount.val),
		Fee:        orZero(w.Fee.val),
		Memo:       orZero(w.Memo.val),
		Status:     w.Status,
	}

	// Account1 is the sender for transfer and burn, the recipient for mint.
	switch kind {
	case Mint:
		tx.Account1 = w.ToAccount
	case Burn:
		tx.Account1 = w.FromAccount
	default:
		tx.Account1 = w.FromAccount
		tx.Account2 = w.ToAccount
	}
	return tx, nil
}
