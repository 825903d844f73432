package helper

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// E8sPerUnit is the number of smallest ledger units in one display unit.
const E8sPerUnit = 100_000_000

type RoundMode int

const (
	Truncate RoundMode = iota
	Round
)

// FormatE8s converts an e8s quantity to a display-unit decimal string with
// the given number of fractional digits. The division by 1e8 is exact for
// any magnitude; precision is only reduced when places < 8, where the mode
// decides between truncating and half-up rounding.
func FormatE8s(v *big.Int, places int32, mode RoundMode) string {
	d := decimal.NewFromBigInt(v, -8)
	if mode == Truncate {
		d = d.Truncate(places)
	} else {
		d = d.Round(places)
	}
	return d.StringFixed(places)
}
