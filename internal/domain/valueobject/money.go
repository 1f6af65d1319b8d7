package valueobject

import "github.com/shopspring/decimal"

// AmountScale is the number of decimal places a stored amount keeps.
const AmountScale = 2

// MaxAmount is the exclusive upper bound of a stored amount. Amount columns are decimal(15,2).
var MaxAmount = decimal.New(1, 13)

// AmountFits reports whether amount is stored without rounding or overflow.
// Trailing zeros beyond the scale are accepted: 10.500 fits, 10.005 does not.
func AmountFits(amount decimal.Decimal) bool {
	if !amount.Truncate(AmountScale).Equal(amount) {
		return false
	}
	return amount.Abs().LessThan(MaxAmount)
}
