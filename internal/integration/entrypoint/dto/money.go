// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Money renders a decimal amount as a JSON number without float rounding.
func Money(amount decimal.Decimal) json.Number {
	return json.Number(amount.String())
}
