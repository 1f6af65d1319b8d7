package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmountFits(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "0", want: true},
		{value: "10.5", want: true},
		{value: "10.50", want: true},
		{value: "10.500", want: true},
		{value: "10.005", want: false},
		{value: "0.001", want: false},
		{value: "9999999999999.99", want: true},
		{value: "10000000000000", want: false},
		{value: "12345678901234567.89", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := AmountFits(decimal.RequireFromString(tt.value)); got != tt.want {
				t.Errorf("AmountFits(%s) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
