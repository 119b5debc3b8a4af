package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared/money"
)

func TestCents(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{name: "whole amount", amount: 150, want: 15000},
		{name: "two decimals", amount: 199.5, want: 19950},
		{name: "half cent rounds up", amount: 0.005, want: 1},
		{name: "just below half cent rounds down", amount: 0.004, want: 0},
		{name: "binary float residue", amount: 0.1 + 0.2, want: 30},
		{name: "negative amount", amount: -10.25, want: -1025},
		{name: "zero", amount: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Cents(tt.amount))
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "typical price", amount: 199.5, want: "$199.50"},
		{name: "whole amount", amount: 150, want: "$150.00"},
		{name: "zero", amount: 0, want: "$0.00"},
		{name: "rounds half up", amount: 0.005, want: "$0.01"},
		{name: "sub dollar", amount: 0.5, want: "$0.50"},
		{name: "negative", amount: -12.345, want: "-$12.35"},
		{name: "accumulated float noise", amount: 10.005 + 5, want: "$15.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Format(tt.amount))
		})
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, money.Sum(nil))
	assert.Equal(t, 0.0, money.Sum([]float64{}))
	assert.Equal(t, "$0.60", money.Format(money.Sum([]float64{0.1, 0.2, 0.3})))
	assert.Equal(t, "$350.00", money.Format(money.Sum([]float64{100, 250})))
}
