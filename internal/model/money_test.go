package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		want     string
		amount   Amount
	}{
		{
			name:     "inr uses indian grouping",
			amount:   1234567,
			currency: "INR",
			want:     "₹ 12,34,567",
		},
		{
			name:     "usd symbol",
			amount:   1500,
			currency: "USD",
			want:     "$ 1,500",
		},
		{
			name:     "euro symbol",
			amount:   99,
			currency: "EUR",
			want:     "€ 99",
		},
		{
			name:     "unknown currency renders its code",
			amount:   10,
			currency: "AUD",
			want:     "AUD 10",
		},
		{
			name:     "empty currency defaults to inr",
			amount:   500,
			currency: "",
			want:     "₹ 500",
		},
		{
			name:     "fractional amount",
			amount:   1234.5,
			currency: "INR",
			want:     "₹ 1,234.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.amount, tt.currency))
		})
	}
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "₹", CurrencySymbol("INR"))
	assert.Equal(t, "$", CurrencySymbol("USD"))
	assert.Equal(t, "€", CurrencySymbol("EUR"))
	assert.Equal(t, "£", CurrencySymbol("GBP"))
	assert.Equal(t, "XYZ", CurrencySymbol("XYZ"))
}

func TestFormatRounded(t *testing.T) {
	assert.Equal(t, "₹12,34,567", FormatRounded(1234567.4))
	assert.Equal(t, "₹0", FormatRounded(0))
}
