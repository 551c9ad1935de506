package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumPage(t *testing.T) {
	txns := []Transaction{
		{Quantity: 2, TotalAmount: 1000, Discount: 50},
		{Quantity: 1, TotalAmount: 500}, // no discount: estimated at 10%
	}

	stats := SumPage(txns)

	assert.Equal(t, 2, stats.Records)
	assert.Equal(t, 3, stats.Units)
	assert.Equal(t, Amount(1500), stats.Amount)
	assert.Equal(t, Amount(100), stats.Discount)
}

func TestSumPage_Empty(t *testing.T) {
	stats := SumPage(nil)
	assert.Zero(t, stats.Records)
	assert.Zero(t, stats.Units)
	assert.Zero(t, stats.Amount)
}
