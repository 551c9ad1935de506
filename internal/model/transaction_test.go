package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Amount
		wantErr bool
	}{
		{name: "number", input: `1234.5`, want: 1234.5},
		{name: "numeric string", input: `"1234.5"`, want: 1234.5},
		{name: "integer string", input: `"500"`, want: 500},
		{name: "null", input: `null`, want: 0},
		{name: "empty string", input: `""`, want: 0},
		{name: "garbage", input: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			err := json.Unmarshal([]byte(tt.input), &a)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantISO string
		wantErr bool
	}{
		{name: "bare date", input: `"2024-05-05"`, wantISO: "2024-05-05"},
		{name: "rfc3339", input: `"2024-05-05T13:45:00Z"`, wantISO: "2024-05-05"},
		{name: "mongo style millis", input: `"2024-05-05T00:00:00.000Z"`, wantISO: "2024-05-05"},
		{name: "empty", input: `""`, wantISO: ""},
		{name: "garbage", input: `"yesterday"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantISO, d.ISO())
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	var zero Date
	data, err := json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, `""`, string(data))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-05T13:45:00Z"`), &d))
	data, err = json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-05"`, string(data))
}

func TestTransaction_DisplayID(t *testing.T) {
	assert.Equal(t, "TXN-42", Transaction{TransactionID: "TXN-42", ID: "64b1f0aa9d3e2c0012345678"}.DisplayID())
	assert.Equal(t, "345678", Transaction{ID: "64b1f0aa9d3e2c0012345678"}.DisplayID())
	assert.Equal(t, "ab12", Transaction{ID: "ab12"}.DisplayID())
}

func TestTransaction_Validate(t *testing.T) {
	valid := Transaction{
		CustomerName: "Asha Rao",
		ProductName:  "Widget X",
		Quantity:     2,
		TotalAmount:  999,
		Currency:     "INR",
		PhoneNumber:  "+91 9876543210",
	}

	tests := []struct {
		mutate  func(*Transaction)
		name    string
		wantErr bool
	}{
		{name: "valid", mutate: func(_ *Transaction) {}},
		{name: "missing customer name", mutate: func(tr *Transaction) { tr.CustomerName = "" }, wantErr: true},
		{name: "missing product name", mutate: func(tr *Transaction) { tr.ProductName = "" }, wantErr: true},
		{name: "zero quantity", mutate: func(tr *Transaction) { tr.Quantity = 0 }, wantErr: true},
		{name: "negative amount", mutate: func(tr *Transaction) { tr.TotalAmount = -1 }, wantErr: true},
		{name: "unknown currency", mutate: func(tr *Transaction) { tr.Currency = "XYZ" }, wantErr: true},
		{name: "empty currency allowed", mutate: func(tr *Transaction) { tr.Currency = "" }},
		{name: "letters in phone", mutate: func(tr *Transaction) { tr.PhoneNumber = "+91 98ab" }, wantErr: true},
		{name: "no phone allowed", mutate: func(tr *Transaction) { tr.PhoneNumber = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := valid
			tt.mutate(&tr)
			err := tr.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPrepareCreate(t *testing.T) {
	out := PrepareCreate(Transaction{TotalAmount: 100})

	assert.NotEmpty(t, out.CustomerID)
	assert.Contains(t, out.CustomerID, "CUST-")
	assert.Equal(t, StatusPending, out.OrderStatus)
	assert.Equal(t, Amount(100), out.FinalAmount)
}

func TestNewDraft(t *testing.T) {
	d := NewDraft()

	assert.Contains(t, d.ProductID, "PROD-")
	assert.Equal(t, 1, d.Quantity)
	assert.Equal(t, DefaultCurrency, d.Currency)
	assert.False(t, d.Date.IsZero())
}
