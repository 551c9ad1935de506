package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salesdesk/internal/model"
	"salesdesk/internal/tui/themes"
)

func TestDetailViewShowsRecord(t *testing.T) {
	txn := sampleTransactions()[0]
	v := NewDetailView(txn, themes.Default)

	view := v.View()
	assert.Contains(t, view, "Asha Patel")
	assert.Contains(t, view, "Cotton Kurta")
	assert.Contains(t, view, "TXN-1001")
}

func TestDetailInvoice(t *testing.T) {
	txn := model.Transaction{
		TransactionID: "TXN-1001",
		CustomerName:  "Asha Patel",
		PhoneNumber:   "+91 9876543210",
		ProductName:   "Cotton Kurta",
		Quantity:      2,
		TotalAmount:   1499,
		FinalAmount:   1499,
		Discount:      100,
		Currency:      "INR",
		PaymentMethod: "UPI",
		OrderStatus:   model.StatusCompleted,
	}
	v := NewDetailView(txn, themes.Default)

	invoice := v.Invoice()
	assert.Contains(t, invoice, "INVOICE")
	assert.Contains(t, invoice, "TXN-1001")
	assert.Contains(t, invoice, "Asha Patel")
	assert.Contains(t, invoice, "x2")
	assert.Contains(t, invoice, "₹ 1,499")
	assert.Contains(t, invoice, "Discount")
	assert.Contains(t, invoice, "UPI")
}
