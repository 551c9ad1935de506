// Package model defines the transaction record and its wire encoding.
package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Order statuses reported by the API.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// Transaction is a single customer order record. The API owns the durable
// copy; this type mirrors its JSON field contract.
type Transaction struct {
	ID            string   `json:"_id,omitempty"`
	TransactionID string   `json:"transactionId,omitempty"`
	CustomerID    string   `json:"customerId,omitempty"`
	CustomerName  string   `json:"customerName" validate:"required"`
	PhoneNumber   string   `json:"phoneNumber,omitempty"`
	ProductID     string   `json:"productId,omitempty"`
	ProductName   string   `json:"productName" validate:"required"`
	EmployeeName  string   `json:"employeeName,omitempty"`
	Quantity      int      `json:"quantity" validate:"gte=1"`
	TotalAmount   Amount   `json:"totalAmount" validate:"gte=0"`
	FinalAmount   Amount   `json:"finalAmount,omitempty"`
	Discount      Amount   `json:"discount,omitempty"`
	Date          Date     `json:"date"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	Currency      string   `json:"currency,omitempty" validate:"omitempty,oneof=INR USD EUR GBP"`
	OrderStatus   string   `json:"orderStatus,omitempty"`
	Region        string   `json:"region,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	Age           int      `json:"age,omitempty"`
	Category      string   `json:"category,omitempty"`
	PaymentMethod string   `json:"paymentMethod,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// DisplayID returns the short identifier shown in the table: the explicit
// transaction ID when present, otherwise the tail of the storage ID.
func (t Transaction) DisplayID() string {
	if t.TransactionID != "" {
		return t.TransactionID
	}
	if len(t.ID) > 6 {
		return t.ID[len(t.ID)-6:]
	}
	return t.ID
}

// Amount is a non-negative monetary value. The API is inconsistent about
// whether amounts arrive as JSON numbers or numeric strings, so decoding
// accepts both.
type Amount float64

// UnmarshalJSON decodes either a JSON number or a quoted numeric string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*a = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	*a = Amount(v)
	return nil
}

// MarshalJSON always emits a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

// Date is a calendar date. The API sends either bare dates ("2006-01-02")
// or full RFC 3339 timestamps depending on the record's origin.
type Date struct {
	time.Time
}

// NewDate builds a Date truncated to its calendar day.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	return NewDate(time.Now().UTC())
}

// ParseDate parses a "2006-01-02" string. Empty input yields the zero date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q", s)
	}
	return NewDate(t), nil
}

// UnmarshalJSON accepts "2006-01-02" or RFC 3339.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05.000Z"} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = NewDate(t)
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

// MarshalJSON emits the bare ISO date the API expects on writes.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}

// ISO returns the date as "2006-01-02", or "" for the zero date.
func (d Date) ISO() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// Display returns the date as dd/mm/yyyy, matching the dashboard table.
func (d Date) Display() string {
	if d.IsZero() {
		return "—"
	}
	return d.Format("02/01/2006")
}
