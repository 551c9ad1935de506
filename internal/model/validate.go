package model

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations under the wire field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a transaction payload against the form constraints:
// required customer and product names, quantity of at least one, a
// non-negative amount, and a known currency. The local phone part must be
// digits only.
func (t Transaction) Validate() error {
	if err := validate.Struct(t); err != nil {
		var errs validator.ValidationErrors
		if ok := errors.As(err, &errs); ok && len(errs) > 0 {
			return fmt.Errorf("invalid %s: failed %q constraint", errs[0].Field(), errs[0].Tag())
		}
		return err
	}
	if t.PhoneNumber != "" {
		_, local := SplitPhone(t.PhoneNumber)
		if !DigitsOnly(local) {
			return fmt.Errorf("invalid phoneNumber: local part %q is not digits-only", local)
		}
	}
	return nil
}

// NewDraft returns a transaction pre-filled the way the add form starts:
// generated product ID, quantity one, today's date, default currency.
func NewDraft() Transaction {
	return Transaction{
		ProductID: fmt.Sprintf("PROD-%d", rand.Intn(10000)),
		Quantity:  1,
		Date:      Today(),
		Currency:  DefaultCurrency,
	}
}

// PrepareCreate fills the server-expected defaults on a brand-new record:
// generated customer ID, pending status, and a final amount mirroring the
// total.
func PrepareCreate(t Transaction) Transaction {
	if t.CustomerID == "" {
		t.CustomerID = fmt.Sprintf("CUST-%d", rand.Intn(10000))
	}
	if t.OrderStatus == "" {
		t.OrderStatus = StatusPending
	}
	if t.FinalAmount == 0 {
		t.FinalAmount = t.TotalAmount
	}
	return t
}

// PrepareUpdate fills the write-side defaults on an edited record without
// generating new identifiers.
func PrepareUpdate(t Transaction) Transaction {
	if t.OrderStatus == "" {
		t.OrderStatus = StatusPending
	}
	if t.FinalAmount == 0 {
		t.FinalAmount = t.TotalAmount
	}
	return t
}
