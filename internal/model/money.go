package model

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currencies supported by the order form, with their display symbols.
var Currencies = []struct {
	Code   string
	Symbol string
}{
	{"INR", "₹"},
	{"USD", "$"},
	{"EUR", "€"},
	{"GBP", "£"},
}

// DefaultCurrency is applied to records that carry no currency.
const DefaultCurrency = "INR"

// Indian digit grouping, matching the dashboard's en-IN formatting for every
// currency.
var moneyPrinter = message.NewPrinter(language.MustParse("en-IN"))

// CurrencySymbol returns the display symbol for a currency code. Unknown
// codes render as themselves.
func CurrencySymbol(code string) string {
	for _, c := range Currencies {
		if c.Code == code {
			return c.Symbol
		}
	}
	return code
}

// FormatAmount renders an amount as "<symbol> <grouped value>", e.g.
// "₹ 12,34,567" for 1234567 INR.
func FormatAmount(amount Amount, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return CurrencySymbol(currency) + " " + groupAmount(amount)
}

// FormatRounded renders a rounded rupee amount for the stats cards,
// e.g. "₹12,34,567".
func FormatRounded(amount Amount) string {
	return "₹" + moneyPrinter.Sprint(number.Decimal(float64(amount), number.MaxFractionDigits(0)))
}

func groupAmount(amount Amount) string {
	s := moneyPrinter.Sprint(number.Decimal(float64(amount), number.MaxFractionDigits(2)))
	return strings.TrimSpace(s)
}
