package model

import "strings"

// DefaultCountryCode is assumed when a stored phone number carries no
// recognized prefix.
const DefaultCountryCode = "+91"

// CountryCodes lists the dialing prefixes the form recognizes, in match
// order. "+91" must be tried before "+1" so Indian numbers are not split at
// the shorter prefix.
var CountryCodes = []struct {
	Code    string
	Country string
}{
	{"+91", "IN"},
	{"+1", "US"},
	{"+44", "UK"},
	{"+81", "JP"},
}

// SplitPhone separates a stored "<countryCode> <digits>" phone string into
// its prefix and local part. An unrecognized prefix falls back to the default
// code with the whole string kept as the local part; that mirrors the
// dashboard's edit form and is intentionally not "fixed" here.
func SplitPhone(phone string) (code, local string) {
	phone = strings.TrimSpace(phone)
	for _, cc := range CountryCodes {
		if strings.HasPrefix(phone, cc.Code) {
			return cc.Code, strings.TrimSpace(strings.TrimPrefix(phone, cc.Code))
		}
	}
	return DefaultCountryCode, phone
}

// JoinPhone combines a country code and local number into the stored form.
func JoinPhone(code, local string) string {
	return code + " " + strings.TrimSpace(local)
}

// DigitsOnly reports whether s contains nothing but ASCII digits. The local
// part of a phone number must satisfy this before submission.
func DigitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
