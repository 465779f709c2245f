package domain

import "strings"

const (
	// IssuedCurrencyLength is the length of a campaign token code.
	IssuedCurrencyLength = 3
	// CurrencyPadding fills codes derived from titles with too few usable
	// characters.
	CurrencyPadding = 'X'
)

// DeriveTokenCurrency maps a project title to its token currency code. The
// title is upper-cased, everything outside A-Z and 0-9 is dropped, the first
// three remaining characters are kept and the result is padded with
// CurrencyPadding up to three characters.
//
// Different campaigns may derive the same code. That is fine on the ledger
// where an issued asset is identified by code and issuer together.
func DeriveTokenCurrency(title string) string {
	var b strings.Builder
	b.Grow(IssuedCurrencyLength)
	for _, r := range strings.ToUpper(title) {
		if b.Len() == IssuedCurrencyLength {
			break
		}
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	for b.Len() < IssuedCurrencyLength {
		b.WriteRune(CurrencyPadding)
	}
	return b.String()
}
