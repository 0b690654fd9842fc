package core

import "fmt"

// currencySymbols maps supported currency codes to their display symbols.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
}

// DefaultCurrencies returns the built-in enabled currency set used when no
// catalog has been persisted yet.
func DefaultCurrencies() []CurrencyOption {
	return []CurrencyOption{
		{Code: "USD", Name: "US Dollar", Symbol: "$", Enabled: true},
		{Code: "EUR", Name: "Euro", Symbol: "€", Enabled: true},
		{Code: "GBP", Name: "British Pound", Symbol: "£", Enabled: true},
		{Code: "INR", Name: "Indian Rupee", Symbol: "₹", Enabled: true},
	}
}

// CurrencySymbol returns the display symbol for a currency code, falling back
// to the dollar sign for unknown codes.
func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return "$"
}

// FormatAmount renders an amount with the currency's symbol for display.
func FormatAmount(amount float64, code string) string {
	return fmt.Sprintf("%s%.2f", CurrencySymbol(code), amount)
}
