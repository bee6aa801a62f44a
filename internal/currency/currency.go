package currency

import (
	"fmt"
	"math"
)

// Display-only conversion. Prices from the search collaborator are
// treated as the canonical base currency; nothing in the engine
// depends on these rates.

const Base = "USD"

var exchangeRates = map[string]float64{
	"USD": 1.00,
	"EUR": 0.86,
	"GBP": 0.747,
	"INR": 90.08,
	"AED": 3.673,
	"SGD": 1.28,
	"JPY": 157.00,
	"CAD": 1.43,
	"AUD": 1.59,
}

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"AED": "د.إ",
	"SGD": "S$",
	"JPY": "¥",
	"CAD": "CA$",
	"AUD": "A$",
}

var names = map[string]string{
	"USD": "US Dollar",
	"EUR": "Euro",
	"GBP": "British Pound",
	"INR": "Indian Rupee",
	"AED": "UAE Dirham",
	"SGD": "Singapore Dollar",
	"JPY": "Japanese Yen",
	"CAD": "Canadian Dollar",
	"AUD": "Australian Dollar",
}

func IsSupported(code string) bool {
	_, ok := exchangeRates[code]
	return ok
}

func Name(code string) string {
	return names[code]
}

// Convert converts a base-currency amount into the target currency.
// Unknown codes return the amount unchanged.
func Convert(amountInBase float64, target string) float64 {
	rate, ok := exchangeRates[target]
	if !ok {
		return amountInBase
	}
	return amountInBase * rate
}

// ConvertToBase converts an amount in the given currency back to base.
func ConvertToBase(amount float64, from string) float64 {
	rate, ok := exchangeRates[from]
	if !ok || rate == 0 {
		return amount
	}
	return amount / rate
}

// Format renders a base-currency amount in the target currency with
// its symbol. Yen and rupee amounts are rounded to whole units.
func Format(amountInBase float64, target string) string {
	symbol, ok := symbols[target]
	if !ok {
		symbol = "$"
		target = Base
	}
	converted := Convert(amountInBase, target)
	if target == "JPY" || target == "INR" {
		return fmt.Sprintf("%s%d", symbol, int64(math.Round(converted)))
	}
	return fmt.Sprintf("%s%.2f", symbol, converted)
}
