package core

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount with thousands separators, e.g. 25000 -> "25,000".
func FormatAmount(amount int) string {
	return amountPrinter.Sprintf("%d", amount)
}

// FormatRupees prefixes FormatAmount with the rupee sign used across the console.
func FormatRupees(amount int) string {
	return "₹" + FormatAmount(amount)
}
