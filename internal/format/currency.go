// Package format renders monetary amounts the way the storefront shows them:
// Vietnamese Dong, grouped digits, no decimal places.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Vietnamese)

// VND formats an amount in Dong, e.g. 100000 -> "100.000 ₫".
func VND(amount int64) string {
	return printer.Sprintf("%v ₫", number.Decimal(amount))
}
