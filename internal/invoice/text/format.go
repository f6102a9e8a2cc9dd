// Package text owns the canonical line-oriented invoice format. Render and
// Parse are exact inverses for any invoice produced by the builder; the byte
// layout is a wire contract shared with downstream consumers.
package text

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sureshullagaddi/movie-rental-app/internal/invoice/domain"
)

const (
	prefixCustomer = "Rental Record for "
	prefixTotal    = "Amount owed is"
	prefixPoints   = "You earned"
)

// FormatHeader renders the invoice header line.
func FormatHeader(customerLabel string) string {
	return fmt.Sprintf("%s%s\n", prefixCustomer, customerLabel)
}

// FormatLine renders one item line: tab, title, tab, amount with two
// fractional digits.
func FormatLine(title string, amount decimal.Decimal) string {
	return fmt.Sprintf("\t%s\t%s\n", title, amount.StringFixed(2))
}

// FormatFooter renders the total and frequent-points lines.
func FormatFooter(total decimal.Decimal, frequentPoints int) string {
	return fmt.Sprintf("%s %s\n%s %d frequent points\n", prefixTotal, total.StringFixed(2), prefixPoints, frequentPoints)
}

// Render serializes an invoice into the canonical text form.
func Render(inv domain.Invoice) string {
	var b strings.Builder
	b.WriteString(FormatHeader(inv.Customer))
	for _, item := range inv.Items {
		b.WriteString(FormatLine(item.Title, item.Amount))
	}
	b.WriteString(FormatFooter(inv.Total, inv.FrequentPoints))
	return b.String()
}
