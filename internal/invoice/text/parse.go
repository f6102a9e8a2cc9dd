package text

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sureshullagaddi/movie-rental-app/internal/invoice/domain"
)

const minInvoiceLines = 3

var nonDigits = regexp.MustCompile(`\D+`)

// Parse reconstructs a structured invoice from canonical invoice text. It is
// lenient about lines it does not recognize but strict about the ones it
// does: the header prefix, two-field item lines and numeric fields are all
// required to be well formed.
func Parse(invoiceText string) (domain.Invoice, error) {
	if strings.TrimSpace(invoiceText) == "" {
		return domain.Invoice{}, &domain.MalformedInvoiceError{Reason: "invoice text cannot be empty or blank"}
	}

	lines := strings.Split(invoiceText, "\n")
	if len(lines) < minInvoiceLines {
		return domain.Invoice{}, &domain.MalformedInvoiceError{Reason: "invoice text is incomplete"}
	}

	customer, err := parseCustomer(lines[0])
	if err != nil {
		return domain.Invoice{}, err
	}

	inv := domain.Invoice{
		Customer: customer,
		Items:    []domain.LineItem{},
		Total:    decimal.Zero,
	}
	for _, line := range lines[1:] {
		switch {
		case strings.HasPrefix(line, "\t"):
			item, err := parseItem(line)
			if err != nil {
				return domain.Invoice{}, err
			}
			inv.Items = append(inv.Items, item)
		case strings.HasPrefix(line, prefixTotal):
			total, err := parseAmount(strings.TrimSpace(strings.TrimPrefix(line, prefixTotal)), "total amount")
			if err != nil {
				return domain.Invoice{}, err
			}
			inv.Total = total
		case strings.HasPrefix(line, prefixPoints):
			points, err := parsePoints(line)
			if err != nil {
				return domain.Invoice{}, err
			}
			inv.FrequentPoints = points
		}
		// Anything else is ignored; not every line must be classified.
	}
	return inv, nil
}

func parseCustomer(headerLine string) (string, error) {
	if !strings.HasPrefix(headerLine, prefixCustomer) {
		return "", &domain.MalformedInvoiceError{Reason: "missing customer header"}
	}
	return strings.TrimSpace(strings.TrimPrefix(headerLine, prefixCustomer)), nil
}

func parseItem(line string) (domain.LineItem, error) {
	parts := strings.Split(strings.Trim(line, "\t \r"), "\t")
	if len(parts) != 2 {
		return domain.LineItem{}, &domain.MalformedInvoiceError{Reason: fmt.Sprintf("invalid item line %q", line)}
	}
	amount, err := parseAmount(parts[1], "item amount")
	if err != nil {
		return domain.LineItem{}, err
	}
	return domain.LineItem{Title: parts[0], Amount: amount}, nil
}

func parseAmount(value, field string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Decimal{}, &domain.MalformedInvoiceError{Reason: fmt.Sprintf("cannot parse %s %q", field, value)}
	}
	return amount.Round(2), nil
}

func parsePoints(line string) (int, error) {
	digits := nonDigits.ReplaceAllString(line, "")
	if digits == "" {
		return 0, &domain.MalformedInvoiceError{Reason: "frequent points value missing"}
	}
	points, err := strconv.Atoi(digits)
	if err != nil {
		return 0, &domain.MalformedInvoiceError{Reason: fmt.Sprintf("cannot parse frequent points %q", digits)}
	}
	return points, nil
}
