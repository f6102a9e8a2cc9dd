package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sureshullagaddi/movie-rental-app/internal/pricing"
)

// BuildInvoice computes the invoice aggregate for a customer from resolved
// rentals, in input order. Amounts accumulate at full precision; rounding
// happens only when the invoice is rendered. Pricing failures here mean the
// request shape is invalid and abort the whole invoice.
func BuildInvoice(customerLabel string, rentals []PricedRental) (Invoice, error) {
	if len(rentals) == 0 {
		return Invoice{}, ErrNoRentals
	}

	inv := Invoice{
		Customer: customerLabel,
		Items:    make([]LineItem, 0, len(rentals)),
		Total:    decimal.Zero,
	}
	for _, rental := range rentals {
		amount, err := pricing.Amount(rental.Rule, rental.Days)
		if err != nil {
			return Invoice{}, err
		}
		points, err := pricing.CalculatePoints(rental.Category, rental.Days)
		if err != nil {
			return Invoice{}, err
		}
		inv.Items = append(inv.Items, LineItem{Title: rental.Title, Amount: amount})
		inv.Total = inv.Total.Add(amount)
		inv.FrequentPoints += points
	}
	return inv, nil
}

// ValidateRental rejects rental lines whose shape is invalid before they
// reach the pricing engine.
func ValidateRental(rental RentalLine) error {
	if strings.TrimSpace(rental.MovieID) == "" {
		return fmt.Errorf("%w: blank movie id", ErrInvalidRental)
	}
	if rental.Days < 1 {
		return fmt.Errorf("%w: days must be at least 1 for movie %q", ErrInvalidRental, rental.MovieID)
	}
	return nil
}
