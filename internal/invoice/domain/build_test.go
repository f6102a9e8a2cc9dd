package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sureshullagaddi/movie-rental-app/internal/pricing"
)

func TestBuildInvoiceRejectsEmptyRentals(t *testing.T) {
	if _, err := BuildInvoice("Alice", nil); !errors.Is(err, ErrNoRentals) {
		t.Fatalf("expected ErrNoRentals, got %v", err)
	}
	if _, err := BuildInvoice("Alice", []PricedRental{}); !errors.Is(err, ErrNoRentals) {
		t.Fatalf("expected ErrNoRentals, got %v", err)
	}
}

func TestBuildInvoiceTotalsAreAdditive(t *testing.T) {
	inv, err := BuildInvoice("John Doe", []PricedRental{
		mustRental(t, "Movie 1", pricing.CategoryRegular, 2),
		mustRental(t, "Movie 2", pricing.CategoryNew, 3),
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	sum := decimal.Zero
	for _, item := range inv.Items {
		sum = sum.Add(item.Amount)
	}
	if !inv.Total.Equal(sum) {
		t.Fatalf("total %s does not equal item sum %s", inv.Total, sum)
	}
	if !inv.Total.Equal(decimal.NewFromInt(11)) {
		t.Fatalf("expected total 11, got %s", inv.Total)
	}
	if inv.FrequentPoints != 3 {
		t.Fatalf("expected 3 points, got %d", inv.FrequentPoints)
	}
}

func TestBuildInvoicePreservesInputOrder(t *testing.T) {
	inv, err := BuildInvoice("Jane", []PricedRental{
		mustRental(t, "Zulu", pricing.CategoryChildren, 1),
		mustRental(t, "Alpha", pricing.CategoryRegular, 1),
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if inv.Items[0].Title != "Zulu" || inv.Items[1].Title != "Alpha" {
		t.Fatalf("items out of order: %+v", inv.Items)
	}
}

func TestBuildInvoiceAbortsOnNegativeDays(t *testing.T) {
	_, err := BuildInvoice("Jane", []PricedRental{
		mustRental(t, "Movie", pricing.CategoryRegular, -1),
	})
	if !errors.Is(err, pricing.ErrNegativeDays) {
		t.Fatalf("expected ErrNegativeDays, got %v", err)
	}
}

func TestValidateRental(t *testing.T) {
	if err := ValidateRental(RentalLine{MovieID: "F001", Days: 1}); err != nil {
		t.Fatalf("expected valid rental, got %v", err)
	}
	if err := ValidateRental(RentalLine{MovieID: " ", Days: 1}); !errors.Is(err, ErrInvalidRental) {
		t.Fatalf("expected ErrInvalidRental for blank id, got %v", err)
	}
	if err := ValidateRental(RentalLine{MovieID: "F001", Days: 0}); !errors.Is(err, ErrInvalidRental) {
		t.Fatalf("expected ErrInvalidRental for zero days, got %v", err)
	}
}

func TestCustomerIDLabel(t *testing.T) {
	if got := CustomerIDLabel(42); got != "customer ID: 42" {
		t.Fatalf("unexpected label %q", got)
	}
}

func mustRental(t *testing.T, title string, category pricing.Category, days int) PricedRental {
	t.Helper()
	rule, err := pricing.RuleFor(category)
	if err != nil {
		t.Fatalf("rule for %s: %v", category, err)
	}
	return PricedRental{Title: title, Category: category, Rule: rule, Days: days}
}
