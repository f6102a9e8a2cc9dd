package domain

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/sureshullagaddi/movie-rental-app/internal/pricing"
)

// CustomerIDLabelPrefix is the label synthesized for invoices requested by
// customer ID instead of name.
const CustomerIDLabelPrefix = "customer ID: "

// RentalLine is one requested rental: a movie reference and a rental length.
type RentalLine struct {
	MovieID string `json:"movie_id" binding:"required"`
	Days    int    `json:"days" binding:"required,min=1"`
}

// PricedRental is a rental line after the movie reference has been resolved
// against the catalog.
type PricedRental struct {
	Title    string
	Category pricing.Category
	Rule     pricing.Rule
	Days     int
}

// LineItem is a single priced entry on an invoice, in input order.
type LineItem struct {
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"price"`
}

// Invoice is the computed result for one customer: ordered line items, the
// exact total and the frequent-renter points earned.
type Invoice struct {
	Customer       string          `json:"customer"`
	Items          []LineItem      `json:"items"`
	Total          decimal.Decimal `json:"total"`
	FrequentPoints int             `json:"frequent_points"`
}

// GenerateByNameRequest asks for an invoice by customer name. Rentals may be
// supplied inline; when omitted, the customer's stored rentals are used.
type GenerateByNameRequest struct {
	CustomerName string
	Rentals      []RentalLine
}

// Service generates canonical invoice text and re-parses it into the
// structured form consumed by JSON and PDF rendering.
type Service interface {
	GenerateByName(ctx context.Context, req GenerateByNameRequest) (string, error)
	GenerateByID(ctx context.Context, customerID int64) (string, error)
	ParseText(ctx context.Context, invoiceText string) (Invoice, error)
}

// CustomerIDLabel synthesizes the invoice label for an ID-based request.
func CustomerIDLabel(customerID int64) string {
	return CustomerIDLabelPrefix + strconv.FormatInt(customerID, 10)
}
