package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoRentals       = errors.New("no_rentals")
	ErrInvalidRental   = errors.New("invalid_rental")
	ErrInvalidCustomer = errors.New("invalid_customer")
)

// RentalProcessingError reports per-item failures collected while building an
// invoice. The whole batch fails once so the caller sees every failure in one
// round-trip; the operation committed nothing and is safe to retry.
type RentalProcessingError struct {
	Errors []string
}

func (e *RentalProcessingError) Error() string {
	return fmt.Sprintf("invoice generation failed: %s", strings.Join(e.Errors, "; "))
}

// MalformedInvoiceError indicates the text parser could not make sense of its
// input. Builder-produced text never triggers this; seeing it for such text
// means the wire contract itself is broken.
type MalformedInvoiceError struct {
	Reason string
}

func (e *MalformedInvoiceError) Error() string {
	return "malformed invoice: " + e.Reason
}
