package render

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sureshullagaddi/movie-rental-app/internal/invoice/domain"
)

func TestRenderPDFProducesDocument(t *testing.T) {
	inv := domain.Invoice{
		Customer: "John Doe",
		Items: []domain.LineItem{
			{Title: "Movie 1", Amount: decimal.NewFromInt(2)},
			{Title: "Movie 2", Amount: decimal.NewFromInt(9)},
		},
		Total:          decimal.NewFromInt(11),
		FrequentPoints: 3,
	}

	pdf, err := NewRenderer().RenderPDF(inv)
	if err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("expected non-empty pdf bytes")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("expected pdf magic header, got %q", pdf[:4])
	}
}

func TestRenderPDFEmptyInvoice(t *testing.T) {
	pdf, err := NewRenderer().RenderPDF(domain.Invoice{Customer: "Nobody"})
	if err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("expected non-empty pdf bytes")
	}
}
