package render

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/sureshullagaddi/movie-rental-app/internal/invoice/domain"
)

// PDFRenderer renders invoices onto an A4 page with a simple two-column
// item table.
type PDFRenderer struct{}

// NewRenderer constructs the PDF renderer.
func NewRenderer() Renderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) RenderPDF(inv domain.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		WithBottomMargin(15).
		Build()
	m := maroto.New(cfg)

	m.AddRow(12, col.New(12).Add(
		text.New("Rental Record for "+inv.Customer, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	))

	headerProps := props.Text{Size: 10, Style: fontstyle.Bold}
	m.AddRow(8,
		col.New(8).Add(text.New("Title", headerProps)),
		col.New(4).Add(text.New("Amount", headerProps)),
	)
	itemProps := props.Text{Size: 10}
	for _, item := range inv.Items {
		m.AddRow(7,
			col.New(8).Add(text.New(item.Title, itemProps)),
			col.New(4).Add(text.New(item.Amount.StringFixed(2), itemProps)),
		)
	}

	totalProps := props.Text{Size: 11, Style: fontstyle.Bold}
	m.AddRow(10,
		col.New(8).Add(text.New("Amount owed", totalProps)),
		col.New(4).Add(text.New(inv.Total.StringFixed(2), totalProps)),
	)
	m.AddRow(8, col.New(12).Add(
		text.New(fmt.Sprintf("You earned %d frequent points", inv.FrequentPoints), props.Text{Size: 10}),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}
	return doc.GetBytes(), nil
}
