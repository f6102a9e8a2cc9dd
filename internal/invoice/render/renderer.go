package render

import "github.com/sureshullagaddi/movie-rental-app/internal/invoice/domain"

// Renderer turns a structured invoice into a downloadable document.
type Renderer interface {
	RenderPDF(inv domain.Invoice) ([]byte, error)
}
