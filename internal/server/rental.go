package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	invoicedomain "github.com/sureshullagaddi/movie-rental-app/internal/invoice/domain"
)

type generateInvoiceRequest struct {
	CustomerName string                     `json:"customer_name" binding:"required"`
	Rentals      []invoicedomain.RentalLine `json:"rentals"`
}

type generateInvoiceByIDRequest struct {
	CustomerID int64 `json:"customer_id" binding:"required"`
}

type parseInvoiceRequest struct {
	InvoiceText string `json:"invoice_text" binding:"required"`
}

// @Summary      Generate Invoice
// @Description  Generate the rental invoice text for a customer by name
// @Tags         rentals
// @Accept       json
// @Produce      plain
// @Param        request body generateInvoiceRequest true "Generate Invoice Request"
// @Success      200  {string}  string
// @Router       /rentals/invoice [post]
func (s *Server) GenerateInvoice(c *gin.Context) {
	var req generateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequestError(c)
		return
	}

	invoiceText, err := s.invoiceSvc.GenerateByName(c.Request.Context(), invoicedomain.GenerateByNameRequest{
		CustomerName: strings.TrimSpace(req.CustomerName),
		Rentals:      req.Rentals,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.String(http.StatusOK, invoiceText)
}

// @Summary      Generate Invoice By ID
// @Description  Generate the rental invoice text for a customer by ID
// @Tags         rentals
// @Accept       json
// @Produce      plain
// @Param        request body generateInvoiceByIDRequest true "Generate Invoice By ID Request"
// @Success      200  {string}  string
// @Router       /rentals/invoice/id [post]
func (s *Server) GenerateInvoiceByID(c *gin.Context) {
	var req generateInvoiceByIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequestError(c)
		return
	}

	invoiceText, err := s.invoiceSvc.GenerateByID(c.Request.Context(), req.CustomerID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.String(http.StatusOK, invoiceText)
}

// @Summary      Generate Structured Invoice
// @Description  Generate an invoice and return its structured JSON form
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        request body generateInvoiceRequest true "Generate Invoice Request"
// @Success      200  {object}  invoicedomain.Invoice
// @Router       /rentals/invoice/structured [post]
func (s *Server) GenerateStructuredInvoice(c *gin.Context) {
	inv, ok := s.generateStructured(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": inv})
}

// @Summary      Generate Invoice PDF
// @Description  Generate an invoice and return it as a PDF document
// @Tags         rentals
// @Accept       json
// @Produce      application/pdf
// @Param        request body generateInvoiceRequest true "Generate Invoice Request"
// @Success      200  {file}  binary
// @Router       /rentals/invoice/pdf [post]
func (s *Server) GenerateInvoicePDF(c *gin.Context) {
	inv, ok := s.generateStructured(c)
	if !ok {
		return
	}

	pdf, err := s.renderer.RenderPDF(inv)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="invoice.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// @Summary      Parse Invoice
// @Description  Parse canonical invoice text into its structured form
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        request body parseInvoiceRequest true "Parse Invoice Request"
// @Success      200  {object}  invoicedomain.Invoice
// @Router       /rentals/parse [post]
func (s *Server) ParseInvoice(c *gin.Context) {
	var req parseInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequestError(c)
		return
	}

	inv, err := s.invoiceSvc.ParseText(c.Request.Context(), req.InvoiceText)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": inv})
}

// generateStructured runs the text pipeline and re-parses the result; the
// parsed form feeds both the JSON and PDF responses.
func (s *Server) generateStructured(c *gin.Context) (invoicedomain.Invoice, bool) {
	var req generateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequestError(c)
		return invoicedomain.Invoice{}, false
	}

	invoiceText, err := s.invoiceSvc.GenerateByName(c.Request.Context(), invoicedomain.GenerateByNameRequest{
		CustomerName: strings.TrimSpace(req.CustomerName),
		Rentals:      req.Rentals,
	})
	if err != nil {
		AbortWithError(c, err)
		return invoicedomain.Invoice{}, false
	}

	inv, err := s.invoiceSvc.ParseText(c.Request.Context(), invoiceText)
	if err != nil {
		AbortWithError(c, err)
		return invoicedomain.Invoice{}, false
	}
	return inv, true
}
