package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/sureshullagaddi/movie-rental-app/internal/catalog/domain"
	invoicedomain "github.com/sureshullagaddi/movie-rental-app/internal/invoice/domain"
	"github.com/sureshullagaddi/movie-rental-app/internal/pricing"
)

type errorResponse struct {
	Status  int      `json:"status"`
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// AbortWithError maps domain errors onto HTTP responses in one place.
func AbortWithError(c *gin.Context, err error) {
	var procErr *invoicedomain.RentalProcessingError
	if errors.As(err, &procErr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
			Status:  http.StatusBadRequest,
			Error:   "invoice_generation_failed",
			Message: "invoice generation failed",
			Details: procErr.Errors,
		})
		return
	}

	var malformed *invoicedomain.MalformedInvoiceError
	if errors.As(err, &malformed) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
			Status:  http.StatusInternalServerError,
			Error:   "malformed_invoice",
			Message: malformed.Reason,
		})
		return
	}

	switch {
	case errors.Is(err, catalogdomain.ErrCustomerNotFound):
		abort(c, http.StatusNotFound, "customer_not_found", "customer not found")
	case errors.Is(err, catalogdomain.ErrMovieNotFound):
		abort(c, http.StatusNotFound, "movie_not_found", "movie not found")
	case errors.Is(err, invoicedomain.ErrNoRentals):
		abort(c, http.StatusUnprocessableEntity, "no_rentals", "no rentals found for customer")
	case errors.Is(err, invoicedomain.ErrInvalidCustomer),
		errors.Is(err, invoicedomain.ErrInvalidRental),
		errors.Is(err, pricing.ErrNegativeDays),
		errors.Is(err, pricing.ErrUnknownCategory):
		abort(c, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		abort(c, http.StatusInternalServerError, "internal_error", "an unexpected error occurred")
	}
}

func invalidRequestError(c *gin.Context) {
	abort(c, http.StatusBadRequest, "invalid_request", "request body is invalid")
}

func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse{
		Status:  status,
		Error:   code,
		Message: message,
	})
}
