package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/sureshullagaddi/movie-rental-app/internal/invoice/domain"
)

const (
	maxAttempts  = 3
	retryBackoff = 200 * time.Millisecond
)

// generateWithRetry re-attempts generation only for collected per-item
// processing failures, which are transient and side-effect free. Validation
// and not-found errors propagate immediately. After exhaustion the last
// processing error is raised as-is.
func (s *Service) generateWithRetry(ctx context.Context, customerLabel string, rentals []domain.RentalLine) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		rendered, err := s.generate(ctx, customerLabel, rentals)
		if err == nil {
			return rendered, nil
		}

		var procErr *domain.RentalProcessingError
		if !errors.As(err, &procErr) {
			return "", err
		}
		lastErr = err

		if attempt == maxAttempts {
			break
		}
		s.log.Warn("retrying invoice generation",
			zap.String("customer", customerLabel),
			zap.Int("attempt", attempt),
			zap.Int("failed_items", len(procErr.Errors)),
		)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return "", lastErr
}
