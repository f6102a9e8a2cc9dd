package observability

import (
	"go.uber.org/fx"

	"github.com/sureshullagaddi/movie-rental-app/internal/config"
	"github.com/sureshullagaddi/movie-rental-app/internal/observability/logger"
	"github.com/sureshullagaddi/movie-rental-app/internal/observability/metrics"
	"github.com/sureshullagaddi/movie-rental-app/internal/observability/tracing"
)

var Module = fx.Module("observability",
	logger.Module,
	fx.Invoke(tracing.NewProvider),
	fx.Provide(func(cfg config.Config) (*metrics.HTTPMetrics, error) {
		return metrics.NewHTTPMetrics(cfg.ServiceName)
	}),
)
