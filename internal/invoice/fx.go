package invoice

import (
	"go.uber.org/fx"

	"github.com/sureshullagaddi/movie-rental-app/internal/invoice/render"
	"github.com/sureshullagaddi/movie-rental-app/internal/invoice/service"
)

var Module = fx.Module("invoice.service",
	fx.Provide(render.NewRenderer),
	fx.Provide(service.NewService),
)
