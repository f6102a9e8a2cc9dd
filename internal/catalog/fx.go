package catalog

import (
	"go.uber.org/fx"

	"github.com/sureshullagaddi/movie-rental-app/internal/catalog/repository"
)

var Module = fx.Module("catalog",
	fx.Provide(repository.Provide),
)
