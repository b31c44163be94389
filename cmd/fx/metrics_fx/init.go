package metrics_fx

import (
	"go.uber.org/fx"

	"trippy/internal/metrics"
)

var Module = fx.Provide(metrics.NewCollector)
