package events_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"trippy/internal/config"
	"trippy/internal/events"
)

var Module = fx.Provide(providePublisher)

// Without NATS_URL events are dropped silently.
func providePublisher(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (events.Publisher, error) {
	if cfg.NATSURL == "" {
		logger.Info("NATS_URL not set, events disabled")
		return events.NoopPublisher{}, nil
	}

	pub, err := events.Connect(cfg.NATSURL, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
