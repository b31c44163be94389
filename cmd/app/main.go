package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"trippy/cmd/fx/config_fx"
	"trippy/cmd/fx/controllers_fx"
	"trippy/cmd/fx/events_fx"
	"trippy/cmd/fx/generation_fx"
	"trippy/cmd/fx/geocoding_fx"
	"trippy/cmd/fx/itinerary_fx"
	"trippy/cmd/fx/logger_fx"
	"trippy/cmd/fx/metrics_fx"
	"trippy/cmd/fx/preference_fx"
	"trippy/cmd/fx/recommendation_fx"
	"trippy/cmd/fx/weather_fx"
	"trippy/internal/api/controllers"
	"trippy/internal/config"
	"trippy/internal/metrics"
	"trippy/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		metrics_fx.Module,
		events_fx.Module,
		generation_fx.Module,
		geocoding_fx.Module,
		recommendation_fx.Module,
		preference_fx.Module,
		weather_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", server.Addr))
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}

type RouterParams struct {
	fx.In

	Config               *config.Config
	Logger               *zap.Logger
	Metrics              *metrics.Collector
	PreferenceController *controllers.PreferenceController
	ItineraryController  *controllers.ItineraryController
	WeatherController    *controllers.WeatherController
	HealthController     *controllers.HealthController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	if !p.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(p.Config.CORSAllowedOrigins))

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.POST("/collect_preferences/", p.PreferenceController.CollectPreferences)
	r.GET("/preferences/:userId", p.PreferenceController.GetPreferences)
	r.POST("/generate_itinerary/", p.ItineraryController.GenerateItinerary)
	r.GET("/fetch_weather/:city", p.WeatherController.FetchWeather)

	r.GET("/healthz", p.HealthController.Healthz)
	r.GET("/metrics", gin.WrapH(p.Metrics.Handler()))
}
