package generation_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"trippy/internal/config"
	"trippy/pkg/utils"
)

var Module = fx.Provide(ProvideTextGenerator)

// ProvideTextGenerator creates the generation backend named by GENERATION_PROVIDER.
func ProvideTextGenerator(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (utils.TextGeneratorInterface, error) {
	switch cfg.GenerationProvider {
	case config.ProviderOllama:
		logger.Info("initializing ollama text generator",
			zap.String("url", cfg.OllamaURL), zap.String("model", cfg.OllamaModel))
		return utils.NewOllamaTextClient(cfg.OllamaURL, cfg.OllamaModel), nil

	case config.ProviderGemini:
		logger.Info("initializing gemini text generator", zap.String("model", cfg.GeminiModel))
		client, err := utils.NewGeminiTextClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		return client, nil

	case config.ProviderOpenAI:
		logger.Info("initializing openai text generator", zap.String("model", cfg.OpenAIModel))
		client, err := utils.NewOpenAITextClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			return nil, err
		}
		return client, nil

	default:
		return nil, fmt.Errorf("unsupported generation provider: %s", cfg.GenerationProvider)
	}
}
