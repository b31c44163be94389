package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreMongo    = "mongo"
)

type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	GenerationProvider string
	GenerationTimeout  time.Duration
	OllamaURL          string
	OllamaModel        string
	GeminiAPIKey       string
	GeminiModel        string
	OpenAIAPIKey       string
	OpenAIModel        string

	NominatimURL       string
	NominatimUserAgent string
	NominatimRate      float64 // requests per second
	GeocodeTimeout     time.Duration
	GeocodeConcurrency int
	GeocodeCacheTTL    time.Duration

	GooglePlacesURL        string
	GooglePlacesAPIKey     string
	OpenWeatherURL         string
	OpenWeatherAPIKey      string
	ExternalAPITimeout     time.Duration
	RecommendationCacheTTL time.Duration

	PreferenceStore string
	PostgresURL     string
	RedisURL        string
	MongoURL        string
	MongoDatabase   string

	NATSURL            string
	CORSAllowedOrigins []string
}

func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getenvDefault("PORT", "8000"),
		AppEnv:             getenvDefault("APP_ENV", "development"),
		LogLevel:           getenvDefault("LOG_LEVEL", "info"),
		GenerationProvider: strings.ToLower(getenvDefault("GENERATION_PROVIDER", ProviderOllama)),
		OllamaURL:          strings.TrimRight(getenvDefault("OLLAMA_URL", "http://localhost:11434"), "/"),
		OllamaModel:        getenvDefault("OLLAMA_MODEL", "llama2"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getenvDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:        getenvDefault("OPENAI_MODEL", "gpt-4o-mini"),
		NominatimURL:       strings.TrimRight(getenvDefault("NOMINATIM_URL", "https://nominatim.openstreetmap.org"), "/"),
		NominatimUserAgent: getenvDefault("NOMINATIM_USER_AGENT", "tour-planning-app"),
		GooglePlacesURL:    strings.TrimRight(getenvDefault("GOOGLE_PLACES_URL", "https://maps.googleapis.com"), "/"),
		GooglePlacesAPIKey: os.Getenv("GOOGLE_PLACES_API_KEY"),
		OpenWeatherURL:     strings.TrimRight(getenvDefault("OPENWEATHER_URL", "https://api.openweathermap.org"), "/"),
		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		PreferenceStore:    strings.ToLower(getenvDefault("PREFERENCE_STORE", StorePostgres)),
		PostgresURL:        os.Getenv("POSTGRES_URL"),
		RedisURL:           getenvDefault("REDIS_URL", "redis://localhost:6379/0"),
		MongoURL:           getenvDefault("MONGO_URL", "mongodb://localhost:27017"),
		MongoDatabase:      getenvDefault("MONGO_DATABASE", "trippy"),
		NATSURL:            os.Getenv("NATS_URL"),
		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "*")),
	}

	var err error
	if cfg.GenerationTimeout, err = secondsFromEnv("GENERATION_TIMEOUT_SEC", 120); err != nil {
		return nil, err
	}
	if cfg.GeocodeTimeout, err = secondsFromEnv("GEOCODE_TIMEOUT_SEC", 10); err != nil {
		return nil, err
	}
	if cfg.ExternalAPITimeout, err = secondsFromEnv("EXTERNAL_API_TIMEOUT_SEC", 10); err != nil {
		return nil, err
	}
	if cfg.GeocodeConcurrency, err = positiveIntFromEnv("GEOCODE_CONCURRENCY", 4); err != nil {
		return nil, err
	}
	geoTTL, err := positiveIntFromEnv("GEOCODE_CACHE_TTL_MIN", 1440)
	if err != nil {
		return nil, err
	}
	cfg.GeocodeCacheTTL = time.Duration(geoTTL) * time.Minute
	ttl, err := positiveIntFromEnv("RECOMMENDATION_CACHE_TTL_MIN", 60)
	if err != nil {
		return nil, err
	}
	cfg.RecommendationCacheTTL = time.Duration(ttl) * time.Minute

	cfg.NominatimRate = 1
	if v := os.Getenv("NOMINATIM_RATE_PER_SEC"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("invalid NOMINATIM_RATE_PER_SEC: %q", v)
		}
		cfg.NominatimRate = f
	}

	switch cfg.GenerationProvider {
	case ProviderOllama, ProviderGemini, ProviderOpenAI:
	default:
		return nil, fmt.Errorf("unsupported GENERATION_PROVIDER %q (use ollama, gemini or openai)", cfg.GenerationProvider)
	}

	switch cfg.PreferenceStore {
	case StorePostgres, StoreRedis, StoreMongo:
	default:
		return nil, fmt.Errorf("unsupported PREFERENCE_STORE %q (use postgres, redis or mongo)", cfg.PreferenceStore)
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getenvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func positiveIntFromEnv(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", k, v)
	}
	return n, nil
}

func secondsFromEnv(k string, def int) (time.Duration, error) {
	n, err := positiveIntFromEnv(k, def)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
