package config

import (
	"os"
	"strings"
	"time"

	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/models"
	"github.com/joho/godotenv"
)

// Config bundelt alle instellingen uit de omgeving (.env wordt eerst geladen)
type Config struct {
	APIVersion string
	Port       string

	SwaggerPath  string
	DefaultTag   string
	FetchTimeout time.Duration

	// Geplande generatie; uit als Sources leeg is
	Sources   []models.CollectionSource
	OutputDir string
	Schedule  string
}

// Load leest .env (indien aanwezig) en de omgeving
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		APIVersion:   getEnv("API_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "1338"),
		SwaggerPath:  getEnv("SWAGGER_PATH", "swagger-ui-init.js"),
		DefaultTag:   getEnv("DEFAULT_TAG", "default"),
		FetchTimeout: getDuration("FETCH_TIMEOUT", 30*time.Second),
		Sources:      parseSources(os.Getenv("COLLECTION_SOURCES")),
		OutputDir:    getEnv("COLLECTION_OUTPUT_DIR", "collections"),
		Schedule:     getEnv("COLLECTION_SCHEDULE", "@every 1h"),
	}
}

// ConvertOptions geeft de conversie-standaarden uit de config
func (c *Config) ConvertOptions() models.ConvertOptions {
	return models.ConvertOptions{SwaggerPath: c.SwaggerPath, DefaultTag: c.DefaultTag}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// parseSources leest een komma-gescheiden lijst: url[|swaggerPath[|output]]
func parseSources(raw string) []models.CollectionSource {
	var out []models.CollectionSource
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, "|")
		src := models.CollectionSource{URL: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			src.SwaggerPath = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			src.Output = strings.TrimSpace(parts[2])
		}
		if src.URL != "" {
			out = append(out, src)
		}
	}
	return out
}
