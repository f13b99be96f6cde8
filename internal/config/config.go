package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Embedding EmbeddingConfig
	Gemini    GeminiConfig
	Matching  MatchingConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	DataDir     string
	LogJSON     bool
	LogDebug    bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// EmbeddingConfig points at an OpenAI-compatible /embeddings endpoint.
// The service must return unit-normalized vectors of the configured dimension.
type EmbeddingConfig struct {
	BaseURL    string
	APIKey     string
	Model      string
	Dimensions int
	Timeout    time.Duration
	CacheTTL   time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type MatchingConfig struct {
	// ShortlistFloor is the minimum shortlist size promoted from
	// preliminary scoring to LLM re-scoring. The shortlist is
	// max(ShortlistFloor, 2*top_k).
	ShortlistFloor  int
	AssessorWorkers int
	AssessorTimeout time.Duration
	PhoneRegion     string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "resume-match"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    req("HTTP_PORT"),
		DataDir:     opt("DATA_DIR", "data"),
		LogJSON:     parseBool(opt("LOG_JSON", "false")),
		LogDebug:    parseBool(opt("LOG_DEBUG", "false")),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST", ""),
		DBPort:     opt("DB_PORT", ""),
		DBName:     opt("DB_NAME", ""),
		DBUser:     opt("DB_USER", ""),
		DBPassword: opt("DB_PASSWORD", ""),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),

		ConnectTimeout:        parseDuration(opt("DB_CONNECT_TIMEOUT", "5s"), 5*time.Second),
		PoolMaxConns:          int32(parseInt(opt("DB_POOL_MAX_CONNS", "10"), 10)),
		PoolMinConns:          int32(parseInt(opt("DB_POOL_MIN_CONNS", "0"), 0)),
		PoolMaxConnLifetime:   parseDuration(opt("DB_POOL_MAX_CONN_LIFETIME", "1h"), time.Hour),
		PoolMaxConnIdleTime:   parseDuration(opt("DB_POOL_MAX_CONN_IDLE_TIME", "30m"), 30*time.Minute),
		PoolHealthCheckPeriod: parseDuration(opt("DB_POOL_HEALTH_CHECK_PERIOD", "1m"), time.Minute),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
	}

	cfg.Embedding = EmbeddingConfig{
		BaseURL:    req("EMBEDDING_BASE_URL"),
		APIKey:     opt("EMBEDDING_API_KEY", ""),
		Model:      opt("EMBEDDING_MODEL", "paraphrase-MiniLM-L6-v2"),
		Dimensions: parseInt(opt("EMBEDDING_DIMENSIONS", "384"), 384),
		Timeout:    parseDuration(opt("EMBEDDING_TIMEOUT", "30s"), 30*time.Second),
		CacheTTL:   parseDuration(opt("EMBEDDING_CACHE_TTL", "24h"), 24*time.Hour),
	}

	cfg.Gemini = GeminiConfig{
		APIKey: opt("GEMINI_API_KEY", ""),
		Model:  opt("GEMINI_MODEL", "gemini-2.5-flash"),
	}

	cfg.Matching = MatchingConfig{
		ShortlistFloor:  parseInt(opt("MATCH_SHORTLIST_FLOOR", "10"), 10),
		AssessorWorkers: parseInt(opt("MATCH_ASSESSOR_WORKERS", "4"), 4),
		AssessorTimeout: parseDuration(opt("MATCH_ASSESSOR_TIMEOUT", "60s"), 60*time.Second),
		PhoneRegion:     opt("PHONE_REGION", "IN"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false
	}
	return b
}

func parseInt(v string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
