package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Store backends
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
	StoreRedis    = "redis"
)

// Report backends
const (
	ReportLocal = "local"
	ReportS3    = "s3"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	PublicURL   string
	CORSOrigins []string
	Env         string
	Timezone    *time.Location

	// Transaction store
	StoreBackend string
	DatabaseURL  string
	SQLitePath   string
	RedisURL     string
	StorageKey   string

	// Report export
	Report ReportConfig

	// S3 Storage
	S3 S3Config

	ProposalTTL time.Duration
	RateLimit   RateLimitConfig
}

// ReportConfig holds report rendering and storage settings
type ReportConfig struct {
	Backend   string
	Prefix    string
	Dir       string
	PageLines int
	URLExpiry time.Duration
}

// S3Config holds AWS S3 configuration
type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // Optional: for MinIO/LocalStack local dev
}

// RateLimitConfig holds per-client request limits
type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	var problems []error

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		PublicURL:    getEnv("PUBLIC_URL", ""),
		CORSOrigins:  splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		Env:          getEnv("ENV", "development"),
		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", StoreSQLite)),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		SQLitePath:   getEnv("SQLITE_PATH", "./data/dompet.db"),
		RedisURL:     getEnv("REDIS_URL", ""),
		StorageKey:   getEnv("STORAGE_KEY", "transactions"),
		Report: ReportConfig{
			Backend:   strings.ToLower(getEnv("REPORT_BACKEND", ReportLocal)),
			Prefix:    getEnv("REPORT_PREFIX", "laporan-keuangan"),
			Dir:       getEnv("REPORT_DIR", "./reports"),
			PageLines: getInt("REPORT_PAGE_LINES", 60, &problems),
			URLExpiry: getDuration("REPORT_URL_EXPIRY", 15*time.Minute, &problems),
		},
		S3: S3Config{
			Region:          getEnv("S3_REGION", "us-east-1"),
			Bucket:          getEnv("S3_BUCKET", "dompet-reports"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:        getEnv("S3_ENDPOINT", ""), // Empty = use AWS, set for MinIO/LocalStack
		},
		ProposalTTL: getDuration("PROPOSAL_TTL", 10*time.Minute, &problems),
		RateLimit: RateLimitConfig{
			PerMinute: getInt("RATE_LIMIT_PER_MINUTE", 120, &problems),
			Burst:     getInt("RATE_LIMIT_BURST", 20, &problems),
		},
	}

	tz := getEnv("TIMEZONE", "Asia/Jakarta")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		problems = append(problems, fmt.Errorf("TIMEZONE %q is not a known location", tz))
		loc = time.UTC
	}
	cfg.Timezone = loc

	problems = append(problems, cfg.validate()...)
	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with ENV=production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() []error {
	var problems []error

	switch c.StoreBackend {
	case StoreMemory:
	case StorePostgres:
		if c.DatabaseURL == "" {
			problems = append(problems, fmt.Errorf("DATABASE_URL is required when STORE_BACKEND=postgres"))
		}
	case StoreSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, fmt.Errorf("SQLITE_PATH is required when STORE_BACKEND=sqlite"))
		}
	case StoreRedis:
		if c.RedisURL == "" {
			problems = append(problems, fmt.Errorf("REDIS_URL is required when STORE_BACKEND=redis"))
		}
	default:
		problems = append(problems, fmt.Errorf("STORE_BACKEND must be one of memory, postgres, sqlite, redis"))
	}

	switch c.Report.Backend {
	case ReportLocal:
		if c.Report.Dir == "" {
			problems = append(problems, fmt.Errorf("REPORT_DIR is required when REPORT_BACKEND=local"))
		}
	case ReportS3:
		if c.S3.Bucket == "" {
			problems = append(problems, fmt.Errorf("S3_BUCKET is required when REPORT_BACKEND=s3"))
		}
	default:
		problems = append(problems, fmt.Errorf("REPORT_BACKEND must be one of local, s3"))
	}

	if c.StorageKey == "" {
		problems = append(problems, fmt.Errorf("STORAGE_KEY must not be empty"))
	}
	if c.Report.PageLines < 10 {
		problems = append(problems, fmt.Errorf("REPORT_PAGE_LINES must be at least 10"))
	}
	if c.ProposalTTL <= 0 {
		problems = append(problems, fmt.Errorf("PROPOSAL_TTL must be positive"))
	}
	if c.RateLimit.PerMinute <= 0 || c.RateLimit.Burst <= 0 {
		problems = append(problems, fmt.Errorf("RATE_LIMIT_PER_MINUTE and RATE_LIMIT_BURST must be positive"))
	}
	return problems
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int, problems *[]error) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		*problems = append(*problems, fmt.Errorf("%s must be an integer, got %q", key, raw))
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration, problems *[]error) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		*problems = append(*problems, fmt.Errorf("%s must be a duration such as 10m, got %q", key, raw))
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
