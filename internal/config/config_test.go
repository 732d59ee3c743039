package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENV", "CORS_ORIGINS", "TIMEZONE", "STORE_BACKEND", "DATABASE_URL",
		"SQLITE_PATH", "REDIS_URL", "STORAGE_KEY", "REPORT_BACKEND", "REPORT_PREFIX",
		"REPORT_DIR", "REPORT_PAGE_LINES", "REPORT_URL_EXPIRY", "S3_BUCKET", "S3_REGION",
		"S3_ENDPOINT", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "PROPOSAL_TTL",
		"RATE_LIMIT_PER_MINUTE", "RATE_LIMIT_BURST",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreSQLite, cfg.StoreBackend)
	assert.Equal(t, "transactions", cfg.StorageKey)
	assert.Equal(t, ReportLocal, cfg.Report.Backend)
	assert.Equal(t, "laporan-keuangan", cfg.Report.Prefix)
	assert.Equal(t, 60, cfg.Report.PageLines)
	assert.Equal(t, 10*time.Minute, cfg.ProposalTTL)
	assert.Equal(t, "Asia/Jakarta", cfg.Timezone.String())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("REPORT_BACKEND", "s3")
	t.Setenv("S3_BUCKET", "reports")
	t.Setenv("REPORT_PAGE_LINES", "40")
	t.Setenv("PROPOSAL_TTL", "90s")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("ENV", "production")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, StoreRedis, cfg.StoreBackend)
	assert.Equal(t, ReportS3, cfg.Report.Backend)
	assert.Equal(t, 40, cfg.Report.PageLines)
	assert.Equal(t, 90*time.Second, cfg.ProposalTTL)
	assert.Equal(t, time.UTC, cfg.Timezone)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_CollectsAllProblems(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("REPORT_BACKEND", "ftp")
	t.Setenv("REPORT_PAGE_LINES", "many")
	t.Setenv("TIMEZONE", "Mars/Olympus")

	cfg, err := Load()

	require.Error(t, err)
	assert.Nil(t, cfg)
	msg := err.Error()
	assert.Contains(t, msg, "DATABASE_URL is required")
	assert.Contains(t, msg, "REPORT_BACKEND must be one of")
	assert.Contains(t, msg, "REPORT_PAGE_LINES must be an integer")
	assert.Contains(t, msg, "TIMEZONE")
}
