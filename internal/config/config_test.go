package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PORT", "DATA_SOURCE", "GEMINI_API_KEY", "API_KEY", "GEMINI_TIMEOUT", "REDIS_ADDR",
		"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "SUMMARY_CACHE_TTL", "OVERDUE_THRESHOLD_DAYS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DataSourceMemory, cfg.DataSource)
	assert.Equal(t, "gemini-3-flash-preview", cfg.Gemini.Model)
	assert.Equal(t, 30*time.Second, cfg.Gemini.Timeout)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.MercadoPago.Mock)
	assert.Equal(t, "C-00", cfg.Clinic.SelfPayContractID)
	assert.Equal(t, 7, cfg.Clinic.OverdueThresholdDays)
	assert.Equal(t, 30, cfg.Clinic.CriticalThresholdDays)
	assert.Equal(t, 24*time.Hour, cfg.Cache.SummaryTTL)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_SOURCE", "DynamoDB")
	t.Setenv("API_KEY", "legacy-key")
	t.Setenv("GEMINI_TIMEOUT", "5s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("MERCADOPAGO_MOCK", "on")
	t.Setenv("OVERDUE_THRESHOLD_DAYS", "not-a-number")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, DataSourceDynamoDB, cfg.DataSource)
	assert.Equal(t, "legacy-key", cfg.Gemini.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Gemini.Timeout)
	assert.True(t, cfg.Redis.Enabled())
	assert.True(t, cfg.MercadoPago.Mock)
	assert.Equal(t, 7, cfg.Clinic.OverdueThresholdDays)
}

func TestLoad_GeminiKeyWinsOverLegacyKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "new")
	t.Setenv("API_KEY", "old")
	assert.Equal(t, "new", Load().Gemini.APIKey)
}
