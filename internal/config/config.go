package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DataSourceMemory   = "memory"
	DataSourceDynamoDB = "dynamodb"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	DataSource  string
	DynamoDB    DynamoDBConfig
	Gemini      GeminiConfig
	Redis       RedisConfig
	Cache       CacheConfig
	MercadoPago MercadoPagoConfig
	Log         LogConfig
	Clinic      ClinicConfig
}

type ServerConfig struct {
	Port int
}

// DynamoDBConfig is only read when DataSource is "dynamodb".
type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PatientsTable   string
	ContractsTable  string
	RecordsTable    string
	ChargesTable    string
}

type GeminiConfig struct {
	APIKey            string
	Model             string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerMinute int
}

// RedisConfig enables the Redis summary cache when Addr is set.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func (r RedisConfig) Enabled() bool { return r.Addr != "" }

type CacheConfig struct {
	SummaryTTL time.Duration
}

// MercadoPagoConfig: TestPayer* are only used with TEST- (sandbox) access tokens.
type MercadoPagoConfig struct {
	AccessToken     string
	PublicKey       string
	Mock            bool
	TestPayerEmail  string
	TestPayerUserID string
}

type LogConfig struct {
	Level  string
	Format string
}

// ClinicConfig carries the business thresholds of the analytics engine.
type ClinicConfig struct {
	SelfPayContractID     string
	OverdueThresholdDays  int
	CriticalThresholdDays int
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnvAsInt("PORT", 8080),
		},
		DataSource: strings.ToLower(getEnv("DATA_SOURCE", DataSourceMemory)),
		DynamoDB: DynamoDBConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			Endpoint:        getEnv("DYNAMODB_ENDPOINT", ""),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
			PatientsTable:   getEnv("PATIENTS_TABLE", "patients"),
			ContractsTable:  getEnv("CONTRACTS_TABLE", "contracts"),
			RecordsTable:    getEnv("RECORDS_TABLE", "billing_records"),
			ChargesTable:    getEnv("CHARGES_TABLE", "charges"),
		},
		Gemini: GeminiConfig{
			APIKey:            getEnv("GEMINI_API_KEY", getEnv("API_KEY", "")),
			Model:             getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
			BaseURL:           getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			Timeout:           getEnvAsDuration("GEMINI_TIMEOUT", 30*time.Second),
			RequestsPerMinute: getEnvAsInt("GEMINI_REQUESTS_PER_MINUTE", 60),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Cache: CacheConfig{
			SummaryTTL: getEnvAsDuration("SUMMARY_CACHE_TTL", 24*time.Hour),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken:     getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
			PublicKey:       getEnv("MERCADOPAGO_PUBLIC_KEY", ""),
			Mock:            getEnvAsBool("PAYMENT_GATEWAY_MOCK", false) || getEnvAsBool("MERCADOPAGO_MOCK", false),
			TestPayerEmail:  getEnv("MERCADOPAGO_TEST_PAYER_EMAIL", ""),
			TestPayerUserID: getEnv("MERCADOPAGO_TEST_PAYER_USER_ID", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Clinic: ClinicConfig{
			SelfPayContractID:     getEnv("SELF_PAY_CONTRACT_ID", "C-00"),
			OverdueThresholdDays:  getEnvAsInt("OVERDUE_THRESHOLD_DAYS", 7),
			CriticalThresholdDays: getEnvAsInt("CRITICAL_THRESHOLD_DAYS", 30),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsBool also accepts the "on"/"yes"/"mock" spellings used by PAYMENT_GATEWAY_MOCK.
func getEnvAsBool(key string, defaultValue bool) bool {
	switch strings.ToLower(getEnv(key, "")) {
	case "1", "true", "yes", "on", "mock":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return d
}
