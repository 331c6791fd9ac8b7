package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Kishanjee7/finhealth/internal/domain/service"
	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
	"github.com/Kishanjee7/finhealth/pkg/postgres"
)

// Benchmark table sources.
const (
	BenchmarkSourceEmbedded = "embedded"
	BenchmarkSourceFile     = "file"
	BenchmarkSourcePostgres = "postgres"
)

// Config holds all configuration for the analysis service.
type Config struct {
	// HTTP API, health and metrics port
	HTTPPort int
	// gRPC server port
	GRPCPort    int
	GRPCEnabled bool
	// Optional gRPC TLS; both files must be set to enable it.
	GRPCTLSCertFile string
	GRPCTLSKeyFile  string
	GRPCReflection  bool
	// Service name for observability
	ServiceName string
	LogLevel    string
	LogFormat   string
	// Requests per second allowed by the REST rate limiter; 0 disables it.
	RateLimitRPS float64

	Benchmark BenchmarkConfig
	Database  postgres.Config
	Kafka     KafkaConfig
	Analysis  AnalysisConfig
}

// BenchmarkConfig selects where the industry benchmark table is loaded from.
type BenchmarkConfig struct {
	Source string
	File   string
}

// KafkaConfig holds Kafka connection settings.
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string

	SASLMechanism string
	SASLUsername  string
	SASLPassword  string
	TLS           bool
	TLSCAFile     string
	AutoCreate    bool
}

// AnalysisConfig holds the tunable analysis parameters.
type AnalysisConfig struct {
	DefaultLanguage        string
	DefaultForecastPeriods int
	Risk                   service.RiskThresholds
	Weights                service.HealthWeights
}

// Load reads configuration from environment variables with defaults. A .env
// file in the working directory is read first when present; variables that
// are already set take precedence over it.
func Load() Config {
	_ = godotenv.Load()

	risk := service.DefaultRiskThresholds()
	weights := service.DefaultHealthWeights()

	return Config{
		HTTPPort:        getEnvInt("HTTP_PORT", 8090),
		GRPCPort:        getEnvInt("GRPC_PORT", 9090),
		GRPCEnabled:     getEnvBool("GRPC_ENABLED", true),
		GRPCTLSCertFile: getEnv("GRPC_TLS_CERT_FILE", ""),
		GRPCTLSKeyFile:  getEnv("GRPC_TLS_KEY_FILE", ""),
		GRPCReflection:  getEnvBool("GRPC_REFLECTION", false),
		ServiceName:     getEnv("SERVICE_NAME", "finhealth"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 50),
		Benchmark: BenchmarkConfig{
			Source: strings.ToLower(getEnv("BENCHMARK_SOURCE", BenchmarkSourceEmbedded)),
			File:   getEnv("BENCHMARK_FILE", ""),
		},
		Database: postgres.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "finhealth"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "finhealth"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 4)),
			MinConns: int32(getEnvInt("DB_MIN_CONNS", 1)),
		},
		Kafka: KafkaConfig{
			Enabled: getEnvBool("KAFKA_ENABLED", false),
			Brokers: getEnvList("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:   getEnv("KAFKA_TOPIC", "finhealth.analysis"),

			SASLMechanism: getEnv("KAFKA_SASL_MECHANISM", ""),
			SASLUsername:  getEnv("KAFKA_SASL_USERNAME", ""),
			SASLPassword:  getEnv("KAFKA_SASL_PASSWORD", ""),
			TLS:           getEnvBool("KAFKA_TLS", false),
			TLSCAFile:     getEnv("KAFKA_TLS_CA_FILE", ""),
			AutoCreate:    getEnvBool("KAFKA_AUTO_CREATE_TOPICS", false),
		},
		Analysis: AnalysisConfig{
			DefaultLanguage:        getEnv("DEFAULT_LANGUAGE", "en"),
			DefaultForecastPeriods: getEnvInt("FORECAST_DEFAULT_PERIODS", service.DefaultForecastPeriods),
			Risk: service.RiskThresholds{
				CriticalCurrentRatio:  getEnvFloat("RISK_CRITICAL_CURRENT_RATIO", risk.CriticalCurrentRatio),
				ExcessiveDebtToEquity: getEnvFloat("RISK_EXCESSIVE_DEBT_TO_EQUITY", risk.ExcessiveDebtToEquity),
				MinInterestCoverage:   getEnvFloat("RISK_MIN_INTEREST_COVERAGE", risk.MinInterestCoverage),
				AgingTrigger:          getEnvFloat("RISK_AGING_TRIGGER", risk.AgingTrigger),
				AgingMedium:           getEnvFloat("RISK_AGING_MEDIUM", risk.AgingMedium),
				AgingHigh:             getEnvFloat("RISK_AGING_HIGH", risk.AgingHigh),
				ConcentrationMedium:   getEnvFloat("RISK_CONCENTRATION_MEDIUM", risk.ConcentrationMedium),
				ConcentrationHigh:     getEnvFloat("RISK_CONCENTRATION_HIGH", risk.ConcentrationHigh),
			},
			Weights: service.HealthWeights{
				valueobject.CategoryLiquidity:     getEnvFloat("WEIGHT_LIQUIDITY", weights[valueobject.CategoryLiquidity]),
				valueobject.CategoryProfitability: getEnvFloat("WEIGHT_PROFITABILITY", weights[valueobject.CategoryProfitability]),
				valueobject.CategorySolvency:      getEnvFloat("WEIGHT_SOLVENCY", weights[valueobject.CategorySolvency]),
				valueobject.CategoryEfficiency:    getEnvFloat("WEIGHT_EFFICIENCY", weights[valueobject.CategoryEfficiency]),
			},
		},
	}
}

// Validate checks configuration values that would otherwise fail late.
func (c Config) Validate() error {
	var errs []error

	switch c.Benchmark.Source {
	case BenchmarkSourceEmbedded:
	case BenchmarkSourceFile:
		if c.Benchmark.File == "" {
			errs = append(errs, errors.New("BENCHMARK_FILE is required when BENCHMARK_SOURCE=file"))
		}
	case BenchmarkSourcePostgres:
		if c.Database.Password == "" {
			errs = append(errs, errors.New("DB_PASSWORD is required when BENCHMARK_SOURCE=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown BENCHMARK_SOURCE %q", c.Benchmark.Source))
	}

	if (c.GRPCTLSCertFile == "") != (c.GRPCTLSKeyFile == "") {
		errs = append(errs, errors.New("GRPC_TLS_CERT_FILE and GRPC_TLS_KEY_FILE must be set together"))
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		errs = append(errs, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED=true"))
	}
	switch strings.ToUpper(c.Kafka.SASLMechanism) {
	case "", "PLAIN", "SCRAM-SHA-256", "SCRAM-SHA-512":
	default:
		errs = append(errs, fmt.Errorf("unsupported KAFKA_SASL_MECHANISM %q", c.Kafka.SASLMechanism))
	}
	if _, ok := valueobject.LanguageFromString(c.Analysis.DefaultLanguage); !ok {
		errs = append(errs, fmt.Errorf("unsupported DEFAULT_LANGUAGE %q", c.Analysis.DefaultLanguage))
	}
	if p := c.Analysis.DefaultForecastPeriods; p < 1 || p > service.MaxForecastPeriods {
		errs = append(errs, fmt.Errorf("FORECAST_DEFAULT_PERIODS must be between 1 and %d, got %d", service.MaxForecastPeriods, p))
	}
	if c.RateLimitRPS < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS must not be negative"))
	}
	if err := c.Analysis.Weights.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// GRPCAddress returns the full gRPC listen address.
func (c Config) GRPCAddress() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// HTTPAddress returns the full HTTP listen address.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvList(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
