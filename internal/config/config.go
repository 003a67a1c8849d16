package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/cart-total/internal/pricing"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv string

	LogFormat        string
	LogLevel         string
	MetricsNamespace string
	TracingEnabled   bool
	OTLPEndpoint     string
	TracingSampling  float64

	Rates     pricing.Rates
	IsMember  bool
	HasCoupon bool
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	rates, err := loadRates(k)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AppEnv:           valueOrDefault(k.String("APP_ENV"), "development"),
		LogFormat:        valueOrDefault(k.String("OBS_LOG_FORMAT"), "console"),
		LogLevel:         valueOrDefault(k.String("OBS_LOG_LEVEL"), "warn"),
		MetricsNamespace: valueOrDefault(k.String("OBS_METRICS_NAMESPACE"), "cart"),
		TracingEnabled:   parseBool(k.String("OBS_ENABLE_TRACING"), false),
		OTLPEndpoint:     strings.TrimSpace(k.String("OBS_OTLP_ENDPOINT")),
		TracingSampling:  parseFloat(k.String("OBS_TRACING_SAMPLING_RATIO"), 1.0),
		Rates:            rates,
		IsMember:         parseBool(k.String("CART_IS_MEMBER"), true),
		HasCoupon:        parseBool(k.String("CART_HAS_COUPON"), true),
	}
	return cfg, nil
}

func loadRates(k *koanf.Koanf) (pricing.Rates, error) {
	rates := pricing.DefaultRates()
	fields := []struct {
		key    string
		target *decimal.Decimal
	}{
		{"CART_TAX_RATE", &rates.TaxRate},
		{"CART_MEMBER_DISCOUNT", &rates.MemberDiscount},
		{"CART_BIG_SPENDER_DISCOUNT", &rates.BigSpenderDiscount},
		{"CART_BIG_SPENDER_THRESHOLD", &rates.BigSpenderThreshold},
		{"CART_COUPON_DISCOUNT", &rates.CouponDiscount},
	}
	for _, f := range fields {
		raw := strings.TrimSpace(k.String(f.key))
		if raw == "" {
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return pricing.Rates{}, fmt.Errorf("parse %s: %w", f.key, err)
		}
		*f.target = d
	}
	rates.Currency = valueOrDefault(k.String("CART_CURRENCY"), rates.Currency)
	return rates, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func parseBool(value string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func parseFloat(value string, fallback float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return f
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
