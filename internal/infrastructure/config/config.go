package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "togetherly/internal/shared/config"
)

type Config struct {
	Server       sharedConfig.ServerConfig       `mapstructure:"server"`
	Database     sharedConfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Auth         sharedConfig.AuthConfig         `mapstructure:"auth"`
	Email        sharedConfig.EmailConfig        `mapstructure:"email"`
	Redis        sharedConfig.RedisConfig        `mapstructure:"redis"`
	RateLimit    sharedConfig.RateLimitConfig    `mapstructure:"rate_limit"`
	Billing      sharedConfig.BillingConfig      `mapstructure:"billing"`
	Enhancer     sharedConfig.EnhancerConfig     `mapstructure:"enhancer"`
	Usage        sharedConfig.UsageConfig        `mapstructure:"usage"`
	FeatureFlags sharedConfig.FeatureFlagsConfig `mapstructure:"featureflags"`
	Scheduler    sharedConfig.SchedulerConfig    `mapstructure:"scheduler"`
	Metrics      sharedConfig.MetricsConfig      `mapstructure:"metrics"`
	Export       sharedConfig.ExportConfig       `mapstructure:"export"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads .env (if present), then configs/config.yaml, then TOGETHERLY_*
// environment variables. A missing config file is not an error.
func Load(env string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("TOGETHERLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Auth.AdminEmails = splitList(config.Auth.AdminEmails)
	config.Server.AllowedOrigins = splitList(config.Server.AllowedOrigins)

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// splitList accepts both YAML lists and a single comma-separated env value.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.max_days", 90)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "togetherly.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "togetherly")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "text")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.password.bcrypt_cost", 12)
	v.SetDefault("auth.token.reset_expires_minutes", 30)
	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.session_exp_hours", 24*7)
	v.SetDefault("auth.cookie.name", "togetherly_session")
	v.SetDefault("auth.cookie.path", "/")
	v.SetDefault("auth.cookie.same_site", "Lax")
	v.SetDefault("auth.cookie.domain", "")
	v.SetDefault("auth.cookie.secure", false)
	v.SetDefault("auth.admin_emails", []string{})

	v.SetDefault("email.smtp_host", "localhost")
	v.SetDefault("email.smtp_port", 1025)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "noreply@togetherly.local")
	v.SetDefault("email.from_name", "Togetherly")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_minute", 30)

	v.SetDefault("billing.secret_key", "")
	v.SetDefault("billing.price_id", "")
	v.SetDefault("billing.webhook_secret", "whsec_REPLACE_ME")
	v.SetDefault("billing.success_url", "http://localhost:8080/account?checkout=success")
	v.SetDefault("billing.cancel_url", "http://localhost:8080/pricing?checkout=cancel")
	v.SetDefault("billing.timeout_seconds", 10)
	v.SetDefault("billing.reconcile_timeout_seconds", 300)

	v.SetDefault("enhancer.enabled", false)
	v.SetDefault("enhancer.base_url", "https://api.openai.com/v1")
	v.SetDefault("enhancer.api_key", "")
	v.SetDefault("enhancer.model", "gpt-4o-mini")
	v.SetDefault("enhancer.temperature", 0.7)
	v.SetDefault("enhancer.timeout_seconds", 8)

	v.SetDefault("usage.reels_quota_monthly", 30)

	v.SetDefault("featureflags.path", "flags.json")
	v.SetDefault("featureflags.watch", true)

	v.SetDefault("scheduler.reconcile_interval_minutes", 0)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("export.templates_path", "configs/templates")
}
