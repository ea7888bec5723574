package config

import (
	"fmt"
	"strings"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// MaxDays caps the calendar length accepted over HTTP.
	MaxDays int `mapstructure:"max_days"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	// Driver is "sqlite" or "mysql".
	Driver          string `mapstructure:"driver"`
	Path            string `mapstructure:"path"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	if d.IsSQLite() {
		return d.Path
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

func (d *DatabaseConfig) IsSQLite() bool {
	return d.Driver == "" || strings.EqualFold(d.Driver, "sqlite")
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
	Verbose    bool   `mapstructure:"verbose"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type TokenConfig struct {
	ResetExpiresMinutes int `mapstructure:"reset_expires_minutes"`
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	SessionExpHours int    `mapstructure:"session_exp_hours"`
}

type CookieConfig struct {
	Name     string `mapstructure:"name"`
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	Token    TokenConfig    `mapstructure:"token"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Cookie   CookieConfig   `mapstructure:"cookie"`
	// AdminEmails turns on admin-only access for reconcile and admin routes when non-empty.
	AdminEmails []string `mapstructure:"admin_emails"`
}

func (a *AuthConfig) SessionDuration() time.Duration {
	if a.JWT.SessionExpHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(a.JWT.SessionExpHours) * time.Hour
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
}

type BillingConfig struct {
	SecretKey     string `mapstructure:"secret_key"`
	WebhookSecret string `mapstructure:"webhook_secret"`
	PriceID       string `mapstructure:"price_id"`
	SuccessURL    string `mapstructure:"success_url"`
	CancelURL     string `mapstructure:"cancel_url"`
	TimeoutSecs   int    `mapstructure:"timeout_seconds"`
	// ReconcileTimeoutSecs bounds one background reconcile pass.
	ReconcileTimeoutSecs int `mapstructure:"reconcile_timeout_seconds"`
}

// placeholderWebhookSecret ships in the sample config and means "not set".
const placeholderWebhookSecret = "whsec_REPLACE_ME"

func (b *BillingConfig) Configured() bool {
	return strings.TrimSpace(b.SecretKey) != ""
}

// VerifyWebhooks reports whether webhook payloads must carry a valid signature.
func (b *BillingConfig) VerifyWebhooks() bool {
	s := strings.TrimSpace(b.WebhookSecret)
	return s != "" && s != placeholderWebhookSecret
}

func (b *BillingConfig) Timeout() time.Duration {
	return secondsOr(b.TimeoutSecs, 10*time.Second)
}

func (b *BillingConfig) ReconcileTimeout() time.Duration {
	return secondsOr(b.ReconcileTimeoutSecs, 5*time.Minute)
}

type EnhancerConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	BaseURL     string  `mapstructure:"base_url"`
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	TimeoutSecs int     `mapstructure:"timeout_seconds"`
}

func (e *EnhancerConfig) Timeout() time.Duration {
	return secondsOr(e.TimeoutSecs, 8*time.Second)
}

type UsageConfig struct {
	ReelsQuotaMonthly int `mapstructure:"reels_quota_monthly"`
}

type FeatureFlagsConfig struct {
	Path  string `mapstructure:"path"`
	Watch bool   `mapstructure:"watch"`
}

type SchedulerConfig struct {
	// ReconcileIntervalMinutes disables the periodic pass when zero.
	ReconcileIntervalMinutes int `mapstructure:"reconcile_interval_minutes"`
}

type ExportConfig struct {
	// TemplatesPath holds optional custom.<format>.tmpl overrides.
	TemplatesPath string `mapstructure:"templates_path"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

func secondsOr(n int, def time.Duration) time.Duration {
	if n <= 0 {
		return def
	}
	return time.Duration(n) * time.Second
}
