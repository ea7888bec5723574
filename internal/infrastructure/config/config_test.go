package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 90, cfg.Server.MaxDays)
	assert.True(t, cfg.Database.IsSQLite())
	assert.Equal(t, 30, cfg.Usage.ReelsQuotaMonthly)
	assert.False(t, cfg.Billing.Configured())
	assert.False(t, cfg.Billing.VerifyWebhooks(), "placeholder webhook secret must not enable verification")
	assert.Same(t, cfg, Get())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TOGETHERLY_SERVER_PORT", "9090")
	t.Setenv("TOGETHERLY_BILLING_SECRET_KEY", "sk_test_123")
	t.Setenv("TOGETHERLY_BILLING_WEBHOOK_SECRET", "whsec_live")
	t.Setenv("TOGETHERLY_AUTH_ADMIN_EMAILS", "Boss@Example.com, ops@example.com")

	cfg, err := Load("release")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.True(t, cfg.Billing.Configured())
	assert.True(t, cfg.Billing.VerifyWebhooks())
	assert.Equal(t, []string{"boss@example.com", "ops@example.com"}, cfg.Auth.AdminEmails)
}
