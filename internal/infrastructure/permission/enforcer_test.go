package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"togetherly/internal/shared/logger"
)

func newEnforcer(t *testing.T) *Enforcer {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	e, err := NewEnforcer(db, logger.NewNop())
	require.NoError(t, err)
	return e
}

func TestSyncAdminsGrantsAndRevokes(t *testing.T) {
	e := newEnforcer(t)

	require.NoError(t, e.SyncAdmins([]string{"Boss@Example.com", "ops@example.com"}))
	assert.True(t, e.IsAdmin("boss@example.com"))
	assert.True(t, e.IsAdmin("ops@example.com"))
	assert.False(t, e.IsAdmin("someone@example.com"))

	allowed, err := e.Enforce("boss@example.com", ResourceReconcile, ActionRun)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = e.Enforce("someone@example.com", ResourceReconcile, ActionRun)
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, e.SyncAdmins([]string{"boss@example.com"}))
	assert.False(t, e.IsAdmin("ops@example.com"))

	roles, err := e.GetRolesForUser("BOSS@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{RoleAdmin}, roles)
}
