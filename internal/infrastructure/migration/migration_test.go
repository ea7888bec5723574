package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "togetherly/internal/shared/logger"
)

func openMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestGooseStrategyUpAndDown(t *testing.T) {
	db := openMemoryDB(t)
	strategy, err := NewGooseStrategy("sqlite", applog.NewNop())
	require.NoError(t, err)

	require.NoError(t, NewManagerWithStrategy(strategy, applog.NewNop()).Migrate(db))

	for _, table := range []string{"users", "profiles", "subscriptions", "generation_usage", "reconcile_jobs", "feedback"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s", table)
	}

	version, err := strategy.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	// Running again is a no-op.
	require.NoError(t, strategy.Migrate(db))

	require.NoError(t, strategy.MigrateDown(db, 1))
	assert.False(t, db.Migrator().HasTable("users"))
}

func TestNewGooseStrategyRejectsUnknownDriver(t *testing.T) {
	_, err := NewGooseStrategy("postgres", applog.NewNop())
	assert.Error(t, err)
}
