package featureflag

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"togetherly/internal/shared/logger"
)

func writeFlags(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestStore_ReadsFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.json")
	writeFlags(t, path, `{"version":"2025.03","gate7DayToPaid":true,"reelsQuotaMonthly":12,"beta":"yes","limit":"7"}`)

	s, err := NewStore(path, logger.NewNop())
	require.NoError(t, err)

	assert.True(t, s.Bool(KeyGate7DayToPaid, false))
	assert.True(t, s.Bool("GATE7DAYTOPAID", false), "lookup falls back to case-insensitive match")
	assert.Equal(t, 12, s.Int(KeyReelsQuotaMonthly, 30))
	assert.Equal(t, 7, s.Int("limit", 0))
	assert.True(t, s.Bool("beta", true), "unparseable string keeps the default")
	assert.False(t, s.Bool("missing", false))
	assert.Equal(t, 30, s.Int("missing", 30))
	assert.Equal(t, "2025.03", s.Version())

	all := s.All()
	assert.NotContains(t, all, "version")
	assert.Equal(t, true, all[KeyGate7DayToPaid])
}

func TestStore_MissingFile(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "nope.json"), logger.NewNop())
	require.NoError(t, err)
	assert.Empty(t, s.All())
	assert.Equal(t, "local", s.Version())
}

func TestStore_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.json")
	writeFlags(t, path, `{"gate7DayToPaid":`)

	_, err := NewStore(path, logger.NewNop())
	assert.Error(t, err)
}

func TestStore_ReloadKeepsSnapshotOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.json")
	writeFlags(t, path, `{"gate7DayToPaid":true}`)
	s, err := NewStore(path, logger.NewNop())
	require.NoError(t, err)

	writeFlags(t, path, `not json`)
	assert.Error(t, s.Reload())
	assert.True(t, s.Bool(KeyGate7DayToPaid, false))
}

func TestStore_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.json")
	writeFlags(t, path, `{"gate7DayToPaid":false}`)

	s, err := NewStore(path, logger.NewNop())
	require.NoError(t, err)
	s.debounce = 10 * time.Millisecond

	changed := make(chan struct{}, 4)
	s.OnChange(func() { changed <- struct{}{} })
	require.NoError(t, s.Watch())
	t.Cleanup(func() { _ = s.Close() })

	writeFlags(t, path, `{"gate7DayToPaid":true}`)

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("flags were not reloaded")
	}
	assert.Eventually(t, func() bool {
		return s.Bool(KeyGate7DayToPaid, false)
	}, 5*time.Second, 10*time.Millisecond)
}
