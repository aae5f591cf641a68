package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedBeforeInit(t *testing.T) {
	saved := Log
	Log = nil
	t.Cleanup(func() { Log = saved })

	_, err := Named("generator")
	assert.Error(t, err)
}

func TestInitWritesFile(t *testing.T) {
	saved := Log
	t.Cleanup(func() { Log = saved })

	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, Init(Config{Debug: true, TimeZone: "UTC", LogToFile: true, LogsDir: dir}))

	l, err := Named("generator")
	require.NoError(t, err)
	assert.Equal(t, "generator", l.Name)
	assert.Equal(t, dir, l.LogsPath)

	l.Info("hello")
	_ = l.Sync()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"logger":"fancyqr.generator"`)
}

func TestInitBadTimeZone(t *testing.T) {
	assert.Error(t, Init(Config{TimeZone: "Mars/Olympus"}))
}
