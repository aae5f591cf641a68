package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Badsnus/fancyqr/internal/domain/common/errorz"
	"github.com/Badsnus/fancyqr/pkg/logger/types"
)

func observed() (*types.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &types.Logger{SugaredLogger: zap.New(core).Sugar(), Name: "fonts"}, logs
}

func warnings(logs *observer.ObservedLogs) []observer.LoggedEntry {
	var out []observer.LoggedEntry
	for _, e := range logs.All() {
		if e.Level == zapcore.WarnLevel {
			out = append(out, e)
		}
	}
	return out
}

func fontDir(t *testing.T) string {
	dir := t.TempDir()
	sub := filepath.Join(dir, "truetype", "go")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "Go-Regular.ttf"), goregular.TTF, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "README.txt"), []byte("not a font"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "Broken.otf"), []byte("garbage"), 0o644))
	return dir
}

func TestScanIndexesFontFiles(t *testing.T) {
	dir := fontDir(t)
	d := Scan(dir, filepath.Join(dir, "missing"), "")

	assert.Equal(t, 2, d.Len())

	p, ok := d.Lookup("Go Regular")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "truetype", "go", "Go-Regular.ttf"), p)

	_, ok = d.Lookup("go_regular")
	assert.True(t, ok)

	_, ok = d.Lookup("readme")
	assert.False(t, ok)
}

func TestFaceByName(t *testing.T) {
	log, logs := observed()
	l := NewLoader(Scan(fontDir(t)), log)

	face, err := l.Face("goregular", 24)
	require.NoError(t, err)
	require.NotNil(t, face)
	assert.Empty(t, warnings(logs))
}

func TestFaceByPath(t *testing.T) {
	log, logs := observed()
	path := filepath.Join(fontDir(t), "truetype", "go", "Go-Regular.ttf")

	face, err := NewLoader(nil, log).Face(path, 12)
	require.NoError(t, err)
	require.NotNil(t, face)
	assert.Empty(t, warnings(logs))
}

func TestFaceFallsBack(t *testing.T) {
	dir := fontDir(t)
	for _, name := range []string{"no-such-font", "Broken", filepath.Join(dir, "nope.ttf")} {
		log, logs := observed()
		face, err := NewLoader(Scan(dir), log).Face(name, 42)
		require.NoError(t, err, name)
		require.NotNil(t, face)

		warned := warnings(logs)
		require.Len(t, warned, 1, name)
		assert.Contains(t, warned[0].Message, "Loading default font")
	}
}

func TestFaceDefaultIsQuiet(t *testing.T) {
	log, logs := observed()
	face, err := NewLoader(nil, log).Face(DefaultName, 42)
	require.NoError(t, err)
	require.NotNil(t, face)
	assert.Empty(t, warnings(logs))
}

func TestFaceInvalidSize(t *testing.T) {
	log, _ := observed()
	_, err := NewLoader(nil, log).Face("goregular", 0)
	assert.ErrorIs(t, err, errorz.InvalidParameter)
}

func TestDefaultFaceScales(t *testing.T) {
	small, err := Default(10)
	require.NoError(t, err)
	large, err := Default(40)
	require.NoError(t, err)
	assert.Greater(t, large.Metrics().Height, small.Metrics().Height)
}

func TestLoaderWithoutLogger(t *testing.T) {
	l := NewLoader(nil, nil)

	face, err := l.Face("missing", 12)
	require.NoError(t, err)
	assert.NotNil(t, face)
}
