package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogging(t *testing.T) {
	backend.reset()
	defer backend.reset()

	early := GetLogger("rng")
	early.Info("before initialization")

	var buf bytes.Buffer
	err := Initialize(&buf, FmtLogfmt, LevelInfo, map[string]Level{"sample": LevelError})
	require.NoError(t, err, "Initialize")
	assert.Error(t, Initialize(&buf, FmtLogfmt, LevelInfo, nil), "second Initialize should fail")

	early.Info("seeded generator", "seed", 1234)
	assert.Contains(t, buf.String(), "module=rng", "early logger should be swapped to the backend")
	assert.Contains(t, buf.String(), "seed=1234")
	assert.NotContains(t, buf.String(), "before initialization", "output before Initialize is discarded")

	buf.Reset()
	early.Debug("filtered")
	assert.Empty(t, buf.String(), "debug should be filtered at info level")

	buf.Reset()
	s := GetLogger("sample/poisson")
	s.Warn("filtered by module level")
	assert.Empty(t, buf.String(), "module level should override the default level")
	s.Error("kept")
	assert.Contains(t, buf.String(), "level=error")
	assert.Contains(t, buf.String(), "module=sample/poisson")
}

func TestLoggingJSON(t *testing.T) {
	backend.reset()
	defer backend.reset()

	var buf bytes.Buffer
	require.NoError(t, Initialize(&buf, FmtJSON, LevelDebug, nil))

	GetLogger("distgen").With("distribution", "normal").Debug("drawing")
	assert.Contains(t, buf.String(), `"distribution":"normal"`)
	assert.Contains(t, buf.String(), `"msg":"drawing"`)
}

func TestLevelAndFormatFlags(t *testing.T) {
	var lvl Level
	require.NoError(t, lvl.Set("warn"))
	assert.Equal(t, LevelWarn, lvl)
	assert.Equal(t, "WARN", lvl.String())
	assert.Error(t, lvl.Set("loud"))

	var f Format
	require.NoError(t, f.Set("json"))
	assert.Equal(t, FmtJSON, f)
	assert.Equal(t, "JSON", f.String())
	assert.Error(t, f.Set("xml"))
}
