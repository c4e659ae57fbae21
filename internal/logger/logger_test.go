package logger_test

import (
	"bytes"
	"testing"

	"github.com/ostafen/smushinfo/internal/logger"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, logger.DebugLevel, logger.ParseLevel("debug"))
	require.Equal(t, logger.WarnLevel, logger.ParseLevel("WARN"))
	require.Equal(t, logger.ErrorLevel, logger.ParseLevel("Error"))
	require.Equal(t, logger.InfoLevel, logger.ParseLevel("verbose"))
	require.Equal(t, "WARN", logger.WarnLevel.String())
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.WarnLevel)

	log.Infof("scanned %d files", 3)
	require.Zero(t, buf.Len())

	log.Warnf("skipped %s", "a.prc")
	require.Contains(t, buf.String(), "level=warning")
	require.Contains(t, buf.String(), "msg=skipped a.prc")
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.DebugLevel).With("run", "abc")

	log.Debug("start")
	require.Contains(t, buf.String(), "run=abc")
	require.Contains(t, buf.String(), "msg=start")
}
