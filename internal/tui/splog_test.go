package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplog(t *testing.T) {
	t.Run("writes plain console lines", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		splog, buf := newBufferSplog(t)

		splog.Info("hello %s", "train")
		splog.Page("no newline ")
		splog.Info("done")
		splog.Warn("careful")
		splog.Error("broken")
		splog.Debug("hidden")

		require.Equal(t, "hello train\nno newline done\n⚠️  careful\n❌ broken\n", buf.String())
	})

	t.Run("debug is shown when DEBUG is set", func(t *testing.T) {
		t.Setenv("DEBUG", "1")
		splog, buf := newBufferSplog(t)

		splog.Debug("state %d", 3)
		require.Equal(t, "state 3\n", buf.String())
	})

	t.Run("messages without args are not formatted", func(t *testing.T) {
		splog, buf := newBufferSplog(t)

		splog.Info("100%")
		require.Equal(t, "100%\n", buf.String())
	})

	t.Run("file log keeps debug messages", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		logFile := filepath.Join(t.TempDir(), "logs", "prtrain.log")

		splog, err := NewSplogWithConfig(os.Stderr, logFile)
		require.NoError(t, err)
		splog.Debug("only in the file")
		splog.Info("everywhere")
		require.NoError(t, splog.Close())

		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		require.Contains(t, string(data), "only in the file")
		require.Contains(t, string(data), "everywhere")
	})
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("PRTRAIN_LOG_FILE", "/tmp/custom.log")
	require.Equal(t, "/tmp/custom.log", GetLogFilePath())

	t.Setenv("PRTRAIN_LOG_FILE", "")
	require.Equal(t, "prtrain.log", filepath.Base(GetLogFilePath()))
}

func TestCreateLumberjackLogger(t *testing.T) {
	t.Setenv("PRTRAIN_LOG_MAX_SIZE", "5")
	t.Setenv("PRTRAIN_LOG_MAX_BACKUPS", "0")
	t.Setenv("PRTRAIN_LOG_MAX_AGE", "not a number")

	logger := createLumberjackLogger("/tmp/prtrain.log")
	require.Equal(t, 5, logger.MaxSize)
	require.Equal(t, 0, logger.MaxBackups)
	require.Equal(t, 30, logger.MaxAge)
}
