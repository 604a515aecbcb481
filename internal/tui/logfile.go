package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If PRTRAIN_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.prtrain/logs/prtrain.log
func GetLogFilePath() string {
	if customPath := os.Getenv("PRTRAIN_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "prtrain.log"
	}

	return filepath.Join(homeDir, ".prtrain", "logs", "prtrain.log")
}
