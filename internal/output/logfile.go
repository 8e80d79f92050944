package output

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the default log file path, ~/.gitprovider/logs/gitprovider.log.
// It falls back to the current directory when the home directory is unknown.
func GetLogFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "gitprovider.log"
	}
	return filepath.Join(homeDir, ".gitprovider", "logs", "gitprovider.log")
}
