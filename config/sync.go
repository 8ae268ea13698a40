package config

import (
	"os"
	"strings"

	"hotel-backoffice/utils"
)

// CleaningSyncConfig points at the external REST endpoint that mirrors
// QR-triggered cleaning completions.
type CleaningSyncConfig struct {
	URL        string
	ServiceKey string
	Table      string
}

func LoadCleaningSync() CleaningSyncConfig {
	return CleaningSyncConfig{
		URL:        strings.TrimSpace(os.Getenv("CLEANING_SYNC_URL")),
		ServiceKey: strings.TrimSpace(os.Getenv("CLEANING_SYNC_KEY")),
		Table:      utils.EnvOrDefault("CLEANING_SYNC_TABLE", "cleaning_status"),
	}
}

func (c CleaningSyncConfig) Configured() bool {
	return c.URL != "" && c.ServiceKey != "" && c.Table != ""
}
