// Package cmdutil provides shared utilities for CLI command implementations.
package cmdutil

import (
	"fmt"

	"github.com/endorses/lippyphone/internal/pkg/directory"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to configuration keys read from the environment,
// e.g. LIPPYPHONE_TUI_THEME for tui.theme
const EnvPrefix = "LIPPYPHONE"

// Defaults are the configuration values used when neither a flag, the
// environment nor the config file sets a key
var Defaults = map[string]any{
	"tui.theme":              "dark",
	"tui.start_section":      "chats",
	"directory.file":         "",
	"directory.watch":        false,
	"user.name":              "You",
	"user.status":            "online",
	"notifications.calls":    true,
	"notifications.messages": true,
	"notifications.sounds":   true,
	"notifications.desktop":  false,
	"log.level":              "info",
	"log.file":               "",
}

// SetDefaults registers Defaults with viper
func SetDefaults() {
	for key, value := range Defaults {
		viper.SetDefault(key, value)
	}
}

// GetStringConfig returns the config value for key, or flagValue if the key is not set.
// Flag values take precedence over config file values.
func GetStringConfig(key, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return viper.GetString(key)
}

// GetBoolConfig returns true if either the flag or the config value for key is set
func GetBoolConfig(key string, flagValue bool) bool {
	if flagValue {
		return true
	}
	return viper.GetBool(key)
}

// LoadDirectory opens the directory file named by flagValue or
// directory.file. With neither set the embedded sample is used.
func LoadDirectory(flagValue string) (*directory.Directory, error) {
	path := GetStringConfig("directory.file", flagValue)
	d, err := directory.Open(path)
	if err != nil {
		if path == "" {
			return nil, fmt.Errorf("failed to load sample directory: %w", err)
		}
		return nil, fmt.Errorf("failed to load directory %s: %w", path, err)
	}
	return d, nil
}
