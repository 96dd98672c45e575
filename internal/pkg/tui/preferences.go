package tui

import (
	"github.com/endorses/lippyphone/internal/pkg/logger"
	"github.com/endorses/lippyphone/internal/pkg/tui/components"
	"github.com/spf13/viper"
)

// Settings are the user preferences shown in the settings section
type Settings struct {
	UserName       string
	UserStatus     string
	NotifyCalls    bool
	NotifyMessages bool
	NotifySounds   bool
	NotifyDesktop  bool
}

// DefaultSettings returns the preferences of a fresh install
func DefaultSettings() Settings {
	return Settings{
		UserName:       "You",
		UserStatus:     "online",
		NotifyCalls:    true,
		NotifyMessages: true,
		NotifySounds:   true,
	}
}

// SettingsFromConfig reads the preferences from viper
func SettingsFromConfig() Settings {
	s := DefaultSettings()
	if v := viper.GetString("user.name"); v != "" {
		s.UserName = v
	}
	if v := viper.GetString("user.status"); v != "" {
		s.UserStatus = v
	}
	for key, dst := range map[string]*bool{
		components.SettingNotifyCalls:    &s.NotifyCalls,
		components.SettingNotifyMessages: &s.NotifyMessages,
		components.SettingNotifySounds:   &s.NotifySounds,
		components.SettingNotifyDesktop:  &s.NotifyDesktop,
	} {
		if viper.IsSet(key) {
			*dst = viper.GetBool(key)
		}
	}
	return s
}

// applySettings loads preferences into the components without reporting
// changes. The zero Settings means defaults.
func (m *Model) applySettings(s Settings) {
	if s == (Settings{}) {
		s = DefaultSettings()
	}
	ui := m.uiState
	ui.SettingsView.SetValue(components.SettingUserName, s.UserName)
	ui.SettingsView.SetValue(components.SettingUserStatus, s.UserStatus)
	ui.SettingsView.SetValue(components.SettingTheme, ui.Theme.Key())
	ui.SettingsView.SetValue(components.SettingNotifyCalls, s.NotifyCalls)
	ui.SettingsView.SetValue(components.SettingNotifyMessages, s.NotifyMessages)
	ui.SettingsView.SetValue(components.SettingNotifySounds, s.NotifySounds)
	ui.SettingsView.SetValue(components.SettingNotifyDesktop, s.NotifyDesktop)
	ui.Header.SetUserName(s.UserName)
	m.notifyCalls = s.NotifyCalls
}

// savePreference records an edited setting for the rest of the session.
// Nothing is written to disk.
func savePreference(key string, value any) {
	viper.Set(key, value)
	logger.Debug("Preference changed", "key", key, "value", value)
}
