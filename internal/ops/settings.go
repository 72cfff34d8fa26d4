package ops

import (
	"database/sql"
	"net/url"
	"strconv"
	"strings"

	"github.com/pranavb/lockin/internal/config"
	"github.com/pranavb/lockin/internal/db"
	"github.com/pranavb/lockin/internal/errors"
	"github.com/pranavb/lockin/internal/schedule"
)

// Settings keys.
const (
	KeyMusicURL      = "music_url"
	KeyNotifications = "notifications_enabled"
	KeyReminderLead  = "reminder_lead_minutes"
)

// MusicGetOutput contains the result of the MusicGet operation.
type MusicGetOutput struct {
	URL string `json:"url,omitempty"`
	Set bool   `json:"set"`
}

// MusicGet returns the saved focus-music URL, if any.
func MusicGet(database *sql.DB) (*MusicGetOutput, error) {
	value, ok, err := db.GetSetting(database, KeyMusicURL)
	if err != nil {
		return nil, err
	}
	return &MusicGetOutput{URL: value, Set: ok}, nil
}

// MusicSetInput contains parameters for the MusicSet operation.
type MusicSetInput struct {
	URL string
}

// MusicSetOutput contains the result of the MusicSet operation.
type MusicSetOutput struct {
	URL string `json:"url"`
}

// MusicSet saves the focus-music URL.
func MusicSet(database *sql.DB, input MusicSetInput) (*MusicSetOutput, error) {
	raw, err := validateMusicURL(input.URL)
	if err != nil {
		return nil, err
	}
	if err := db.SetSetting(database, KeyMusicURL, raw); err != nil {
		return nil, err
	}
	return &MusicSetOutput{URL: raw}, nil
}

// validateMusicURL checks a focus-music URL. Only absolute http or
// https URLs are accepted; the web UI renders this as a link, so
// anything else (javascript:, data:, relative paths) is rejected
// outright.
func validateMusicURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.NewInvalidRequest("url is required")
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", errors.NewInvalidRequest("url must be absolute http or https")
	}
	return raw, nil
}

// SettingsOutput is the full persisted-settings snapshot returned by
// SettingsGet and SettingsSet.
type SettingsOutput struct {
	MusicURL             string `json:"music_url,omitempty"`
	MusicSet             bool   `json:"music_set"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	ReminderLeadMinutes  int    `json:"reminder_lead_minutes"`
}

// SettingsGet returns the persisted user settings. Notifications
// default to on, and the reminder lead falls back to the configured
// value; a missing or corrupt row never errors past the load boundary.
func SettingsGet(database *sql.DB, cfg *config.Config) (*SettingsOutput, error) {
	music, musicSet, err := db.GetSetting(database, KeyMusicURL)
	if err != nil {
		return nil, err
	}

	enabled := true
	if value, ok, err := db.GetSetting(database, KeyNotifications); err != nil {
		return nil, err
	} else if ok {
		if parsed, perr := strconv.ParseBool(value); perr == nil {
			enabled = parsed
		}
	}

	lead := cfg.ReminderLeadMinutes
	if value, ok, err := db.GetSetting(database, KeyReminderLead); err != nil {
		return nil, err
	} else if ok {
		if parsed, perr := strconv.Atoi(value); perr == nil && parsed >= 0 && parsed < schedule.MinutesPerDay {
			lead = parsed
		}
	}

	return &SettingsOutput{
		MusicURL:             music,
		MusicSet:             musicSet,
		NotificationsEnabled: enabled,
		ReminderLeadMinutes:  lead,
	}, nil
}

// SettingsSetInput contains parameters for the SettingsSet operation.
// Nil fields keep their stored values.
type SettingsSetInput struct {
	MusicURL             *string
	NotificationsEnabled *bool
	ReminderLeadMinutes  *int
}

// SettingsSet updates the persisted user settings and returns the
// resulting snapshot.
func SettingsSet(database *sql.DB, cfg *config.Config, input SettingsSetInput) (*SettingsOutput, error) {
	if input.MusicURL != nil {
		raw, err := validateMusicURL(*input.MusicURL)
		if err != nil {
			return nil, err
		}
		if err := db.SetSetting(database, KeyMusicURL, raw); err != nil {
			return nil, err
		}
	}

	if input.NotificationsEnabled != nil {
		value := strconv.FormatBool(*input.NotificationsEnabled)
		if err := db.SetSetting(database, KeyNotifications, value); err != nil {
			return nil, err
		}
	}

	if input.ReminderLeadMinutes != nil {
		lead := *input.ReminderLeadMinutes
		if lead < 0 || lead >= schedule.MinutesPerDay {
			return nil, errors.NewInvalidRequest("reminder lead must be between 0 and 1439 minutes")
		}
		if err := db.SetSetting(database, KeyReminderLead, strconv.Itoa(lead)); err != nil {
			return nil, err
		}
	}

	return SettingsGet(database, cfg)
}
