package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/pranavb/lockin/internal/schedule"
)

// Config holds application configuration.
type Config struct {
	// LockInOpen/LockInClose bound the daily window within which gap
	// blocks are computed, as "HH:MM" strings.
	LockInOpen  string `json:"lock_in_open"`
	LockInClose string `json:"lock_in_close"`

	// MinGapMinutes is the smallest free stretch surfaced as a gap block.
	MinGapMinutes int `json:"min_gap_minutes"`

	// DeepWorkMinutes is the duration at which a gap is labeled
	// "Deep Work" instead of "Focus Block".
	DeepWorkMinutes int `json:"deep_work_minutes"`

	// SlotMinutes is the week-grid row granularity.
	SlotMinutes int `json:"slot_minutes"`

	// FocusMinutes is the default focus-session length.
	FocusMinutes int `json:"focus_minutes"`

	// ReminderLeadMinutes is how long before a class the reminder fires.
	ReminderLeadMinutes int `json:"reminder_lead_minutes"`

	// GeminiAPIKeys are the keys used for timetable digitization; one is
	// picked at random per request. Digitization is unavailable when empty.
	GeminiAPIKeys []string `json:"gemini_api_keys,omitempty"`

	// DigitizeModel is the Gemini model used for digitization.
	DigitizeModel string `json:"digitize_model,omitempty"`

	// WebBind/WebPort control the local web UI listener.
	WebBind string `json:"web_bind,omitempty"`
	WebPort int    `json:"web_port,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from
	// registration. Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration: the 08:00-18:00
// lock-in window with the 30/120 minute gap thresholds.
func DefaultConfig() *Config {
	return &Config{
		LockInOpen:          "08:00",
		LockInClose:         "18:00",
		MinGapMinutes:       schedule.DefaultMinGap,
		DeepWorkMinutes:     schedule.DefaultDeepWorkMin,
		SlotMinutes:         schedule.DefaultSlotMinutes,
		FocusMinutes:        25,
		ReminderLeadMinutes: 5,
		DigitizeModel:       "gemini-1.5-flash",
		WebBind:             "127.0.0.1",
		WebPort:             7920,
	}
}

// Load loads configuration from baseDir/config.json. Returns default
// config if the file doesn't exist. The baseDir parameter allows tests
// to use t.TempDir() instead of ~/.lockin.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// loadFileRaw loads configuration from a specific file path. Returns
// zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge combines base and overlay configs. Overlay values take
// precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.LockInOpen = pick(overlay.LockInOpen, base.LockInOpen)
	result.LockInClose = pick(overlay.LockInClose, base.LockInClose)
	result.DigitizeModel = pick(overlay.DigitizeModel, base.DigitizeModel)
	result.WebBind = pick(overlay.WebBind, base.WebBind)

	result.MinGapMinutes = pickInt(overlay.MinGapMinutes, base.MinGapMinutes)
	result.DeepWorkMinutes = pickInt(overlay.DeepWorkMinutes, base.DeepWorkMinutes)
	result.SlotMinutes = pickInt(overlay.SlotMinutes, base.SlotMinutes)
	result.FocusMinutes = pickInt(overlay.FocusMinutes, base.FocusMinutes)
	result.ReminderLeadMinutes = pickInt(overlay.ReminderLeadMinutes, base.ReminderLeadMinutes)
	result.WebPort = pickInt(overlay.WebPort, base.WebPort)

	result.GeminiAPIKeys = mergeStringSlice(base.GeminiAPIKeys, overlay.GeminiAPIKeys)
	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// GapPolicy parses the configured lock-in window into a validated policy.
func (c *Config) GapPolicy() (schedule.GapPolicy, error) {
	open, err := schedule.ParseClock(c.LockInOpen)
	if err != nil {
		return schedule.GapPolicy{}, err
	}
	closeAt, err := schedule.ParseClock(c.LockInClose)
	if err != nil {
		return schedule.GapPolicy{}, err
	}
	p := schedule.GapPolicy{
		Open:        open,
		Close:       closeAt,
		MinGap:      c.MinGapMinutes,
		DeepWorkMin: c.DeepWorkMinutes,
	}
	if err := p.Validate(); err != nil {
		return schedule.GapPolicy{}, err
	}
	return p, nil
}

func pick(overlay, base string) string {
	if overlay != "" {
		return overlay
	}
	return base
}

func pickInt(overlay, base int) int {
	if overlay != 0 {
		return overlay
	}
	return base
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range append(append([]string{}, a...), b...) {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
