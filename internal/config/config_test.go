package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.LockInOpen != "08:00" || cfg.LockInClose != "18:00" {
		t.Errorf("window = %s-%s, want 08:00-18:00", cfg.LockInOpen, cfg.LockInClose)
	}
	if cfg.MinGapMinutes != 30 || cfg.DeepWorkMinutes != 120 {
		t.Errorf("gap thresholds = %d/%d, want 30/120", cfg.MinGapMinutes, cfg.DeepWorkMinutes)
	}
	if cfg.FocusMinutes != 25 {
		t.Errorf("FocusMinutes = %d, want 25", cfg.FocusMinutes)
	}
	if cfg.ReminderLeadMinutes != 5 {
		t.Errorf("ReminderLeadMinutes = %d, want 5", cfg.ReminderLeadMinutes)
	}
}

func TestLoad_OverlayWins(t *testing.T) {
	dir := t.TempDir()
	content := `{"lock_in_open": "07:00", "min_gap_minutes": 45, "gemini_api_keys": ["k1", "k2"]}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.LockInOpen != "07:00" {
		t.Errorf("LockInOpen = %q, want 07:00", cfg.LockInOpen)
	}
	if cfg.LockInClose != "18:00" {
		t.Errorf("LockInClose = %q, want default 18:00", cfg.LockInClose)
	}
	if cfg.MinGapMinutes != 45 {
		t.Errorf("MinGapMinutes = %d, want 45", cfg.MinGapMinutes)
	}
	if len(cfg.GeminiAPIKeys) != 2 {
		t.Errorf("GeminiAPIKeys = %v, want 2 keys", cfg.GeminiAPIKeys)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("Load succeeded on invalid JSON, want error")
	}
}

func TestGapPolicy_FromConfig(t *testing.T) {
	cfg := DefaultConfig()

	p, err := cfg.GapPolicy()
	if err != nil {
		t.Fatalf("GapPolicy failed: %v", err)
	}
	if p.Open != 480 || p.Close != 1080 {
		t.Errorf("window = [%d, %d), want [480, 1080)", p.Open, p.Close)
	}
	if p.MinGap != 30 || p.DeepWorkMin != 120 {
		t.Errorf("thresholds = %d/%d, want 30/120", p.MinGap, p.DeepWorkMin)
	}
}

func TestGapPolicy_RejectsMalformedWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LockInOpen = "25:00"
	if _, err := cfg.GapPolicy(); err == nil {
		t.Error("GapPolicy accepted 25:00 open")
	}

	cfg = DefaultConfig()
	cfg.LockInOpen = "19:00" // after close
	if _, err := cfg.GapPolicy(); err == nil {
		t.Error("GapPolicy accepted inverted window")
	}
}

func TestMerge_ArraysDeduplicated(t *testing.T) {
	base := &Config{DisabledTools: []string{"todo_add", "block_add"}}
	overlay := &Config{DisabledTools: []string{"block_add", " agenda_get "}}

	merged := Merge(base, overlay)

	want := []string{"todo_add", "block_add", "agenda_get"}
	if len(merged.DisabledTools) != len(want) {
		t.Fatalf("DisabledTools = %v, want %v", merged.DisabledTools, want)
	}
	for i := range want {
		if merged.DisabledTools[i] != want[i] {
			t.Errorf("DisabledTools[%d] = %q, want %q", i, merged.DisabledTools[i], want[i])
		}
	}
}
