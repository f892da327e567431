package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestTargetCountTable(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		difficulty Difficulty
		expected   int
	}{
		{DifficultyEasy, 8},
		{DifficultyMedium, 12},
		{DifficultyHard, 15},
	}

	for _, tc := range tests {
		t.Run(string(tc.difficulty), func(t *testing.T) {
			if got := cfg.Session.TargetCount(tc.difficulty); got != tc.expected {
				t.Errorf("TargetCount(%s) = %d, expected %d", tc.difficulty, got, tc.expected)
			}
		})
	}
}

func TestTargetCountFallsBackToTable(t *testing.T) {
	s := SessionConfig{}
	if got := s.TargetCount(DifficultyHard); got != 15 {
		t.Errorf("TargetCount with empty map = %d, expected 15", got)
	}
	if got := s.TimeLimit(DifficultyHard); got != 300 {
		t.Errorf("TimeLimit with empty map = %d, expected 300", got)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded YAML and DefaultConfig() differ:\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
session:
  acceptance_threshold: 55
scoring:
  amplification: 3
  timeout: 2s
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Session.AcceptanceThreshold != 55 {
		t.Errorf("AcceptanceThreshold = %v, expected 55", cfg.Session.AcceptanceThreshold)
	}
	if cfg.Scoring.Amplification != 3 {
		t.Errorf("Amplification = %v, expected 3", cfg.Scoring.Amplification)
	}
	if cfg.Scoring.Timeout != 2*time.Second {
		t.Errorf("Timeout = %v, expected 2s", cfg.Scoring.Timeout)
	}
	// Untouched values keep defaults
	if cfg.Canvas.UndoDepth != 20 {
		t.Errorf("UndoDepth = %d, expected default 20", cfg.Canvas.UndoDepth)
	}
	if cfg.Session.TargetCount(DifficultyMedium) != 12 {
		t.Errorf("TargetCount(Medium) = %d, expected default 12", cfg.Session.TargetCount(DifficultyMedium))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("session: [unclosed"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero grid", func(c *Config) { c.Scoring.GridSize = 0 }},
		{"zero undo depth", func(c *Config) { c.Canvas.UndoDepth = 0 }},
		{"negative target", func(c *Config) { c.Session.TargetCounts[DifficultyEasy] = -1 }},
		{"threshold above 100", func(c *Config) { c.Session.AcceptanceThreshold = 120 }},
		{"zero amplification", func(c *Config) { c.Scoring.Amplification = 0 }},
		{"zero classic limit", func(c *Config) { c.Session.ClassicTimeLimit = 0 }},
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, expected nil", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should reject config")
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Chdir(t.TempDir()) // keep any developer .env out of the test
	t.Setenv(EnvWordsURL, "https://example.test")
	t.Setenv(EnvWordsKey, "secret")
	t.Setenv(EnvReferenceProvider, "shapes")

	cfg := DefaultConfig()
	ApplyEnv(&cfg)

	if cfg.Words.RemoteURL != "https://example.test" {
		t.Errorf("RemoteURL = %q", cfg.Words.RemoteURL)
	}
	if cfg.Words.APIKey != "secret" {
		t.Errorf("APIKey = %q", cfg.Words.APIKey)
	}
	if cfg.Reference.Provider != "shapes" {
		t.Errorf("Provider = %q", cfg.Reference.Provider)
	}
}

func TestParseDifficultyAndMode(t *testing.T) {
	tests := []struct {
		in       string
		expected Difficulty
		ok       bool
	}{
		{"easy", DifficultyEasy, true},
		{"Medium", DifficultyMedium, true},
		{"HARD", DifficultyHard, true},
		{"h", DifficultyHard, true},
		{"brutal", DifficultyEasy, false},
	}
	for _, tc := range tests {
		got, ok := ParseDifficulty(tc.in)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParseDifficulty(%q) = (%s, %v), expected (%s, %v)", tc.in, got, ok, tc.expected, tc.ok)
		}
	}

	if m, ok := ParseMode("classic"); !ok || m != ModeClassicReveal {
		t.Errorf("ParseMode(classic) = (%s, %v)", m, ok)
	}
	if m, ok := ParseMode(""); !ok || m != ModeClueRound {
		t.Errorf("ParseMode(\"\") = (%s, %v)", m, ok)
	}
	if _, ok := ParseMode("battle"); ok {
		t.Error("ParseMode(battle) should fail")
	}
}
