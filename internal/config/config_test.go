package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// useConfigPath points ConfigPath at path for the duration of the test
func useConfigPath(t *testing.T, path string) {
	t.Helper()
	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return path
	}
	t.Cleanup(func() {
		ConfigPath = originalConfigPath
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FontName != "Calibri" {
		t.Errorf("Expected FontName Calibri, got %q", cfg.FontName)
	}
	if cfg.FontSize != 11 {
		t.Errorf("Expected FontSize 11, got %v", cfg.FontSize)
	}
	if cfg.Overwrite != OverwritePrompt {
		t.Errorf("Expected Overwrite prompt, got %q", cfg.Overwrite)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig() is invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			modify:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "empty font_name",
			modify:  func(c *Config) { c.FontName = "" },
			wantErr: true,
		},
		{
			name:    "zero font_size",
			modify:  func(c *Config) { c.FontSize = 0 },
			wantErr: true,
		},
		{
			name:    "rename policy",
			modify:  func(c *Config) { c.Overwrite = OverwriteRename },
			wantErr: false,
		},
		{
			name:    "unknown policy",
			modify:  func(c *Config) { c.Overwrite = "clobber" },
			wantErr: true,
		},
		{
			name:    "unknown log_level",
			modify:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	testConfigPath := filepath.Join(t.TempDir(), "docbridge", "config.yaml")
	useConfigPath(t, testConfigPath)

	testCfg := &Config{
		FontName:  "Georgia",
		FontSize:  12.5,
		Overwrite: OverwriteAlways,
		LogLevel:  "debug",
		LogFile:   "/tmp/docbridge-test.log",
	}

	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	data, err := os.ReadFile(testConfigPath)
	if err != nil {
		t.Fatal("Config file was not created")
	}
	if !strings.Contains(string(data), "font_name: Georgia") {
		t.Errorf("Saved config is not YAML with snake_case keys:\n%s", data)
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if *loadedCfg != *testCfg {
		t.Errorf("Loaded config = %+v, want %+v", loadedCfg, testCfg)
	}
}

func TestLoadPartialConfig(t *testing.T) {
	testConfigPath := filepath.Join(t.TempDir(), "config.yaml")
	useConfigPath(t, testConfigPath)

	if err := os.WriteFile(testConfigPath, []byte("overwrite: rename\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Overwrite != OverwriteRename {
		t.Errorf("Overwrite = %q, want rename", cfg.Overwrite)
	}
	if cfg.FontName != "Calibri" || cfg.FontSize != 11 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	testConfigPath := filepath.Join(t.TempDir(), "config.yaml")
	useConfigPath(t, testConfigPath)

	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "font_name: [unclosed\n"},
		{"bad policy", "overwrite: sometimes\n"},
		{"bad size", "font_size: -3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := os.WriteFile(testConfigPath, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(); err == nil {
				t.Error("Load() succeeded, want error")
			}
		})
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	useConfigPath(t, filepath.Join(t.TempDir(), "nonexistent.yaml"))

	// Load should return default config when file doesn't exist
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestExpandPath(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tilde expansion", "~/test.log", filepath.Join(homeDir, "test.log")},
		{"tilde only", "~", homeDir},
		{"absolute path", "/tmp/test", "/tmp/test"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := expandPath(tt.input)
			if err != nil {
				t.Fatalf("expandPath() error = %v", err)
			}
			if result != tt.want {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.want)
			}
		})
	}
}

func TestLogFileExpanded(t *testing.T) {
	testConfigPath := filepath.Join(t.TempDir(), "config.yaml")
	useConfigPath(t, testConfigPath)

	cfg := DefaultConfig()
	cfg.LogFile = "~/docbridge.log"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if loadedCfg.LogFile[0] == '~' {
		t.Error("LogFile was not expanded")
	}
}
