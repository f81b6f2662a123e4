package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/treekit/errors"
)

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
file: input.txt
separator: ","
progress_every: 500
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	type TestConfig struct {
		File          string `yaml:"file" mapstructure:"file"`
		Separator     string `yaml:"separator" mapstructure:"separator"`
		ProgressEvery int    `yaml:"progress_every" mapstructure:"progress_every"`
	}

	var cfg TestConfig
	err := LoadConfig("treeparse", &cfg, WithConfigFile(configPath))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.File != "input.txt" {
		t.Errorf("expected file 'input.txt', got %q", cfg.File)
	}
	if cfg.Separator != "," {
		t.Errorf("expected separator ',', got %q", cfg.Separator)
	}
	if cfg.ProgressEvery != 500 {
		t.Errorf("expected progress_every 500, got %d", cfg.ProgressEvery)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	type TestConfig struct {
		File string `yaml:"file" mapstructure:"file"`
	}

	var cfg TestConfig
	// With no config file found, LoadConfig should still succeed (just empty config)
	err := LoadConfig("nonexistent-service", &cfg, WithConfigFile("/nonexistent/path.yml"))
	if err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("separator: \",\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	os.Setenv("TREEPARSE_SEPARATOR", "|")
	defer os.Unsetenv("TREEPARSE_SEPARATOR")

	type TestConfig struct {
		Separator string `yaml:"separator" mapstructure:"separator"`
	}

	var cfg TestConfig
	if err := LoadConfig("treeparse", &cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Separator != "|" {
		t.Errorf("expected env override '|', got %q", cfg.Separator)
	}
}

type mockFS struct {
	files  map[string]bool
	loaded []string
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error {
	m.loaded = append(m.loaded, path)
	return nil
}

func TestLoadConfigSearchPaths(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		".env.treeparse": true,
	}}

	type TestConfig struct {
		File string `yaml:"file" mapstructure:"file"`
	}
	var cfg TestConfig
	if err := LoadConfig("treeparse", &cfg, WithFileSystem(fs)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if len(fs.loaded) != 1 || fs.loaded[0] != ".env.treeparse" {
		t.Errorf("expected .env.treeparse to be loaded, got %v", fs.loaded)
	}
}

func TestWithFileSystemOption(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	if lc.FileSystem == nil {
		t.Error("expected FileSystem to be set")
	}
}

func TestWithConfigFileOption(t *testing.T) {
	var lc LoaderConfig
	WithConfigFile("/path/to/config.yml")(&lc)
	if lc.ConfigFile != "/path/to/config.yml" {
		t.Errorf("expected config file path, got %q", lc.ConfigFile)
	}
}

func TestWithEnvFileOption(t *testing.T) {
	var lc LoaderConfig
	WithEnvFile("/path/to/.env")(&lc)
	if lc.EnvFile != "/path/to/.env" {
		t.Errorf("expected env file path, got %q", lc.EnvFile)
	}
}

func TestValidate(t *testing.T) {
	type TestConfig struct {
		File          string `validate:"required"`
		ProgressEvery int    `validate:"min=0"`
	}

	tests := []struct {
		name    string
		cfg     TestConfig
		wantErr bool
		errMsg  string
	}{
		{"valid", TestConfig{File: "input.txt", ProgressEvery: 100}, false, ""},
		{"missing file", TestConfig{ProgressEvery: 100}, true, "File: is required"},
		{"negative progress", TestConfig{File: "input.txt", ProgressEvery: -1}, true, "ProgressEvery: must be at least 0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.cfg)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
					t.Errorf("expected INVALID_INPUT, got %v", err)
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
