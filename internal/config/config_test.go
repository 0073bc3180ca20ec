package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"EXSPLIT_LOG_LEVEL", "EXSPLIT_LOG_FORMAT", "EXSPLIT_OUTPUT_DIR"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected level info, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Expected format console, got %q", cfg.Logging.Format)
	}
	if cfg.Output.Dir != "" {
		t.Errorf("Expected empty output dir, got %q", cfg.Output.Dir)
	}
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("EXSPLIT_LOG_LEVEL", " WARNING ")
	t.Setenv("EXSPLIT_LOG_FORMAT", "JSON")
	t.Setenv("EXSPLIT_OUTPUT_DIR", "out")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected level warn, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected format json, got %q", cfg.Logging.Format)
	}
	if cfg.Output.Dir != "out" {
		t.Errorf("Expected output dir out, got %q", cfg.Output.Dir)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("EXSPLIT_LOG_FORMAT", "json")

	envFile := filepath.Join(t.TempDir(), "split.env")
	content := "EXSPLIT_LOG_LEVEL=debug\nEXSPLIT_LOG_FORMAT=console\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("EXSPLIT_LOG_LEVEL") })

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected level from env file, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected environment to win over env file, got %q", cfg.Logging.Format)
	}
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("Expected an error for a missing env file")
	}
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("EXSPLIT_LOG_LEVEL", "verbose")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !strings.Contains(err.Error(), "EXSPLIT_LOG_LEVEL") {
		t.Errorf("Expected error to name EXSPLIT_LOG_LEVEL, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{Logging: LoggingConfig{Level: "error", Format: "json"}}, ""},
		{"bad format", Config{Logging: LoggingConfig{Level: "info", Format: "xml"}}, "EXSPLIT_LOG_FORMAT"},
		{"bad level", Config{Logging: LoggingConfig{Level: "trace", Format: "console"}}, "EXSPLIT_LOG_LEVEL"},
		{"long dir", Config{
			Logging: LoggingConfig{Level: "info", Format: "console"},
			Output:  OutputConfig{Dir: strings.Repeat("d", 5000)},
		}, "EXSPLIT_OUTPUT_DIR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error naming %s, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestEnvName(t *testing.T) {
	tests := map[string]string{
		"Config.Logging.Level":  "EXSPLIT_LOG_LEVEL",
		"Config.Logging.Format": "EXSPLIT_LOG_FORMAT",
		"Config.Output.Dir":     "EXSPLIT_OUTPUT_DIR",
		"Config.Output.Missing": "Config.Output.Missing",
	}
	for in, want := range tests {
		if got := envName(in); got != want {
			t.Errorf("envName(%q) = %q, expected %q", in, got, want)
		}
	}
}
