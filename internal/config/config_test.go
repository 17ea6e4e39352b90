package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/burrow/internal/settings"
)

func TestLoadArgsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := LoadArgs([]string{"--config", path}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero dimensions, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer on by default")
	}
	if cfg.App.Settings != settings.Defaults() {
		t.Fatalf("expected default settings, got %#v", cfg.App.Settings)
	}
	if cfg.App.DataDir != filepath.Dir(path) {
		t.Fatalf("expected data dir next to settings, got %q", cfg.App.DataDir)
	}
	if cfg.Logging.FilePath == "" {
		t.Fatalf("expected a default log path")
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadArgsEnvironmentFallbacks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	env := []string{
		envConfig + "=" + path,
		envWidth + "=100",
		envHeight + "=30",
		envFooter + "=false",
		envTrace + "=true",
		envLogFile + "=/tmp/burrow-test.log",
		envHome + "=gopher://env.example/1/",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SettingsPath != path {
		t.Fatalf("expected settings path from env, got %q", cfg.SettingsPath)
	}
	if cfg.App.Width != 100 || cfg.App.Height != 30 {
		t.Fatalf("expected 100x30, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled")
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/burrow-test.log" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
	if cfg.App.StartURL != "gopher://env.example/1/" {
		t.Fatalf("expected start URL from env, got %q", cfg.App.StartURL)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := LoadArgs([]string{"--config", path, "--width", "60"}, []string{envWidth + "=100"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 60 {
		t.Fatalf("expected flag to win, got %d", cfg.App.Width)
	}
	if cfg.Flags["width"] != "60" {
		t.Fatalf("expected flags map to record width, got %q", cfg.Flags["width"])
	}
}

func TestPositionalAddressOverridesHome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := LoadArgs([]string{"--config", path, "--home", "gopher://a.example/", "gopher://b.example/"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.StartURL != "gopher://b.example/" {
		t.Fatalf("expected positional address, got %q", cfg.App.StartURL)
	}
}

func TestLoadArgsRejectsBadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cases := [][]string{
		{"--config", path, "--width", "-5"},
		{"--config", path, "--height", "-1"},
		{"--config", path, "a", "b"},
		{"--no-such-flag"},
	}
	for _, args := range cases {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestMalformedSettingsBecomeWarning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("homepage = [unterminated"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	cfg, err := LoadArgs([]string{"--config", path}, nil)
	if err != nil {
		t.Fatalf("malformed settings must not fail: %v", err)
	}
	if len(cfg.Warnings) != 1 || !strings.Contains(cfg.Warnings[0], "parse settings") {
		t.Fatalf("expected parse warning, got %v", cfg.Warnings)
	}
	if cfg.App.Settings != settings.Defaults() {
		t.Fatalf("expected defaults after a parse failure")
	}
}

func TestDebugSettingEnablesTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("debug = true\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	cfg, err := LoadArgs([]string{"--config", path}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected debug setting to enable tracing")
	}
}
