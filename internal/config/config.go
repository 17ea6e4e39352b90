package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/burrow/internal/app"
	"github.com/atomicstack/burrow/internal/settings"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App          app.Config
	Logging      Logging
	SettingsPath string
	// Warnings holds non-fatal problems found while loading, such as a
	// malformed settings file. They are logged once logging is configured.
	Warnings []string
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envHome    = "BURROW_HOME"
	envConfig  = "BURROW_CONFIG"
	envWidth   = "BURROW_WIDTH"
	envHeight  = "BURROW_HEIGHT"
	envFooter  = "BURROW_FOOTER"
	envTrace   = "BURROW_TRACE"
	envLogFile = "BURROW_LOG_FILE"
)

// NewFlagSet declares the command line flags with environment fallbacks.
func NewFlagSet(environ []string) *pflag.FlagSet {
	env := parseEnv(environ)
	fs := pflag.NewFlagSet("burrow", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.String("home", envOrDefault(env, envHome, ""), "address opened at startup (overrides the homepage setting)")
	fs.String("config", envOrDefault(env, envConfig, ""), "path to the settings file")
	fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	fs.Bool("footer", envOrBool(env, envFooter, true), "show the key hint row")
	fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	return fs
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := NewFlagSet(environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return FromFlags(fs, args)
}

// FromFlags builds the configuration from an already parsed flag set. A
// single positional argument overrides the start address.
func FromFlags(fs *pflag.FlagSet, args []string) (Config, error) {
	home, _ := fs.GetString("home")
	settingsPath, _ := fs.GetString("config")
	width, _ := fs.GetInt("width")
	height, _ := fs.GetInt("height")
	footer, _ := fs.GetBool("footer")
	trace, _ := fs.GetBool("trace")
	logFile, _ := fs.GetString("log-file")

	if width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", width)
	}
	if height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", height)
	}
	positional := fs.Args()
	if len(positional) > 1 {
		return Config{}, fmt.Errorf("expected at most one address, got %d", len(positional))
	}
	if len(positional) == 1 {
		home = positional[0]
	}

	if settingsPath == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			return Config{}, err
		}
		settingsPath = p
	}
	loaded, warn, err := settings.Load(settingsPath)
	if err != nil {
		return Config{}, err
	}
	var warnings []string
	if warn != nil {
		warnings = append(warnings, warn.Error())
	}
	if logFile == "" {
		logFile = defaultLogPath()
	}

	cfg := Config{
		App: app.Config{
			StartURL:   home,
			Width:      width,
			Height:     height,
			ShowFooter: footer,
			DataDir:    filepath.Dir(settingsPath),
			Settings:   loaded,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace || loaded.Debug,
		},
		SettingsPath: settingsPath,
		Warnings:     warnings,
		Flags: map[string]string{
			"home":    home,
			"config":  settingsPath,
			"width":   strconv.Itoa(width),
			"height":  strconv.Itoa(height),
			"footer":  strconv.FormatBool(footer),
			"trace":   strconv.FormatBool(trace),
			"logFile": logFile,
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "burrow.log"
	}
	return filepath.Join(dir, "burrow", "burrow.log")
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate checks values that can only be judged after loading.
func Validate(cfg Config) error {
	if cfg.App.StartURL == "" && cfg.App.Settings.Homepage == "" {
		return fmt.Errorf("no start address: set --home or the homepage setting")
	}
	return nil
}
