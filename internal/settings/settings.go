// Package settings persists user preferences in a TOML file under the
// per-user config directory.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	appDirName      = "burrow"
	fileName        = "config.toml"
	generatedHeader = "# Automatically generated by burrow.\n"

	DefaultDownloadPath = "Downloads"
	DefaultHomepage     = "gopher://gopher.floodgap.com:70/1/"
)

// Settings holds the persisted preferences.
type Settings struct {
	DownloadPath string `toml:"download_path"`
	Homepage     string `toml:"homepage"`
	Debug        bool   `toml:"debug"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		DownloadPath: DefaultDownloadPath,
		Homepage:     DefaultHomepage,
	}
}

// Dir returns the burrow config directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// DefaultPath returns the settings file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads settings from path. A missing file yields the defaults and no
// error. A malformed file also yields the defaults, with the parse problem
// returned as warn so the caller can log it; err is reserved for failures
// reading an existing file.
func Load(path string) (s Settings, warn error, err error) {
	s = Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil, nil
		}
		return s, nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	loaded := Defaults()
	if _, perr := toml.Decode(string(data), &loaded); perr != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, perr), nil
	}
	return loaded.withDefaults(), nil, nil
}

// Save writes s to path, creating parent directories as needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}

// DownloadDir resolves DownloadPath against home when it is relative.
func (s Settings) DownloadDir(home string) string {
	p := s.DownloadPath
	if p == "" {
		p = DefaultDownloadPath
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(home, p)
}

func (s Settings) withDefaults() Settings {
	if s.DownloadPath == "" {
		s.DownloadPath = DefaultDownloadPath
	}
	if s.Homepage == "" {
		s.Homepage = DefaultHomepage
	}
	return s
}
