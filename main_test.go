package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/burrow/internal/app"
	"github.com/atomicstack/burrow/internal/config"
	"github.com/atomicstack/burrow/internal/settings"
	"github.com/atomicstack/burrow/internal/store"
	"github.com/atomicstack/burrow/internal/testutil"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			StartURL:   "gopher://example.org/1/",
			Width:      80,
			Height:     24,
			ShowFooter: true,
			DataDir:    "/tmp/burrow",
			Settings:   settings.Defaults(),
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"home":   "gopher://example.org/1/",
			"width":  "80",
			"height": "24",
			"footer": "true",
		},
		Args: []string{"gopher://example.org/1/"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["home"] != "gopher://example.org/1/" {
		t.Fatalf("expected home flag, got %v", flagsValue["home"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd(nil)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if got := out.String(); got != "burrow "+version+"\n" {
		t.Fatalf("unexpected version output %q", got)
	}
}

func TestBookmarksCommandPrintsTable(t *testing.T) {
	dir := t.TempDir()
	bookmarks := store.NewBookmarks(app.BookmarksPath(dir))
	if _, err := bookmarks.Add("Floodgap", "gopher://gopher.floodgap.com/1/", "home, search"); err != nil {
		t.Fatalf("add bookmark: %v", err)
	}
	if _, err := bookmarks.Add("Gopherpedia", "gopher://gopherpedia.com/1/", ""); err != nil {
		t.Fatalf("add bookmark: %v", err)
	}

	cmd := newRootCmd(nil)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"bookmarks", "--config", filepath.Join(dir, "config.toml")})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("bookmarks failed: %v", err)
	}
	testutil.AssertGolden(t, "bookmarks.golden", out.String())
}

func TestBookmarksCommandWithoutBookmarks(t *testing.T) {
	dir := t.TempDir()
	cmd := newRootCmd(nil)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"bookmarks", "--config", filepath.Join(dir, "config.toml")})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("bookmarks failed: %v", err)
	}
	if out.String() != "No bookmarks yet.\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestBookmarksRemoveCommand(t *testing.T) {
	dir := t.TempDir()
	bookmarks := store.NewBookmarks(app.BookmarksPath(dir))
	bm, err := bookmarks.Add("Floodgap", "gopher://gopher.floodgap.com/1/", "")
	if err != nil {
		t.Fatalf("add bookmark: %v", err)
	}

	cmd := newRootCmd(nil)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"bookmarks", "remove", bm.ID, "--config", filepath.Join(dir, "config.toml")})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if out.String() != "Removed bookmark "+bm.ID+"\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
	list, err := bookmarks.List()
	if err != nil || len(list) != 0 {
		t.Fatalf("expected no bookmarks left, got %v (%v)", list, err)
	}

	cmd = newRootCmd(nil)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"bookmarks", "remove", bm.ID, "--config", filepath.Join(dir, "config.toml")})
	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "no bookmark") {
		t.Fatalf("expected unknown id error, got %v", err)
	}
}

func TestWriteDefaultSettingsOnlyOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "burrow", "config.toml")
	cfg := config.Config{SettingsPath: path, App: app.Config{Settings: settings.Defaults()}}
	if err := writeDefaultSettings(cfg); err != nil {
		t.Fatalf("write defaults: %v", err)
	}
	loaded, warn, err := settings.Load(path)
	if err != nil || warn != nil {
		t.Fatalf("reload failed: %v %v", err, warn)
	}
	if loaded != settings.Defaults() {
		t.Fatalf("expected defaults on disk, got %#v", loaded)
	}

	if err := os.WriteFile(path, []byte("debug = true\n"), 0o644); err != nil {
		t.Fatalf("edit settings: %v", err)
	}
	if err := writeDefaultSettings(cfg); err != nil {
		t.Fatalf("second run: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "debug = true\n" {
		t.Fatalf("expected user edits kept, got %q (%v)", data, err)
	}
}

func TestNegativeWidthIsConfigError(t *testing.T) {
	dir := t.TempDir()
	cmd := newRootCmd(nil)
	cmd.SetArgs([]string{"--width", "-1", "--config", filepath.Join(dir, "config.toml")})
	err := cmd.Execute()
	var cfgErr configError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected configError, got %v", err)
	}
	if !strings.Contains(err.Error(), "width") {
		t.Fatalf("unexpected error %v", err)
	}
}
