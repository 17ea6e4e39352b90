package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/atomicstack/burrow/internal/app"
	"github.com/atomicstack/burrow/internal/config"
	"github.com/atomicstack/burrow/internal/format/table"
	"github.com/atomicstack/burrow/internal/logging"
	"github.com/atomicstack/burrow/internal/logging/events"
	"github.com/atomicstack/burrow/internal/settings"
	"github.com/atomicstack/burrow/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

// configError marks failures that should exit with the usage status.
type configError struct {
	err error
}

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }

func main() {
	cmd := newRootCmd(os.Environ())
	if err := cmd.Execute(); err != nil {
		var cfgErr configError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
			os.Exit(2)
		}
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(environ []string) *cobra.Command {
	root := &cobra.Command{
		Use:           "burrow [flags] [url]",
		Short:         "A terminal gopher client",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Validate(cfg); err != nil {
				return configError{err}
			}
			logging.Configure(cfg.Logging.FilePath)
			defer logging.Close()
			logging.SetTraceEnabled(cfg.Logging.Trace)
			for _, warning := range cfg.Warnings {
				logging.Warn("%s", warning)
			}
			if err := writeDefaultSettings(cfg); err != nil {
				logging.Warn("%v", err)
			}
			traceStartup(cfg)
			return app.Run(cfg.App)
		},
	}
	root.PersistentFlags().AddFlagSet(config.NewFlagSet(environ))
	root.AddCommand(newBookmarksCmd(), newVersionCmd())
	return root
}

func newBookmarksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmarks",
		Short: "Print the saved bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			list, err := store.NewBookmarks(app.BookmarksPath(cfg.App.DataDir)).List()
			if err != nil {
				return err
			}
			return printBookmarks(cmd.OutOrStdout(), list)
		},
	}
	cmd.AddCommand(newBookmarksRemoveCmd())
	return cmd
}

func newBookmarksRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a bookmark by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			removed, err := store.NewBookmarks(app.BookmarksPath(cfg.App.DataDir)).Remove(args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("no bookmark with id %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed bookmark %s\n", args[0])
			return nil
		},
	}
}

// writeDefaultSettings creates the settings file on first run so users have
// something to edit.
func writeDefaultSettings(cfg config.Config) error {
	if cfg.SettingsPath == "" {
		return nil
	}
	if _, err := os.Stat(cfg.SettingsPath); !errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return settings.Save(cfg.SettingsPath, cfg.App.Settings)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the burrow version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "burrow %s\n", version)
		},
	}
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromFlags(cmd.Flags(), os.Args[1:])
	if err != nil {
		return config.Config{}, configError{err}
	}
	return cfg, nil
}

func printBookmarks(w io.Writer, list []store.Bookmark) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No bookmarks yet.")
		return err
	}
	rows := make([][]string, 0, len(list))
	for _, bm := range list {
		rows = append(rows, []string{bm.Title, bm.URL, strings.Join(bm.Tags, ", ")})
	}
	lines := table.FormatWithHeader([]string{"Title", "Address", "Tags"}, rows, nil)
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
