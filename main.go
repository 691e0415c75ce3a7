package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/thesn0wdev/portfolio/internal/app"
	"github.com/thesn0wdev/portfolio/internal/config"
	"github.com/thesn0wdev/portfolio/internal/logging"
	"github.com/thesn0wdev/portfolio/internal/logging/events"
)

func main() {
	root := newRootCmd(os.Args[1:], os.Environ())
	if err := root.Execute(); err != nil {
		var cfgErr configError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", cfgErr.err)
			os.Exit(2)
		}
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configError marks failures that happen before the UI starts.
type configError struct {
	err error
}

func (e configError) Error() string { return e.err.Error() }

func (e configError) Unwrap() error { return e.err }

func newRootCmd(argv, environ []string) *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Terminal portfolio with a command palette",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts := config.BindFlags(root.PersistentFlags())
	root.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := opts.Resolve(environ)
		if err != nil {
			return configError{err: err}
		}
		cfg.Args = append([]string(nil), argv...)
		logging.Configure(cfg.Logging.FilePath)
		logging.SetTraceEnabled(cfg.Logging.Trace)

		traceStartup(cfg)

		err = app.Run(cfg.App)
		events.App.Stop(err)
		return err
	}
	root.AddCommand(commandsCmd(), projectsCmd())
	return root
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
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
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"sources": cfg.Sources,
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

// collectTTYDetails records which standard descriptors are terminals and how
// large they are. The first sized terminal becomes the detected viewport.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	details := ttyDetails{Probes: make([]ttyProbeResult, 0, len(probes))}
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.file.Fd())
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			width, height, err := term.GetSize(fd)
			if err != nil {
				entry.Error = err.Error()
			} else {
				entry.Width, entry.Height = width, height
				if details.Detected == nil {
					details.Detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			}
		}
		details.Probes = append(details.Probes, entry)
	}
	return details
}
