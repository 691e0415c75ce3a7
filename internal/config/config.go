package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/thesn0wdev/portfolio/internal/app"
	"github.com/thesn0wdev/portfolio/internal/motion"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Sources Sources
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// Sources records which optional files contributed settings.
type Sources struct {
	ConfigFile string
	EnvFile    string
}

// Settings is the layered set of values before they are split into Config.
// The TOML file decodes straight into it.
type Settings struct {
	Width         int    `toml:"width"`
	Height        int    `toml:"height"`
	Footer        bool   `toml:"footer"`
	ReducedMotion bool   `toml:"reduced_motion"`
	FPS           int    `toml:"fps"`
	Trace         bool   `toml:"trace"`
	LogFile       string `toml:"log_file"`
}

const (
	envWidth         = "PORTFOLIO_WIDTH"
	envHeight        = "PORTFOLIO_HEIGHT"
	envShowFooter    = "PORTFOLIO_FOOTER"
	envReducedMotion = "PORTFOLIO_REDUCED_MOTION"
	envFPS           = "PORTFOLIO_FPS"
	envTrace         = "PORTFOLIO_TRACE"
	envLogFile       = "PORTFOLIO_LOG_FILE"
	envConfigFile    = "PORTFOLIO_CONFIG"
	envEnvFile       = "PORTFOLIO_ENV_FILE"

	// host-wide accessibility hint honoured alongside the app-specific one
	envHostReduceMotion = "REDUCE_MOTION"

	defaultEnvFile = ".env"
	maxFPS         = 240
)

// Defaults returns the settings used when no layer overrides them.
func Defaults() Settings {
	return Settings{
		Footer: true,
		FPS:    motion.DefaultFPS,
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/portfolio/config.toml, falling
// back to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultConfigPath(env map[string]string) string {
	base := env["XDG_CONFIG_HOME"]
	if strings.TrimSpace(base) == "" {
		home := env["HOME"]
		if home == "" {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "portfolio", "config.toml")
}

// Options holds the flag values bound to a flag set.
type Options struct {
	fs *pflag.FlagSet

	width         int
	height        int
	footer        bool
	reducedMotion bool
	fps           int
	trace         bool
	logFile       string
	configFile    string
	envFile       string
}

// BindFlags registers the configuration flags on fs. Flag defaults are only
// used when the flag is explicitly set, so lower layers stay visible.
func BindFlags(fs *pflag.FlagSet) *Options {
	d := Defaults()
	o := &Options{fs: fs}
	fs.IntVar(&o.width, "width", d.Width, "desired viewport width in cells (0 uses terminal width)")
	fs.IntVar(&o.height, "height", d.Height, "desired viewport height in rows (0 uses terminal height)")
	fs.BoolVar(&o.footer, "footer", d.Footer, "show the footer line")
	fs.BoolVar(&o.reducedMotion, "reduced-motion", d.ReducedMotion, "disable the ambient background animation")
	fs.IntVar(&o.fps, "fps", d.FPS, "frame rate of the background animation")
	fs.BoolVar(&o.trace, "trace", d.Trace, "enable verbose JSON trace logging")
	fs.StringVar(&o.logFile, "log-file", d.LogFile, "path to the log file")
	fs.StringVar(&o.configFile, "config", "", "path to a TOML config file")
	fs.StringVar(&o.envFile, "env-file", "", "path to a .env file")
	return o
}

// Resolve layers defaults, the TOML file, the .env file, the process
// environment and explicitly set flags, in that order.
func (o *Options) Resolve(environ []string) (Config, error) {
	procEnv := parseEnv(environ)
	settings := Defaults()
	var sources Sources

	configPath, explicitConfig := o.pick("config", o.configFile, procEnv, envConfigFile, DefaultConfigPath(procEnv))
	if configPath != "" {
		loaded, err := loadFile(configPath, &settings)
		if err != nil && (explicitConfig || !errors.Is(err, fs.ErrNotExist)) {
			return Config{}, fmt.Errorf("config file %s: %w", configPath, err)
		}
		if loaded {
			sources.ConfigFile = configPath
		}
	}

	env := procEnv
	envPath, explicitEnv := o.pick("env-file", o.envFile, procEnv, envEnvFile, defaultEnvFile)
	if envPath != "" {
		dotenv, err := godotenv.Read(envPath)
		switch {
		case err == nil:
			sources.EnvFile = envPath
			env = merge(dotenv, procEnv)
		case explicitEnv || !errors.Is(err, fs.ErrNotExist):
			return Config{}, fmt.Errorf("env file %s: %w", envPath, err)
		}
	}

	settings.Width = envOrInt(env, envWidth, settings.Width)
	settings.Height = envOrInt(env, envHeight, settings.Height)
	settings.Footer = envOrBool(env, envShowFooter, settings.Footer)
	settings.FPS = envOrInt(env, envFPS, settings.FPS)
	settings.Trace = envOrBool(env, envTrace, settings.Trace)
	settings.LogFile = envOrDefault(env, envLogFile, settings.LogFile)

	reduced, reducedErr := reducedFromEnv(env, settings.ReducedMotion)

	if o.changed("width") {
		settings.Width = o.width
	}
	if o.changed("height") {
		settings.Height = o.height
	}
	if o.changed("footer") {
		settings.Footer = o.footer
	}
	if o.changed("fps") {
		settings.FPS = o.fps
	}
	if o.changed("trace") {
		settings.Trace = o.trace
	}
	if o.changed("log-file") {
		settings.LogFile = o.logFile
	}
	if o.changed("reduced-motion") {
		reduced, reducedErr = o.reducedMotion, nil
	}
	settings.ReducedMotion = reduced

	cfg := Config{
		App: app.Config{
			Width:      settings.Width,
			Height:     settings.Height,
			ShowFooter: settings.Footer,
			FPS:        settings.FPS,
			ReducedMotion: func() (bool, error) {
				return reduced, reducedErr
			},
		},
		Logging: Logging{
			FilePath: settings.LogFile,
			Trace:    settings.Trace,
		},
		Sources: sources,
		Flags: map[string]string{
			"width":         strconv.Itoa(settings.Width),
			"height":        strconv.Itoa(settings.Height),
			"footer":        strconv.FormatBool(settings.Footer),
			"reducedMotion": strconv.FormatBool(settings.ReducedMotion),
			"fps":           strconv.Itoa(settings.FPS),
			"trace":         strconv.FormatBool(settings.Trace),
			"logFile":       settings.LogFile,
			"config":        sources.ConfigFile,
			"envFile":       sources.EnvFile,
		},
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (o *Options) changed(name string) bool {
	return o.fs != nil && o.fs.Changed(name)
}

// pick resolves a path from an explicit flag, then the environment, then the
// fallback. The second result reports whether the user asked for it.
func (o *Options) pick(flag, flagValue string, env map[string]string, key, fallback string) (string, bool) {
	if o.changed(flag) {
		return flagValue, true
	}
	if v := strings.TrimSpace(env[key]); v != "" {
		return v, true
	}
	return fallback, false
}

func loadFile(path string, into *Settings) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	if _, err := toml.NewDecoder(f).Decode(into); err != nil {
		return false, err
	}
	return true, nil
}

// reducedFromEnv reads the reduced-motion preference from the app key, then
// the host-wide key. An unparseable value is skipped so a lower layer still
// decides. The error is only returned when nothing else expressed a
// preference, which callers treat as "no preference".
func reducedFromEnv(env map[string]string, fallback bool) (bool, error) {
	var bad error
	for _, key := range []string{envReducedMotion, envHostReduceMotion} {
		v, ok := env[key]
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			if bad == nil {
				bad = fmt.Errorf("%s: %w", key, err)
			}
			continue
		}
		return parsed, nil
	}
	if fallback {
		return true, nil
	}
	return false, bad
}

func merge(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
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
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
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
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects values the UI cannot honour.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.FPS < 1 || cfg.App.FPS > maxFPS {
		return fmt.Errorf("fps must be between 1 and %d (got %d)", maxFPS, cfg.App.FPS)
	}
	return nil
}
