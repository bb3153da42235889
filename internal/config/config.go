package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/unibazaar/unibazaar-tui/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDataDir    = "UNIBAZAAR_DATA_DIR"
	envWidth      = "UNIBAZAAR_WIDTH"
	envHeight     = "UNIBAZAAR_HEIGHT"
	envShowFooter = "UNIBAZAAR_FOOTER"
	envVerbose    = "UNIBAZAAR_VERBOSE"
	envStrict     = "UNIBAZAAR_STRICT"
	envTrace      = "UNIBAZAAR_TRACE"
	envLogFile    = "UNIBAZAAR_LOG_FILE"
	envSection    = "UNIBAZAAR_SECTION"
)

// Load parses configuration from CLI arguments and environment
// variables. A .env file in the working directory is folded into the
// environment first; a missing file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("unibazaar-tui", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	dataDir := fs.String("data-dir", envOrDefault(env, envDataDir, ""), "directory for the listing record and imported images (defaults to the user config dir)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	strict := fs.Bool("strict", envOrBool(env, envStrict, false), "panic on invariant violations instead of logging them")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	section := fs.String("section", envOrDefault(env, envSection, ""), "top-level section to open at startup (home, watchlist, profile, messenger, notification)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			DataDir:      *dataDir,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Verbose:      *verbose,
			Strict:       *strict,
			StartSection: *section,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"dataDir": *dataDir,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"strict":  strconv.FormatBool(*strict),
			"logFile": *logFile,
			"section": *section,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present and
// resolves the data directory default.
func Validate(cfg *Config) error {
	if cfg.App.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("resolve user config dir: %w", err)
		}
		cfg.App.DataDir = filepath.Join(base, "unibazaar")
	}
	switch cfg.App.StartSection {
	case "", "home", "watchlist", "profile", "messenger", "notification":
	default:
		return fmt.Errorf("unknown start section %q", cfg.App.StartSection)
	}
	return nil
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
