package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/verse-mate/versemate-tui/internal/app"
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
	envDBPath      = "VERSEMATE_DB"
	envTranslation = "VERSEMATE_TRANSLATION"
	envLanguage    = "VERSEMATE_LANGUAGE"
	envWidth       = "VERSEMATE_WIDTH"
	envHeight      = "VERSEMATE_HEIGHT"
	envShowFooter  = "VERSEMATE_FOOTER"
	envVerbose     = "VERSEMATE_VERBOSE"
	envTrace       = "VERSEMATE_TRACE"
	envLogFile     = "VERSEMATE_LOG_FILE"
)

const (
	defaultTranslation = "NASB1995"
	defaultLanguage    = "en"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("versemate-tui", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	db := fs.String("db", envOrDefault(env, envDBPath, "versemate-seed.db"), "path to the offline content database")
	translation := fs.String("translation", envOrDefault(env, envTranslation, defaultTranslation), "Bible translation version key")
	language := fs.String("language", envOrDefault(env, envLanguage, defaultLanguage), "topic language code")
	book := fs.Int("book", 0, "book id to open (1-66, 0 restores the last position)")
	chapter := fs.Int("chapter", 0, "chapter number to open (0 restores the last position)")
	topic := fs.String("topic", "", "topic id to open on the topic surface")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show confirmations for position saves")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *book < 0 || *book > 66 {
		return Config{}, fmt.Errorf("book must be between 1 and 66 (got %d)", *book)
	}
	if *chapter < 0 {
		return Config{}, fmt.Errorf("chapter must be >= 1 (got %d)", *chapter)
	}
	if (*book == 0) != (*chapter == 0) {
		return Config{}, fmt.Errorf("book and chapter must be given together")
	}

	cfg := Config{
		App: app.Config{
			DBPath:      *db,
			Translation: *translation,
			Language:    *language,
			Book:        *book,
			Chapter:     *chapter,
			Topic:       *topic,
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Verbose:     *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"db":          *db,
			"translation": *translation,
			"language":    *language,
			"book":        strconv.Itoa(*book),
			"chapter":     strconv.Itoa(*chapter),
			"topic":       *topic,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"trace":       strconv.FormatBool(*trace),
			"verbose":     strconv.FormatBool(*verbose),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
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

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.DBPath) == "" {
		return fmt.Errorf("database path must not be empty")
	}
	return nil
}
