// Package config provides configuration management for the flt CLI.
// Settings are layered: defaults, the YAML config file, a .env file, and
// FLT_* environment variables, each overriding the previous one.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable the CLI reads.
const EnvPrefix = "FLT_"

// Settings holds everything the CLI can be configured with.
type Settings struct {
	LogLevel     string `yaml:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat    string `yaml:"log_format" validate:"oneof=console json"`
	OutputFormat string `yaml:"format" validate:"oneof=text json csv"`
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() Settings {
	return Settings{
		LogLevel:     "warn",
		LogFormat:    "console",
		OutputFormat: "text",
	}
}

// DefaultConfigDir returns the default configuration directory.
// Uses ~/.config/flt on Unix-like systems.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "flt"), nil
}

// Loader reads Settings from its sources. Empty paths are skipped.
type Loader struct {
	ConfigPath string
	DotEnvPath string
	Getenv     func(string) string
}

// NewLoader creates a Loader using the default config directory, a .env
// file in the working directory and the process environment.
func NewLoader() (*Loader, error) {
	configDir, err := DefaultConfigDir()
	if err != nil {
		return nil, err
	}
	return &Loader{
		ConfigPath: filepath.Join(configDir, "config.yaml"),
		DotEnvPath: ".env",
		Getenv:     os.Getenv,
	}, nil
}

// Load builds Settings from every source. Missing files are not errors.
// Values are not validated here so command-line flags can still replace
// them; call Validate once all overrides are applied.
func (l *Loader) Load() (Settings, error) {
	s := Defaults()

	if err := l.loadFile(&s); err != nil {
		return Settings{}, fmt.Errorf("loading config file: %w", err)
	}

	dotEnv, err := l.loadDotEnv()
	if err != nil {
		return Settings{}, fmt.Errorf("loading env file: %w", err)
	}

	lookup := func(key string) string {
		key = EnvPrefix + key
		if l.Getenv != nil {
			if v := strings.TrimSpace(l.Getenv(key)); v != "" {
				return v
			}
		}
		return strings.TrimSpace(dotEnv[key])
	}
	s.apply(lookup("LOG_LEVEL"), lookup("LOG_FORMAT"), lookup("FORMAT"))
	return s, nil
}

// loadFile reads the YAML config file over s.
func (l *Loader) loadFile(s *Settings) error {
	if l.ConfigPath == "" {
		return nil
	}
	data, err := os.ReadFile(l.ConfigPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parsing %s: %w", l.ConfigPath, err)
	}
	s.apply(s.LogLevel, s.LogFormat, s.OutputFormat)
	return nil
}

// loadDotEnv reads the .env file without touching the process environment.
func (l *Loader) loadDotEnv() (map[string]string, error) {
	if l.DotEnvPath == "" {
		return nil, nil
	}
	env, err := godotenv.Read(l.DotEnvPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return env, err
}

// Override replaces the settings whose arguments are non-empty.
// Used for command-line flags, which take precedence over every file.
func (s Settings) Override(logLevel, logFormat, outputFormat string) Settings {
	s.apply(logLevel, logFormat, outputFormat)
	return s
}

func (s *Settings) apply(logLevel, logFormat, outputFormat string) {
	if v := normalize(logLevel); v != "" {
		s.LogLevel = v
	}
	if v := normalize(logFormat); v != "" {
		s.LogFormat = v
	}
	if v := normalize(outputFormat); v != "" {
		s.OutputFormat = v
	}
}

func normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report yaml key names rather than Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate reports the first setting holding an unsupported value.
func (s Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid %s %q: must be one of %s", fe.Field(), fe.Value(), fe.Param())
	}
	return fmt.Errorf("validating settings: %w", err)
}
