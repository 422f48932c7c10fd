// Package config holds runtime configuration: environment parsing with .env
// support, struct-tag validation, and the defaults shared by every command.
// CLI flags are bound on top of the loaded values, so the precedence is
// flags > environment > .env > defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/backmassage/renamer/internal/naming"
)

// Config holds all runtime settings for the renamer CLI.
type Config struct {
	// Batch inputs.
	Project string `env:"RENAMER_PROJECT" validate:"omitempty,project_number"`
	Mode    string `env:"RENAMER_MODE" envDefault:"normal" validate:"oneof=normal position pa_mat"`

	// Item attribute defaults, applied to every discovered file unless an
	// assignments file overrides them.
	Tags     []string `env:"RENAMER_TAGS" envSeparator:","`
	Suffix   string   `env:"RENAMER_SUFFIX"`
	Position string   `env:"RENAMER_POSITION"`
	Date     string   `env:"RENAMER_DATE" validate:"omitempty,datetime=2006-01-02"`

	// Collaborator files.
	TagsFile        string `env:"RENAMER_TAGS_FILE"`
	AssignmentsFile string `env:"RENAMER_ASSIGNMENTS"`

	// Discovery.
	Recursive  bool     `env:"RENAMER_RECURSIVE" envDefault:"false"`
	Extensions []string `env:"RENAMER_EXTENSIONS" envSeparator:"," envDefault:".jpg,.jpeg,.png,.gif,.bmp,.heic,.mp4,.avi,.mov,.mkv"`

	// Behavior.
	DryRun          bool `env:"RENAMER_DRY_RUN" envDefault:"false"`
	RevertOnFailure bool `env:"RENAMER_REVERT_ON_FAILURE" envDefault:"false"`

	// Logging.
	LogLevel  string `env:"RENAMER_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFormat string `env:"RENAMER_LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
}

// Load reads configuration from the environment (and a .env file when
// present) and validates it. Flag overrides are applied by the CLI after
// Load; call Validate again once they are in.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cfg with struct tags plus the project number rule.
func Validate(cfg *Config) error {
	v := validator.New()
	if err := v.RegisterValidation("project_number", validateProjectNumber); err != nil {
		return fmt.Errorf("register project_number validation: %w", err)
	}
	if err := v.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// NamingMode returns the typed mode. Validate has already constrained the
// string, so an error here is a programming error.
func (c *Config) NamingMode() (naming.Mode, error) {
	return naming.ParseMode(c.Mode)
}

// AcceptedExtensions returns the extension filter as a lookup set, with
// entries normalized to lower case and a leading dot.
func (c *Config) AcceptedExtensions() map[string]bool {
	set := make(map[string]bool, len(c.Extensions))
	for _, e := range c.Extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = true
	}
	return set
}

func validateProjectNumber(fl validator.FieldLevel) bool {
	return naming.ValidProject(fl.Field().String())
}

// formatValidationError flattens validator's error list into one readable
// message naming the offending fields.
func formatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("configuration validation failed: %s", strings.Join(fields, ", "))
}
