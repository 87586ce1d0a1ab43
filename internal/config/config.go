package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// ShiftTemplate defines a standing shift copied into every new roster.
// The optional rrule narrows which dates the shift is expected to run on.
type ShiftTemplate struct {
	Name      string `yaml:"name" validate:"required"`
	StartTime string `yaml:"startTime" validate:"required"`
	EndTime   string `yaml:"endTime" validate:"required"`
	RRule     string `yaml:"rrule,omitempty"`
}

// Config represents the application configuration
type Config struct {
	DepartmentName  string          `yaml:"departmentName" validate:"required"`
	DatabaseURL     string          `yaml:"databaseURL,omitempty"`
	AdminPassword   string          `yaml:"adminPassword,omitempty"`
	DefaultPosition string          `yaml:"defaultPosition,omitempty"`
	ShiftTemplates  []ShiftTemplate `yaml:"shiftTemplates,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from precinct_roster.yaml.
// It looks in the current directory first, then in the user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// databaseURL may come from the environment instead of the file
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, the shift template clock
// times, and the rrule syntax of any template recurrence.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("databaseURL is required (set it in the config file or via DATABASE_URL)")
	}

	for i, tmpl := range cfg.ShiftTemplates {
		if _, err := time.Parse("15:04", tmpl.StartTime); err != nil {
			return fmt.Errorf("invalid startTime in shiftTemplates[%d]: %w", i, err)
		}
		if _, err := time.Parse("15:04", tmpl.EndTime); err != nil {
			return fmt.Errorf("invalid endTime in shiftTemplates[%d]: %w", i, err)
		}
		if tmpl.RRule != "" {
			if _, err := rrule.StrToRRule(tmpl.RRule); err != nil {
				return fmt.Errorf("invalid rrule in shiftTemplates[%d]: %w", i, err)
			}
		}
	}

	return nil
}

// findConfigFile searches for precinct_roster.yaml in the current directory
// and the home directory
func findConfigFile() (string, error) {
	configFileName := "precinct_roster.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
