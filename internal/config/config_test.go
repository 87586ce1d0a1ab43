package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		DepartmentName:  "Testville PD",
		DatabaseURL:     "postgres://localhost/roster",
		AdminPassword:   "hunter2",
		DefaultPosition: "Patrol",
		ShiftTemplates: []ShiftTemplate{
			{
				Name:      "Day Shift",
				StartTime: "06:00",
				EndTime:   "14:00",
				RRule:     "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH",
			},
		},
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MinimalConfig(t *testing.T) {
	cfg := &Config{
		DepartmentName: "Testville PD",
		DatabaseURL:    "postgres://localhost/roster",
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	cfg := &Config{
		// Missing DepartmentName
		DatabaseURL: "postgres://localhost/roster",
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_MissingDatabaseURL(t *testing.T) {
	cfg := &Config{
		DepartmentName: "Testville PD",
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "databaseURL")
}

func TestValidate_InvalidRRule(t *testing.T) {
	cfg := &Config{
		DepartmentName: "Testville PD",
		DatabaseURL:    "postgres://localhost/roster",
		ShiftTemplates: []ShiftTemplate{
			{
				Name:      "Day Shift",
				StartTime: "06:00",
				EndTime:   "14:00",
				RRule:     "INVALID_RRULE_SYNTAX",
			},
		},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestValidate_InvalidClockTimes(t *testing.T) {
	cfg := &Config{
		DepartmentName: "Testville PD",
		DatabaseURL:    "postgres://localhost/roster",
		ShiftTemplates: []ShiftTemplate{
			{
				Name:      "Day Shift",
				StartTime: "6am",
				EndTime:   "14:00",
			},
		},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid startTime")

	cfg.ShiftTemplates[0].StartTime = "06:00"
	cfg.ShiftTemplates[0].EndTime = "26:00"

	err = Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid endTime")
}

func TestValidate_TemplateWithoutName(t *testing.T) {
	cfg := &Config{
		DepartmentName: "Testville PD",
		DatabaseURL:    "postgres://localhost/roster",
		ShiftTemplates: []ShiftTemplate{
			{
				StartTime: "06:00",
				EndTime:   "14:00",
			},
		},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	validConfig := `
departmentName: "Testville PD"
databaseURL: "postgres://localhost/roster"
adminPassword: "hunter2"
defaultPosition: "Patrol"
shiftTemplates:
  - name: "Day Shift"
    startTime: "06:00"
    endTime: "14:00"
  - name: "Early Shift"
    startTime: "16:00"
    endTime: "03:15"
    rrule: "FREQ=WEEKLY;BYDAY=FR,SA"
`

	err := os.WriteFile(configPath, []byte(validConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "Testville PD", cfg.DepartmentName)
	assert.Equal(t, "postgres://localhost/roster", cfg.DatabaseURL)
	assert.Equal(t, "hunter2", cfg.AdminPassword)
	assert.Equal(t, "Patrol", cfg.DefaultPosition)

	require.Len(t, cfg.ShiftTemplates, 2)
	assert.Equal(t, "Day Shift", cfg.ShiftTemplates[0].Name)
	assert.Empty(t, cfg.ShiftTemplates[0].RRule)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=FR,SA", cfg.ShiftTemplates[1].RRule)
}

func TestLoadFromPath_DatabaseURLFromEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "env_config.yaml")

	err := os.WriteFile(configPath, []byte(`departmentName: "Testville PD"`), 0644)
	require.NoError(t, err)

	t.Setenv("DATABASE_URL", "postgres://fromenv/roster")

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)
	assert.Equal(t, "postgres://fromenv/roster", cfg.DatabaseURL)
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_yaml.yaml")

	invalidYAML := `
departmentName: "Testville PD"
  invalid indentation
databaseURL: "postgres://localhost/roster"
`

	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
