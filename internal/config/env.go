package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the YAML configuration.
const (
	EnvLogLevel     = "QWIK_SHORTCUTS_LOG_LEVEL"
	EnvTemplateDir  = "QWIK_SHORTCUTS_TEMPLATE_DIR"
	EnvTerminalMode = "QWIK_SHORTCUTS_TERMINAL_MODE"
	EnvShell        = "QWIK_SHORTCUTS_SHELL"
)

// LoadEnvFile loads a workspace .env file into the process environment.
// Variables already set are kept; a missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() {
	c.applyEnv(os.Getenv)
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(getenv(EnvTemplateDir)); v != "" {
		c.Templates.RuntimeRoot = v
	}
	if v := strings.ToLower(strings.TrimSpace(getenv(EnvTerminalMode))); v != "" {
		c.Terminal.Mode = v
	}
	if v := strings.TrimSpace(getenv(EnvShell)); v != "" {
		c.Terminal.Shell = v
	}
}
