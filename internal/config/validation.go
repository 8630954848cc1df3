package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
)

// ValidationResult captures a single validation finding.
type ValidationResult struct {
	Level   string `json:"level"` // "error" or "warning"
	Message string `json:"message"`
}

// ValidateStrict runs all validations against the config and returns
// structured results.
func (c Config) ValidateStrict(workspaceRoot string) []ValidationResult {
	var results []ValidationResult
	results = append(results, c.validateGenerator()...)
	results = append(results, c.validateComponents()...)
	results = append(results, c.validateTemplateRoots(workspaceRoot)...)
	results = append(results, c.validateTerminal()...)
	results = append(results, c.validateLog()...)
	return results
}

// HasErrors reports whether any result is an error.
func HasErrors(results []ValidationResult) bool {
	for _, r := range results {
		if r.Level == "error" {
			return true
		}
	}
	return false
}

func (c Config) validateGenerator() []ValidationResult {
	var results []ValidationResult
	if strings.TrimSpace(c.Generator.Script) == "" {
		results = append(results, ValidationResult{Level: "error", Message: "generator.script is required"})
	}
	if strings.ContainsAny(c.Generator.Script, " \t") {
		results = append(results, ValidationResult{
			Level:   "error",
			Message: fmt.Sprintf("generator.script %q must be a single script name", c.Generator.Script),
		})
	}
	if strings.TrimSpace(c.Generator.Subcommand) == "" {
		results = append(results, ValidationResult{Level: "error", Message: "generator.subcommand is required"})
	}
	return results
}

func (c Config) validateComponents() []ValidationResult {
	var results []ValidationResult
	switch c.Components.Extension {
	case "tsx", "jsx":
	default:
		results = append(results, ValidationResult{
			Level:   "error",
			Message: fmt.Sprintf("components.extension %q must be tsx or jsx", c.Components.Extension),
		})
	}
	if filepath.IsAbs(c.Components.Dir) {
		results = append(results, ValidationResult{
			Level:   "warning",
			Message: fmt.Sprintf("components.dir %q is absolute; components will be written outside the workspace", c.Components.Dir),
		})
	}
	return results
}

func (c Config) validateTemplateRoots(workspaceRoot string) []ValidationResult {
	var results []ValidationResult
	roots := []struct {
		field string
		value string
	}{
		{"templates.install_root", c.Templates.InstallRoot},
		{"templates.runtime_root", c.Templates.RuntimeRoot},
	}
	for _, root := range roots {
		value := strings.TrimSpace(root.value)
		if value == "" {
			continue
		}
		resolved := value
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(workspaceRoot, resolved)
		}
		info, err := os.Stat(resolved)
		if err != nil || !info.IsDir() {
			results = append(results, ValidationResult{
				Level:   "warning",
				Message: fmt.Sprintf("%s %q is not a directory", root.field, value),
			})
		}
	}
	if c.Templates.CacheSize < 0 {
		results = append(results, ValidationResult{Level: "error", Message: "templates.cache_size must be >= 0"})
	}
	return results
}

func (c Config) validateTerminal() []ValidationResult {
	switch c.Terminal.Mode {
	case TerminalExec, TerminalPrint:
		return nil
	}
	return []ValidationResult{{
		Level:   "error",
		Message: fmt.Sprintf("terminal.mode %q must be %s or %s", c.Terminal.Mode, TerminalExec, TerminalPrint),
	}}
}

func (c Config) validateLog() []ValidationResult {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return []ValidationResult{{
			Level:   "error",
			Message: fmt.Sprintf("log.level %q is not a valid level", c.Log.Level),
		}}
	}
	return nil
}
