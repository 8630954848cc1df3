package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnvOverrides(t *testing.T) {
	t.Run("all variables set", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvTemplateDir, "/tmp/templates")
		t.Setenv(EnvTerminalMode, "PRINT")
		t.Setenv(EnvShell, "/bin/zsh")

		cfg := Default()
		cfg.ApplyEnv()

		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "/tmp/templates", cfg.Templates.RuntimeRoot)
		assert.Equal(t, TerminalPrint, cfg.Terminal.Mode)
		assert.Equal(t, "/bin/zsh", cfg.Terminal.Shell)
	})

	t.Run("blank variables are ignored", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "  ")
		t.Setenv(EnvTerminalMode, "")

		cfg := Default()
		cfg.ApplyEnv()

		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, TerminalExec, cfg.Terminal.Mode)
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		require.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("loads values without overriding", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		data := EnvTerminalMode + "=print\n" + EnvLogLevel + "=warn\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		t.Setenv(EnvLogLevel, "error")
		t.Setenv(EnvTerminalMode, "")
		require.NoError(t, os.Unsetenv(EnvTerminalMode))

		require.NoError(t, LoadEnvFile(path))

		cfg := Default()
		cfg.ApplyEnv()
		assert.Equal(t, TerminalPrint, cfg.Terminal.Mode)
		assert.Equal(t, "error", cfg.Log.Level)
	})
}
