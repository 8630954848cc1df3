package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"qwikshortcuts/internal/config"
	"qwikshortcuts/internal/logx"
	"qwikshortcuts/internal/paths"
	"qwikshortcuts/internal/templates"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default config and editable component templates",
		Long: `Write .qwik-shortcuts.yaml and copy the built-in component templates to
.qwik-shortcuts/templates, where they take precedence over the built-in
ones. Existing files are left alone.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}

	return cmd
}

func resolveInitDir(workspaceFlag string, args []string) (string, error) {
	if workspaceFlag != "" {
		return workspaceFlag, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	if len(args) > 0 && args[0] != "." {
		if filepath.IsAbs(args[0]) {
			return args[0], nil
		}
		return filepath.Join(cwd, args[0]), nil
	}
	return cwd, nil
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := resolveInitDir(workspaceDir, args)
	if err != nil {
		return err
	}

	wp, err := paths.Resolve(dir)
	if err != nil {
		return err
	}
	exists, err := paths.DirExists(wp.Root)
	if err != nil {
		return fmt.Errorf("stat workspace: %w", err)
	}
	if !exists {
		return fmt.Errorf("workspace directory does not exist: %s", wp.Root)
	}
	if err := wp.EnsureMetaDirs(); err != nil {
		return err
	}

	var logger Logger = zap.NewNop().Sugar()
	if l, closer, err := logx.New(config.Default().Log.Level); err == nil {
		defer closer.Close()
		logger = l.Sugar()
	}
	logger.Infof("qwik-shortcuts init: workspace=%s", wp.Root)

	created := make([]string, 0, 3)

	if err := ensureConfig(wp, &created, logger); err != nil {
		return err
	}

	for _, file := range templates.BuiltinFiles() {
		if err := ensureTemplate(wp, file, &created, logger); err != nil {
			return err
		}
	}

	if len(created) == 0 {
		cmd.Printf("Workspace already initialized at %s\n", wp.Root)
		return nil
	}

	cmd.Printf("Initialized workspace at %s\n", wp.Root)
	for _, entry := range created {
		cmd.Printf("  created %s\n", entry)
	}

	return nil
}

func ensureConfig(wp paths.WorkspacePaths, created *[]string, logger Logger) error {
	exists, err := paths.FileExists(wp.ConfigFile)
	if err != nil {
		return fmt.Errorf("check config: %w", err)
	}
	if exists {
		logger.Infof("config exists: %s", wp.ConfigFile)
		return nil
	}

	cfg := config.Default()
	cfg.ApplyDefaults()
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	if err := writeSeedFile(wp.ConfigFile, data); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	logger.Infof("created config: %s", wp.ConfigFile)
	*created = append(*created, paths.ConfigName)
	return nil
}

func ensureTemplate(wp paths.WorkspacePaths, file string, created *[]string, logger Logger) error {
	target := filepath.Join(wp.TemplatesDir, file)
	exists, err := paths.FileExists(target)
	if err != nil {
		return fmt.Errorf("check template %s: %w", file, err)
	}
	if exists {
		logger.Infof("template exists: %s", target)
		return nil
	}

	data, err := templates.ReadBuiltin(file)
	if err != nil {
		return fmt.Errorf("read built-in template %s: %w", file, err)
	}
	if err := writeSeedFile(target, data); err != nil {
		return fmt.Errorf("write template %s: %w", file, err)
	}
	logger.Infof("created template: %s", target)
	rel, _ := filepath.Rel(wp.Root, target)
	*created = append(*created, filepath.ToSlash(rel))
	return nil
}

// writeSeedFile atomically writes a file init creates, readable by all.
func writeSeedFile(path string, data []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}
	return os.Chmod(path, 0o644)
}

// Logger keeps the subset of zap.SugaredLogger used locally, enabling easy
// testing.
type Logger interface {
	Infof(template string, args ...any)
}
