package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"qwikshortcuts/internal/config"
	"qwikshortcuts/internal/logx"
	"qwikshortcuts/internal/paths"
	"qwikshortcuts/internal/project"
	"qwikshortcuts/internal/scaffold"
	"qwikshortcuts/internal/templates"
	"qwikshortcuts/internal/terminal"
	"qwikshortcuts/internal/workspace"
)

// runEnv is the per-invocation state shared by the action commands.
type runEnv struct {
	paths  paths.WorkspacePaths
	cfg    config.Config
	log    *zap.Logger
	closer io.Closer
}

// loadEnv resolves the workspace, loads .env and the config file, applies
// environment overrides and opens the log file. A log file that cannot be
// opened is not fatal.
func loadEnv() (*runEnv, error) {
	wp, cfg, err := loadSettings()
	if err != nil {
		return nil, err
	}

	env := &runEnv{paths: wp, cfg: cfg, log: zap.NewNop()}
	if logger, closer, err := logx.New(cfg.Log.Level); err == nil {
		env.log = logger.With(zap.String("workspace", wp.Root))
		env.closer = closer
	}
	return env, nil
}

// loadSettings returns the effective paths and configuration: file values,
// then environment, then command-line flags.
func loadSettings() (paths.WorkspacePaths, config.Config, error) {
	wp, err := paths.Resolve(workspaceDir)
	if err != nil {
		return paths.WorkspacePaths{}, config.Config{}, err
	}
	if err := config.LoadEnvFile(wp.EnvFile); err != nil {
		return paths.WorkspacePaths{}, config.Config{}, err
	}
	cfg, err := config.Load(wp.ConfigFile)
	if err != nil {
		return paths.WorkspacePaths{}, config.Config{}, err
	}
	cfg.ApplyEnv()
	if verbose {
		cfg.Log.Level = "debug"
	}
	if printOnly {
		cfg.Terminal.Mode = config.TerminalPrint
	}
	return paths.ApplyConfig(wp, cfg), cfg, nil
}

func (e *runEnv) Close() {
	if e.closer != nil {
		_ = e.closer.Close()
	}
}

func (e *runEnv) printsCommands() bool {
	return strings.EqualFold(e.cfg.Terminal.Mode, config.TerminalPrint)
}

func (e *runEnv) workspace() workspace.Context {
	return workspace.Load(e.paths.Root, project.DefaultMarkers())
}

func (e *runEnv) resolver() (*templates.Resolver, error) {
	strategies := templates.DefaultStrategies(e.paths.InstallRoot, e.paths.RuntimeRoot, e.cfg.Templates.BuiltinEnabled())
	return templates.NewResolver(e.log, e.cfg.Templates.CacheSize, strategies...)
}

func (e *runEnv) scaffolder(cmd *cobra.Command) (*scaffold.Scaffolder, error) {
	resolver, err := e.resolver()
	if err != nil {
		return nil, err
	}
	// In JSON mode stdout carries only the result document.
	out := cmd.OutOrStdout()
	if outputJSON {
		out = cmd.ErrOrStderr()
	}
	session := terminal.New(e.cfg.Terminal.Mode, e.cfg.Terminal.Shell, e.paths.Root, terminal.Streams{
		In:  cmd.InOrStdin(),
		Out: out,
		Err: cmd.ErrOrStderr(),
	}, nil, e.log)
	return &scaffold.Scaffolder{
		Session:       session,
		Resolver:      resolver,
		Generator:     e.cfg.Generator,
		ComponentsDir: e.paths.ComponentsDir,
		Inline:        e.cfg.Components.Inline,
		Log:           e.log,
	}, nil
}
