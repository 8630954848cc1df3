// Package scaffold implements the three user actions: add a route, add a
// component through the project's generator, and write a Qwik Astro
// component from a template.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"qwikshortcuts/internal/config"
	"qwikshortcuts/internal/naming"
	"qwikshortcuts/internal/paths"
	"qwikshortcuts/internal/project"
	"qwikshortcuts/internal/templates"
	"qwikshortcuts/internal/terminal"
	"qwikshortcuts/internal/workspace"
)

// Route file extensions accepted by AddRoute. A TSX route has none.
const (
	RouteTSX = ""
	RouteMDX = ".mdx"
	RouteMD  = ".md"
)

// RouteExtension maps a --ext flag value to the suffix appended to the
// route path.
func RouteExtension(flag string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(flag), ".")) {
	case "", "tsx":
		return RouteTSX, nil
	case "mdx":
		return RouteMDX, nil
	case "md":
		return RouteMD, nil
	default:
		return "", fmt.Errorf("unsupported route extension %q (want tsx, mdx or md)", flag)
	}
}

// ComponentExtension validates a Qwik Astro component extension.
func ComponentExtension(flag string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(flag), "."))
	switch ext {
	case "tsx", "jsx":
		return ext, nil
	default:
		return "", fmt.Errorf("unsupported component extension %q (want tsx or jsx)", flag)
	}
}

// Result describes what an action did.
type Result struct {
	Action     string `json:"action"`
	Normalized string `json:"normalized,omitempty"`
	Command    string `json:"command,omitempty"`
	File       string `json:"file,omitempty"`
	Template   string `json:"template,omitempty"`
	Warning    string `json:"warning,omitempty"`
}

// Scaffolder runs actions against a workspace context.
type Scaffolder struct {
	Session       terminal.Session
	Resolver      *templates.Resolver
	Generator     config.GeneratorConfig
	ComponentsDir string
	Inline        bool
	Log           *zap.Logger
}

func (s *Scaffolder) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *Scaffolder) generator() config.GeneratorConfig {
	g := s.Generator
	defaults := config.Default().Generator
	if g.Script == "" {
		g.Script = defaults.Script
	}
	if g.Subcommand == "" {
		g.Subcommand = defaults.Subcommand
	}
	return g
}

// RouteCommand builds `<pm> run <script> <sub> /<normalized><ext>`.
func RouteCommand(pm project.PackageManager, gen config.GeneratorConfig, normalized, ext string) string {
	return fmt.Sprintf("%s run %s %s /%s%s", pm, gen.Script, gen.Subcommand, normalized, ext)
}

// ComponentCommand builds `<pm> run <script> <sub> <normalized>`.
func ComponentCommand(pm project.PackageManager, gen config.GeneratorConfig, normalized string) string {
	return fmt.Sprintf("%s run %s %s %s", pm, gen.Script, gen.Subcommand, normalized)
}

// AddRoute normalizes input and sends the route generator command.
func (s *Scaffolder) AddRoute(ctx context.Context, ws workspace.Context, input, ext string) (Result, error) {
	if err := Check(ws, FamilyCore); err != nil {
		return Result{}, err
	}
	if input == "" {
		return Result{}, NoRouteInput()
	}

	normalized := naming.Normalize(input)
	line := RouteCommand(ws.PackageManager, s.generator(), normalized, ext)
	return s.send(ctx, Result{Action: "route", Normalized: normalized, Command: line}), nil
}

// AddComponent normalizes input and sends the component generator command.
func (s *Scaffolder) AddComponent(ctx context.Context, ws workspace.Context, input string) (Result, error) {
	if err := Check(ws, FamilyCore); err != nil {
		return Result{}, err
	}
	if input == "" {
		return Result{}, NoComponentInput()
	}

	normalized := naming.Normalize(input)
	line := ComponentCommand(ws.PackageManager, s.generator(), normalized)
	return s.send(ctx, Result{Action: "component", Normalized: normalized, Command: line}), nil
}

// send delivers the command line. A failing command is reported as a
// warning; its output and exit status belong to the user's terminal.
func (s *Scaffolder) send(ctx context.Context, res Result) Result {
	log := s.logger().With(zap.String("action", res.Action), zap.String("command", res.Command))
	if s.Session == nil {
		res.Warning = "no terminal session configured"
		log.Warn("command not sent")
		return res
	}
	if err := s.Session.Send(ctx, res.Command); err != nil {
		res.Warning = err.Error()
		log.Warn("command failed", zap.Error(err))
		return res
	}
	log.Info("command sent")
	return res
}

// CreateStaticSiteComponent writes <components>/<name>/<name>.<ext> from
// the resolved template. name is the trimmed input; it is not normalized.
func (s *Scaffolder) CreateStaticSiteComponent(ctx context.Context, ws workspace.Context, input, ext string) (Result, error) {
	if err := Check(ws, FamilyStaticSite); err != nil {
		return Result{}, err
	}
	name := strings.TrimSpace(input)
	if name == "" {
		return Result{}, NoComponentInput()
	}
	ext, err := ComponentExtension(ext)
	if err != nil {
		return Result{}, err
	}

	if err := naming.ValidateComponentName(name); err != nil {
		return Result{}, err
	}
	target, err := paths.ComponentFile(s.componentsDir(ws.Root), name, ext)
	if err != nil {
		return Result{}, err
	}
	log := s.logger().With(zap.String("action", "astro-component"), zap.String("file", target))

	exists, err := paths.Exists(target)
	if err != nil {
		return Result{}, fmt.Errorf("stat %s: %w", target, err)
	}
	if exists {
		return Result{}, newError(ComponentAlreadyExists, ErrComponentAlreadyExists.Message, nil)
	}

	res := Result{Action: "astro-component", File: target}
	content, source, err := s.content(name, ext, ws.Classification.Version)
	if err != nil {
		return Result{}, err
	}
	res.Template = source

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return Result{}, fmt.Errorf("create component directory: %w", err)
	}
	if err := writeNewFile(target, content); err != nil {
		return Result{}, err
	}

	log.Info("component created", zap.String("template", source))
	return res, nil
}

// writeNewFile claims target with O_EXCL, then replaces the empty file with
// content atomically. A file created by anyone else in between is never
// overwritten.
func writeNewFile(target, content string) error {
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return newError(ComponentAlreadyExists, ErrComponentAlreadyExists.Message, err)
		}
		return fmt.Errorf("create component: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(target)
		return fmt.Errorf("create component: %w", err)
	}
	if err := atomic.WriteFile(target, strings.NewReader(content)); err != nil {
		_ = os.Remove(target)
		return fmt.Errorf("write component: %w", err)
	}
	if err := os.Chmod(target, 0o644); err != nil {
		return fmt.Errorf("chmod component: %w", err)
	}
	return nil
}

func (s *Scaffolder) componentsDir(root string) string {
	dir := strings.TrimSpace(s.ComponentsDir)
	if dir == "" {
		dir = config.Default().Components.Dir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}

func (s *Scaffolder) content(name, ext string, version project.Version) (string, string, error) {
	if s.Inline || s.Resolver == nil {
		return templates.Generate(name, ext, version), "inline", nil
	}

	match, err := s.Resolver.Resolve(templates.FileName(ext))
	if err != nil {
		if errors.Is(err, templates.ErrTemplateNotFound) {
			return "", "", newError(TemplateNotFound, ErrTemplateNotFound.Message, err)
		}
		return "", "", err
	}
	raw, err := match.Read()
	if err != nil {
		return "", "", fmt.Errorf("read template %s: %w", match.Path, err)
	}
	return templates.Render(string(raw), name, version), match.Path, nil
}
