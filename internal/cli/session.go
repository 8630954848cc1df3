package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"qwikshortcuts/internal/naming"
	"qwikshortcuts/internal/project"
	"qwikshortcuts/internal/scaffold"
	"qwikshortcuts/internal/tui"
	"qwikshortcuts/internal/workspace"
)

func newSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Run actions from a menu while tracking workspace changes",
		Long: `Keep a menu open and run actions one at a time. The workspace's
package.json and lockfiles are watched, so installing a package manager or
adding a dependency takes effect on the next action.`,
		Args: cobra.NoArgs,
		RunE: runSession,
	}
}

const (
	actionRoute      = "route"
	actionRouteMDX   = "route-mdx"
	actionRouteMD    = "route-md"
	actionComponent  = "component"
	actionAstroTSX   = "astro-tsx"
	actionAstroJSX   = "astro-jsx"
	actionDetect     = "detect"
	sessionMenuTitle = "Qwik Shortcuts"
)

var sessionActions = []tui.MenuItem{
	{Key: actionRoute, Label: "Add route"},
	{Key: actionRouteMDX, Label: "Add MDX route"},
	{Key: actionRouteMD, Label: "Add Markdown route"},
	{Key: actionComponent, Label: "Add component"},
	{Key: actionAstroTSX, Label: "Create Qwik Astro TSX component"},
	{Key: actionAstroJSX, Label: "Create Qwik Astro JSX component"},
	{Key: actionDetect, Label: "Show workspace"},
}

// sessionIO bundles the streams and prompt mode for one session.
type sessionIO struct {
	in   io.Reader
	out  io.Writer
	mode tui.OutputMode
}

func runSession(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	tracker, err := workspace.NewTracker(env.paths.Root, project.DefaultMarkers(), env.log)
	if err != nil {
		return fmt.Errorf("watch workspace: %w", err)
	}
	if err := tracker.Start(ctx); err != nil {
		return err
	}
	defer tracker.Stop()

	s, err := env.scaffolder(cmd)
	if err != nil {
		return err
	}

	sio := sessionIO{in: cmd.InOrStdin(), out: cmd.OutOrStdout()}
	sio.mode = promptMode(sio.in, sio.out)
	if sio.mode == tui.ModePlain {
		sio.in = bufio.NewReader(sio.in)
	}

	env.log.Info("session started")
	for {
		key, err := tui.Choose(ctx, sio.in, sio.out, sio.mode, sessionMenuTitle, sessionActions)
		if err != nil {
			if errors.Is(err, tui.ErrNoInput) {
				env.log.Info("session ended", zap.Int("context_loads", tracker.Loads()))
				return nil
			}
			return err
		}

		res, err := runSessionAction(ctx, cmd, s, tracker.Current(), sio, key)
		if err != nil {
			if _, ok := scaffold.KindOf(err); !ok {
				env.log.Warn("session action failed", zap.String("action", key), zap.Error(err))
			}
			fmt.Fprintln(sio.out, tui.ErrorStyle().Render(err.Error()))
			continue
		}
		if res != nil {
			if err := writeResult(cmd, *res, env.printsCommands()); err != nil {
				return err
			}
		}
	}
}

func runSessionAction(ctx context.Context, cmd *cobra.Command, s *scaffold.Scaffolder, ws workspace.Context, sio sessionIO, key string) (*scaffold.Result, error) {
	var (
		res scaffold.Result
		err error
	)
	switch key {
	case actionRoute, actionRouteMDX, actionRouteMD:
		if err := scaffold.Check(ws, scaffold.FamilyCore); err != nil {
			return nil, err
		}
		name, err := promptName(ctx, sio.in, sio.out, sio.mode, tui.PromptOptions{
			Title:       routePrompt,
			Placeholder: routePlaceholder,
			Validate:    naming.ValidateRouteName,
		}, scaffold.NoRouteInput)
		if err != nil {
			return nil, err
		}
		ext := map[string]string{actionRoute: scaffold.RouteTSX, actionRouteMDX: scaffold.RouteMDX, actionRouteMD: scaffold.RouteMD}[key]
		res, err = s.AddRoute(ctx, ws, name, ext)
		if err != nil {
			return nil, err
		}

	case actionComponent:
		if err := scaffold.Check(ws, scaffold.FamilyCore); err != nil {
			return nil, err
		}
		name, err := promptName(ctx, sio.in, sio.out, sio.mode, componentPromptOptions(), scaffold.NoComponentInput)
		if err != nil {
			return nil, err
		}
		res, err = s.AddComponent(ctx, ws, name)
		if err != nil {
			return nil, err
		}

	case actionAstroTSX, actionAstroJSX:
		if err := scaffold.Check(ws, scaffold.FamilyStaticSite); err != nil {
			return nil, err
		}
		name, err := promptName(ctx, sio.in, sio.out, sio.mode, componentPromptOptions(), scaffold.NoComponentInput)
		if err != nil {
			return nil, err
		}
		ext := "tsx"
		if key == actionAstroJSX {
			ext = "jsx"
		}
		res, err = s.CreateStaticSiteComponent(ctx, ws, name, ext)
		if err != nil {
			return nil, err
		}

	case actionDetect:
		writeDetectText(cmd, newDetectResult(ws))
		return nil, nil

	default:
		err = fmt.Errorf("unknown action %q", key)
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}
