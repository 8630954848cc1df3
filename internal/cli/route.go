package cli

import (
	"github.com/spf13/cobra"

	"qwikshortcuts/internal/naming"
	"qwikshortcuts/internal/scaffold"
	"qwikshortcuts/internal/tui"
)

var routeExt string

func newRouteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route [name]",
		Short: "Add a route with the project's qwik generator",
		Long: `Add a route by running "<pm> run qwik new /<name>" in the workspace.

The name is normalized first: lower-cased, spaces become dashes, file
extensions and "index" are dropped, and layout groups such as (admin) are
quoted for the shell.`,
		Example: "  qwik-shortcuts route \"Product/[id]\"\n  qwik-shortcuts route blog/hello --ext mdx",
		Args:    cobra.MaximumNArgs(1),
		RunE:    runRoute,
	}
	cmd.Flags().StringVar(&routeExt, "ext", "tsx", "Route file type: tsx, mdx or md")
	return cmd
}

func runRoute(cmd *cobra.Command, args []string) error {
	ext, err := scaffold.RouteExtension(routeExt)
	if err != nil {
		return err
	}

	env, err := loadEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ws := env.workspace()
	if err := scaffold.Check(ws, scaffold.FamilyCore); err != nil {
		env.log.Info("route precondition failed")
		return err
	}

	name, err := askName(cmd, args, tui.PromptOptions{
		Title:       routePrompt,
		Placeholder: routePlaceholder,
		Validate:    naming.ValidateRouteName,
	}, scaffold.NoRouteInput)
	if err != nil {
		return err
	}

	s, err := env.scaffolder(cmd)
	if err != nil {
		return err
	}
	res, err := s.AddRoute(cmd.Context(), ws, name, ext)
	if err != nil {
		return err
	}
	return writeResult(cmd, res, env.printsCommands())
}
