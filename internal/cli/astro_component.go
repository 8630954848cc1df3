package cli

import (
	"github.com/spf13/cobra"

	"qwikshortcuts/internal/scaffold"
)

var astroExt string

func newAstroComponentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "astro-component [name]",
		Short: "Write a Qwik component into an Astro project from a template",
		Long: `Write src/components/<name>/<name>.<ext> from the TSX or JSX component
template. The name is used as typed (trimmed); an existing file is never
overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAstroComponent,
	}
	cmd.Flags().StringVar(&astroExt, "ext", "", "Component file type: tsx or jsx (default from config)")
	return cmd
}

func runAstroComponent(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	flag := astroExt
	if flag == "" {
		flag = env.cfg.Components.Extension
	}
	ext, err := scaffold.ComponentExtension(flag)
	if err != nil {
		return err
	}

	ws := env.workspace()
	if err := scaffold.Check(ws, scaffold.FamilyStaticSite); err != nil {
		return err
	}

	name, err := askName(cmd, args, componentPromptOptions(), scaffold.NoComponentInput)
	if err != nil {
		return err
	}

	s, err := env.scaffolder(cmd)
	if err != nil {
		return err
	}
	res, err := s.CreateStaticSiteComponent(cmd.Context(), ws, name, ext)
	if err != nil {
		return err
	}
	return writeResult(cmd, res, env.printsCommands())
}
