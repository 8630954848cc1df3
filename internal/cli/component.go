package cli

import (
	"github.com/spf13/cobra"

	"qwikshortcuts/internal/naming"
	"qwikshortcuts/internal/scaffold"
	"qwikshortcuts/internal/tui"
)

func newComponentCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "component [name]",
		Short:   "Add a component with the project's qwik generator",
		Example: "  qwik-shortcuts component \"My Button\"",
		Args:    cobra.MaximumNArgs(1),
		RunE:    runComponent,
	}
}

func componentPromptOptions() tui.PromptOptions {
	return tui.PromptOptions{
		Title:       componentPrompt,
		Placeholder: componentPlaceholder,
		Validate:    naming.ValidateComponentName,
	}
}

func runComponent(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ws := env.workspace()
	if err := scaffold.Check(ws, scaffold.FamilyCore); err != nil {
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
	res, err := s.AddComponent(cmd.Context(), ws, name)
	if err != nil {
		return err
	}
	return writeResult(cmd, res, env.printsCommands())
}
