package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"qwikshortcuts/internal/templates"
)

func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Inspect component template resolution",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List template search locations and built-in templates",
		Args:  cobra.NoArgs,
		RunE:  runTemplatesList,
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "resolve <file>",
		Short:   "Show which search location provides a template",
		Example: "  qwik-shortcuts templates resolve TSXComponent.txt",
		Args:    cobra.ExactArgs(1),
		RunE:    runTemplatesResolve,
	})
	return cmd
}

type templatesListResult struct {
	InstallRoot string   `json:"install_root"`
	RuntimeRoot string   `json:"runtime_root"`
	Strategies  []string `json:"strategies"`
	Builtin     []string `json:"builtin"`
}

func runTemplatesList(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	resolver, err := env.resolver()
	if err != nil {
		return err
	}

	result := templatesListResult{
		InstallRoot: env.paths.InstallRoot,
		RuntimeRoot: env.paths.RuntimeRoot,
		Builtin:     templates.BuiltinFiles(),
	}
	for _, s := range resolver.Strategies() {
		result.Strategies = append(result.Strategies, s.Name())
	}

	if outputJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Install root: %s\n", result.InstallRoot)
	fmt.Fprintf(out, "Runtime root: %s\n", result.RuntimeRoot)
	fmt.Fprintf(out, "Search order: %s\n", joinComma(result.Strategies))
	fmt.Fprintf(out, "Built-in:     %s\n", joinComma(result.Builtin))
	return nil
}

func runTemplatesResolve(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	resolver, err := env.resolver()
	if err != nil {
		return err
	}
	attempts := resolver.Trace(args[0])

	if outputJSON {
		data, err := json.MarshalIndent(map[string]any{
			"file":     args[0],
			"attempts": attempts,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		writeTraceTable(cmd, attempts)
	}

	for _, a := range attempts {
		if a.Found {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", templates.ErrTemplateNotFound, args[0])
}

func writeTraceTable(cmd *cobra.Command, attempts []templates.Attempt) {
	out := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tFOUND\tPATH")
	winner := false
	for _, a := range attempts {
		found := "no"
		if a.Found {
			found = "yes"
			if !winner {
				found = "yes (used)"
				winner = true
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Strategy, found, a.Path)
	}
	tw.Flush()
}
