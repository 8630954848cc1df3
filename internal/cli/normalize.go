package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"qwikshortcuts/internal/naming"
)

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "normalize <input>",
		Short:   "Print the normalized form of a route or component name",
		Example: "  qwik-shortcuts normalize \"(admin)/Profile.tsx\"",
		Args:    cobra.ExactArgs(1),
		RunE:    runNormalize,
	}
}

func runNormalize(cmd *cobra.Command, args []string) error {
	normalized := naming.Normalize(args[0])
	if outputJSON {
		data, err := json.MarshalIndent(map[string]string{
			"input":      args[0],
			"normalized": normalized,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), normalized)
	return nil
}
