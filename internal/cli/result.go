package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"qwikshortcuts/internal/scaffold"
	"qwikshortcuts/internal/tui"
)

// writeResult reports an action. printed is true when the session already
// wrote the command line instead of running it.
func writeResult(cmd *cobra.Command, res scaffold.Result, printed bool) error {
	if outputJSON {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	out := cmd.OutOrStdout()
	switch {
	case res.File != "":
		fmt.Fprintf(out, "%s %s\n", tui.StatusStyle("created").Render("Created"), res.File)
		fmt.Fprintf(out, "  template: %s\n", res.Template)
	case res.Command != "" && !printed:
		fmt.Fprintf(out, "%s %s\n", tui.StatusStyle("sent").Render("Ran"), res.Command)
	}
	if res.Warning != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", tui.StatusStyle("warning").Render("warning:"), res.Warning)
	}
	return nil
}
