package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"qwikshortcuts/internal/scaffold"
	"qwikshortcuts/internal/tui"
	"qwikshortcuts/internal/workspace"
)

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Show the project kind and package manager of the workspace",
		Args:  cobra.NoArgs,
		RunE:  runDetect,
	}
}

type detectResult struct {
	workspace.Context
	Actions map[scaffold.Family]string `json:"actions"`
}

func runDetect(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	result := newDetectResult(env.workspace())

	if outputJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	writeDetectText(cmd, result)
	return nil
}

// newDetectResult runs the precondition checks of every action family.
func newDetectResult(ws workspace.Context) detectResult {
	result := detectResult{Context: ws, Actions: map[scaffold.Family]string{}}
	for _, family := range []scaffold.Family{scaffold.FamilyCore, scaffold.FamilyStaticSite} {
		if err := scaffold.Check(ws, family); err != nil {
			result.Actions[family] = err.Error()
		} else {
			result.Actions[family] = "ok"
		}
	}
	return result
}

func writeDetectText(cmd *cobra.Command, r detectResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tui.TitleStyle.Render("WORKSPACE:")+" "+r.Root)
	if !r.Exists {
		fmt.Fprintln(out, "  exists:          no")
		return
	}
	fmt.Fprintf(out, "  kind:            %s\n", r.Classification.Kind())
	fmt.Fprintf(out, "  qwik version:    %s (%s)\n", r.Classification.Version, r.Classification.Version.ImportPath())
	if r.Classification.ManifestError != "" {
		fmt.Fprintf(out, "  manifest:        %s\n", r.Classification.ManifestError)
	}
	pm := "none"
	if r.HasPackageManager {
		pm = string(r.PackageManager)
	}
	fmt.Fprintf(out, "  package manager: %s\n", pm)
	for _, family := range []scaffold.Family{scaffold.FamilyCore, scaffold.FamilyStaticSite} {
		status := r.Actions[family]
		style := tui.StatusStyle("ok")
		if status != "ok" {
			style = tui.StatusStyle("skipped")
		}
		fmt.Fprintf(out, "  %-16s %s\n", string(family)+":", style.Render(status))
	}
}
