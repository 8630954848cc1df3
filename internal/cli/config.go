package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"qwikshortcuts/internal/config"
	"qwikshortcuts/internal/paths"
	"qwikshortcuts/internal/terminal"
	"qwikshortcuts/internal/tui"
)

// editorRunner starts $EDITOR; tests replace it.
var editorRunner terminal.Runner = terminal.CmdRunner{}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or edit the workspace configuration",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigEditCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration and the locations it resolves to",
		Long: `Print the configuration after applying .qwik-shortcuts.yaml, .env,
QWIK_SHORTCUTS_* variables and command-line flags. Validation findings are
written to stderr.`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}
}

func newConfigEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open .qwik-shortcuts.yaml in $VISUAL or $EDITOR, creating it first",
		Args:  cobra.NoArgs,
		RunE:  runConfigEdit,
	}
}

// configLocations are the paths the configuration resolves to.
type configLocations struct {
	ConfigFile    string `json:"config_file"`
	ComponentsDir string `json:"components_dir"`
	InstallRoot   string `json:"install_root"`
	RuntimeRoot   string `json:"runtime_root"`
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	wp, cfg, err := loadSettings()
	if err != nil {
		return err
	}
	findings := cfg.ValidateStrict(wp.Root)
	locations := configLocations{
		ConfigFile:    wp.ConfigFile,
		ComponentsDir: wp.ComponentsDir,
		InstallRoot:   wp.InstallRoot,
		RuntimeRoot:   wp.RuntimeRoot,
	}

	if outputJSON {
		data, err := json.MarshalIndent(struct {
			Config    config.Config             `json:"config"`
			Locations configLocations           `json:"locations"`
			Findings  []config.ValidationResult `json:"findings"`
		}{cfg, locations, findings}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, strings.TrimRight(string(data), "\n")+"\n")
	fmt.Fprintf(out, "# config file:    %s\n", locations.ConfigFile)
	fmt.Fprintf(out, "# components dir: %s\n", locations.ComponentsDir)
	fmt.Fprintf(out, "# install root:   %s\n", locations.InstallRoot)
	fmt.Fprintf(out, "# runtime root:   %s\n", locations.RuntimeRoot)

	for _, f := range findings {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", tui.StatusStyle(f.Level).Render(f.Level+":"), f.Message)
	}
	return nil
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	wp, err := paths.Resolve(workspaceDir)
	if err != nil {
		return err
	}
	if ok, err := paths.DirExists(wp.Root); err != nil || !ok {
		return fmt.Errorf("workspace directory does not exist: %s", wp.Root)
	}

	var created []string
	if err := ensureConfig(wp, &created, zap.NewNop().Sugar()); err != nil {
		return err
	}
	if len(created) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "created %s\n", wp.ConfigFile)
	}

	editor := editorCommand(os.Getenv("VISUAL"), os.Getenv("EDITOR"), runtime.GOOS)
	_, err = editorRunner.Run(cmd.Context(), editor[0], append(editor[1:], wp.ConfigFile), terminal.RunOptions{
		Dir:    wp.Root,
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Attach: true,
	})
	if err != nil {
		return fmt.Errorf("editor %s: %w", editor[0], err)
	}
	return nil
}

// editorCommand splits the first non-blank of visual and editor on
// whitespace, falling back to the platform editor.
func editorCommand(visual, editor, goos string) []string {
	for _, value := range []string{visual, editor} {
		if fields := strings.Fields(value); len(fields) > 0 {
			return fields
		}
	}
	if goos == "windows" {
		return []string{"notepad"}
	}
	return []string{"vi"}
}
