package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qwikshortcuts/internal/scaffold"
)

var (
	workspaceDir string
	outputJSON   bool
	printOnly    bool
	verbose      bool
)

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		var actionErr *scaffold.Error
		if errors.As(err, &actionErr) {
			fmt.Fprintln(os.Stderr, actionErr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "qwik-shortcuts",
		Short:         "Scaffold routes and components in Qwik projects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&workspaceDir, "workspace", "", "Path to the workspace (defaults to the current directory)")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")
	cmd.PersistentFlags().BoolVar(&printOnly, "print", false, "Print generator commands instead of running them")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug entries to the log file")

	cmd.AddCommand(newRouteCmd())
	cmd.AddCommand(newComponentCmd())
	cmd.AddCommand(newAstroComponentCmd())
	cmd.AddCommand(newDetectCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newTemplatesCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newSessionCmd())

	normalizeCmd := newNormalizeCmd()
	cmd.AddCommand(normalizeCmd)
	// normalize is a pure transform; workspace and print flags don't apply.
	for _, name := range []string{"workspace", "print"} {
		if f := normalizeCmd.InheritedFlags().Lookup(name); f != nil {
			f.Hidden = true
		}
	}

	return cmd
}
