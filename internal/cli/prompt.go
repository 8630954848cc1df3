package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"qwikshortcuts/internal/tui"
)

const (
	routePrompt          = "What is the name of the route?"
	routePlaceholder     = "product/[id]"
	componentPrompt      = "What is the name of the component?"
	componentPlaceholder = "my-component"
)

// askName returns args[0] when given, otherwise prompts on stderr. The
// validation predicate applies to both.
func askName(cmd *cobra.Command, args []string, opts tui.PromptOptions, noInput func() error) (string, error) {
	if len(args) > 0 {
		if opts.Validate != nil {
			if err := opts.Validate(args[0]); err != nil {
				return "", err
			}
		}
		return args[0], nil
	}

	in, out := cmd.InOrStdin(), cmd.ErrOrStderr()
	return promptName(cmd.Context(), in, out, promptMode(in, out), opts, noInput)
}

// promptMode falls back to plain line prompts unless both ends are a
// capable terminal.
func promptMode(in io.Reader, out io.Writer) tui.OutputMode {
	return tui.DetectMode(out, !tui.Interactive(in, out), false)
}

// promptName maps a cancelled or empty prompt to noInput().
func promptName(ctx context.Context, in io.Reader, out io.Writer, mode tui.OutputMode, opts tui.PromptOptions, noInput func() error) (string, error) {
	value, err := tui.Prompt(ctx, in, out, mode, opts)
	if err != nil {
		if errors.Is(err, tui.ErrNoInput) {
			return "", noInput()
		}
		return "", err
	}
	if value == "" {
		return "", noInput()
	}
	return value, nil
}
