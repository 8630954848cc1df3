// Package tui holds the interactive pieces of the CLI: the name prompt, the
// session menu and output mode detection.
package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoInput is returned when the user cancels a prompt or input ends.
var ErrNoInput = errors.New("no input provided")

// PromptOptions describes a single free-text question.
type PromptOptions struct {
	Title       string
	Placeholder string
	Validate    func(string) error
}

// PromptModel is a bubbletea model wrapping a text input with a
// validation predicate that runs on every change.
type PromptModel struct {
	opts      PromptOptions
	input     textinput.Model
	err       error
	submitted bool
	cancelled bool
}

// NewPromptModel creates a focused prompt.
func NewPromptModel(opts PromptOptions) PromptModel {
	input := textinput.New()
	input.Placeholder = opts.Placeholder
	input.Prompt = "> "
	input.Focus()
	m := PromptModel{opts: opts, input: input}
	m.err = m.validate("")
	return m
}

func (m PromptModel) validate(value string) error {
	if m.opts.Validate == nil {
		return nil
	}
	return m.opts.Validate(value)
}

func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.err = m.validate(m.input.Value()); m.err != nil {
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.err = m.validate(m.input.Value())
	return m, cmd
}

func (m PromptModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.opts.Title))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.err != nil && m.input.Value() != "" {
		b.WriteString(ErrorStyle().Render(m.err.Error()))
	}
	b.WriteString("\n")
	b.WriteString(FaintStyle.Render("enter to confirm, esc to cancel"))
	b.WriteString("\n")
	return b.String()
}

// Value returns the submitted text. ok is false when the prompt was
// cancelled or never submitted.
func (m PromptModel) Value() (string, bool) {
	if !m.submitted {
		return "", false
	}
	return m.input.Value(), true
}

// lineReader reuses in when it is already buffered so that consecutive
// prompts over one stream do not lose lines.
func lineReader(in io.Reader) *bufio.Reader {
	if r, ok := in.(*bufio.Reader); ok {
		return r
	}
	return bufio.NewReader(in)
}

// Prompt asks a single question. In ModeTUI it runs a bubbletea program,
// otherwise it reads lines from in until one passes validation.
func Prompt(ctx context.Context, in io.Reader, out io.Writer, mode OutputMode, opts PromptOptions) (string, error) {
	if mode == ModeTUI {
		return promptTUI(ctx, in, out, opts)
	}
	return promptPlain(in, out, opts)
}

func promptTUI(ctx context.Context, in io.Reader, out io.Writer, opts PromptOptions) (string, error) {
	p := tea.NewProgram(NewPromptModel(opts), tea.WithInput(in), tea.WithOutput(out), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("run prompt: %w", err)
	}
	value, ok := final.(PromptModel).Value()
	if !ok {
		return "", ErrNoInput
	}
	return value, nil
}

func promptPlain(in io.Reader, out io.Writer, opts PromptOptions) (string, error) {
	reader := lineReader(in)
	for {
		label := opts.Title
		if opts.Placeholder != "" {
			label += " (e.g. " + opts.Placeholder + ")"
		}
		fmt.Fprintf(out, "%s: ", label)

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				return "", ErrNoInput
			}
			return "", fmt.Errorf("read input: %w", err)
		}
		value := strings.TrimRight(line, "\r\n")

		if opts.Validate != nil {
			if verr := opts.Validate(value); verr != nil {
				fmt.Fprintln(out, verr.Error())
				if err != nil {
					return "", ErrNoInput
				}
				continue
			}
		}
		return value, nil
	}
}
