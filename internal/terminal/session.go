// Package terminal delivers generated command lines to the user's shell.
package terminal

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// Name labels the session in logs and printed output.
const Name = "Qwik Shortcuts"

// Modes accepted by New.
const (
	ModeExec  = "exec"
	ModePrint = "print"
)

// Session receives one command line per action. Output and exit status of
// the command are not inspected.
type Session interface {
	Send(ctx context.Context, line string) error
}

// Streams are the standard streams handed to the child shell.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// ShellSession runs each line through a shell attached to Streams. The
// command's output goes straight to Streams and is never captured.
type ShellSession struct {
	Runner  Runner
	Shell   string
	Dir     string
	Streams Streams
	Log     *zap.Logger
}

// Send runs line with `<shell> -c line` (or `cmd /C line` on Windows).
func (s ShellSession) Send(ctx context.Context, line string) error {
	command, args := ShellCommand(s.Shell, runtime.GOOS, line)
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("send command", zap.String("session", Name), zap.String("shell", command), zap.String("line", line))

	_, err := s.Runner.Run(ctx, command, args, RunOptions{
		Dir:    s.Dir,
		Stdin:  s.Streams.In,
		Stdout: s.Streams.Out,
		Stderr: s.Streams.Err,
		Attach: true,
	})
	if err != nil {
		log.Warn("command finished with error", zap.String("line", line), zap.Error(err))
		return fmt.Errorf("run %q: %w", line, err)
	}
	return nil
}

// ShellCommand picks the shell invocation for goos. An explicit shell
// overrides the platform default.
func ShellCommand(shell, goos, line string) (string, []string) {
	shell = strings.TrimSpace(shell)
	if goos == "windows" {
		if shell == "" {
			return "cmd", []string{"/C", line}
		}
		if strings.HasSuffix(strings.ToLower(shell), "cmd.exe") || strings.EqualFold(shell, "cmd") {
			return shell, []string{"/C", line}
		}
		return shell, []string{"-Command", line}
	}
	if shell == "" {
		shell = "sh"
	}
	return shell, []string{"-c", line}
}

// PrintSession writes each line to Out instead of running it.
type PrintSession struct {
	Out io.Writer
}

func (p PrintSession) Send(_ context.Context, line string) error {
	_, err := fmt.Fprintln(p.Out, line)
	return err
}

// New returns the session for mode. Unknown modes fall back to exec.
func New(mode, shell, dir string, streams Streams, runner Runner, log *zap.Logger) Session {
	if strings.EqualFold(mode, ModePrint) {
		return PrintSession{Out: streams.Out}
	}
	if runner == nil {
		runner = CmdRunner{}
	}
	return ShellSession{Runner: runner, Shell: shell, Dir: dir, Streams: streams, Log: log}
}
