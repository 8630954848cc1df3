package terminal

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

// RunOptions configures a single child process.
type RunOptions struct {
	Dir   string
	Env   []string
	Stdin io.Reader
	// Stdout and Stderr receive a copy of the child's output.
	Stdout io.Writer
	Stderr io.Writer
	// Attach hands the streams to the child as is and captures nothing.
	// An *os.File stream becomes the child's own descriptor, so a
	// terminal stays a terminal.
	Attach bool
}

// RunResult holds captured output. It is empty for attached runs.
type RunResult struct {
	Stdout []byte
	Stderr []byte
}

// Runner starts processes. Tests substitute a fake.
type Runner interface {
	Run(ctx context.Context, command string, args []string, opts RunOptions) (RunResult, error)
}

// CmdRunner runs commands with os/exec.
type CmdRunner struct{}

func (CmdRunner) Run(ctx context.Context, command string, args []string, opts RunOptions) (RunResult, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = opts.Dir
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}
	cmd.Stdin = opts.Stdin

	if opts.Attach {
		cmd.Stdout = opts.Stdout
		cmd.Stderr = opts.Stderr
		return RunResult{}, cmd.Run()
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = tee(&stdout, opts.Stdout)
	cmd.Stderr = tee(&stderr, opts.Stderr)
	err := cmd.Run()
	return RunResult{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, err
}

func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(buf, w)
}

var _ Runner = CmdRunner{}
