package tools

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"qwikshortcuts/internal/terminal"
)

// Prober discovers tool availability and version information.
type Prober struct {
	Runner   terminal.Runner
	LookPath func(string) (string, error)
}

// NewProber returns a prober backed by os/exec.
func NewProber() Prober {
	return Prober{Runner: terminal.CmdRunner{}, LookPath: exec.LookPath}
}

// Probe reports the status of each named tool in order.
func (p Prober) Probe(ctx context.Context, names ...string) []Status {
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
	}

	result := make([]Status, 0, len(names))
	for _, name := range names {
		result = append(result, p.probeOne(ctx, name))
	}
	return result
}

func (p Prober) probeOne(ctx context.Context, name string) Status {
	def, ok := Definition(name)
	if !ok {
		return Status{Tool: name, Error: fmt.Sprintf("unsupported tool: %s", name)}
	}
	status := Status{Tool: name, Minimum: def.MinimumVersion}

	lookPath := p.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	path, err := lookPath(name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			status.Error = "not found"
		} else {
			status.Error = err.Error()
		}
		return status
	}
	status.Path = path
	status.Available = true

	version, err := p.readVersion(ctx, def, path)
	if err != nil {
		status.Error = err.Error()
		return status
	}
	status.Version = version
	status.Satisfied = meetsMinimum(version, def.MinimumVersion)
	if !status.Satisfied {
		status.Error = fmt.Sprintf("version %s below minimum %s", version, def.MinimumVersion)
	}
	return status
}

func (p Prober) readVersion(ctx context.Context, def ToolDefinition, path string) (string, error) {
	runner := p.Runner
	if runner == nil {
		runner = terminal.CmdRunner{}
	}
	res, err := runner.Run(ctx, path, []string{def.VersionSwitch}, terminal.RunOptions{})
	if err != nil {
		return "", fmt.Errorf("%s version: %w", def.Name, err)
	}
	line := firstLine(strings.TrimSpace(string(res.Stdout)))
	return normalizeVersion(line), nil
}
