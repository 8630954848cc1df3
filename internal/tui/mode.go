package tui

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
)

// OutputMode describes how prompts and results should be rendered.
type OutputMode int

const (
	// ModeTUI uses bubbletea for interactive prompts.
	ModeTUI OutputMode = iota
	// ModePlain reads lines and writes plain text.
	ModePlain
	// ModeJSON writes structured JSON output.
	ModeJSON
)

// DetectMode determines the appropriate output mode for the given writer.
func DetectMode(out io.Writer, plain, jsonOutput bool) OutputMode {
	if jsonOutput {
		return ModeJSON
	}
	if plain || !isTerminal(out) {
		return ModePlain
	}
	if runtime.GOOS != "windows" {
		term := os.Getenv("TERM")
		if term == "" || strings.EqualFold(term, "dumb") {
			return ModePlain
		}
	}
	return ModeTUI
}

// Interactive reports whether both ends are attached to a terminal.
func Interactive(in io.Reader, out io.Writer) bool {
	return isTerminal(in) && isTerminal(out)
}

type fdHolder interface {
	Fd() uintptr
}

func isTerminal(v any) bool {
	f, ok := v.(fdHolder)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
