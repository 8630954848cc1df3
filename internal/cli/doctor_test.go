package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"qwikshortcuts/internal/config"
	"qwikshortcuts/internal/paths"
	"qwikshortcuts/internal/project"
	"qwikshortcuts/internal/terminal"
	"qwikshortcuts/internal/tools"
	"qwikshortcuts/internal/workspace"
)

func TestJoinComma(t *testing.T) {
	tests := []struct {
		input []string
		want  string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "a, b"},
		{[]string{"a", "b", "c"}, "a, b, c"},
	}

	for _, tt := range tests {
		got := joinComma(tt.input)
		if got != tt.want {
			t.Errorf("joinComma(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCheckConfigWithError(t *testing.T) {
	wp, _ := paths.Resolve(t.TempDir())
	var emptyCfg config.Config
	result := checkConfig(wp, emptyCfg, fmt.Errorf("config file not found"))

	if result.Status != "error" {
		t.Errorf("got status=%q, want error", result.Status)
	}
	if result.Name != "Config" {
		t.Errorf("got name=%q, want Config", result.Name)
	}
}

func TestCheckConfigValid(t *testing.T) {
	wp, _ := paths.Resolve(t.TempDir())
	result := checkConfig(wp, config.Default(), nil)

	if result.Status != "ok" {
		t.Errorf("got status=%q, want ok (%s)", result.Status, result.Summary)
	}
	if result.Summary != "run qwik new, terminal exec" {
		t.Errorf("got summary=%q", result.Summary)
	}
}

func TestCheckPackageManagerMissing(t *testing.T) {
	ws := workspace.Load(t.TempDir(), project.DefaultMarkers())
	result := checkPackageManager(ws)
	if result.Status != "error" {
		t.Fatalf("got status=%q, want error", result.Status)
	}
	if result.Summary != "Package manager was not found, package-lock.json,yarn.lock,pnpm-lock.yaml,bun.lock" {
		t.Fatalf("got summary=%q", result.Summary)
	}
}

func TestCheckTemplatesBuiltin(t *testing.T) {
	wp, _ := paths.Resolve(t.TempDir())
	wp.InstallRoot = ""
	result := checkTemplates(wp, config.Default())
	if result.Status != "ok" {
		t.Fatalf("got status=%q (%s)", result.Status, result.Summary)
	}
	if !strings.Contains(result.Summary, "TSXComponent.txt (builtin)") {
		t.Fatalf("got summary=%q", result.Summary)
	}

	cfg := config.Default()
	disabled := false
	cfg.Templates.Builtin = &disabled
	if result := checkTemplates(wp, cfg); result.Status != "error" {
		t.Fatalf("expected missing templates, got %+v", result)
	}
}

type stubRunner struct{}

func (stubRunner) Run(_ context.Context, _ string, _ []string, _ terminal.RunOptions) (terminal.RunResult, error) {
	return terminal.RunResult{Stdout: []byte("v22.1.0\n")}, nil
}

func TestDoctorCommandJSON(t *testing.T) {
	prevWorkspace, prevJSON, prevProber := workspaceDir, outputJSON, newProber
	defer func() {
		workspaceDir, outputJSON, newProber = prevWorkspace, prevJSON, prevProber
	}()
	newProber = func() tools.Prober {
		return tools.Prober{
			Runner:   stubRunner{},
			LookPath: func(name string) (string, error) { return "/bin/" + name, nil },
		}
	}

	workspaceDir = t.TempDir()
	outputJSON = true
	writeTestFile(t, filepath.Join(workspaceDir, "package.json"), `{"name": "site", "devDependencies": {"@qwik.dev/router": "2.0.0"}}`)
	writeTestFile(t, filepath.Join(workspaceDir, "pnpm-lock.yaml"), "")

	cmd := newDoctorCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("doctor returned error: %v", err)
	}

	var checks []healthCheck
	if err := json.Unmarshal(stdout.Bytes(), &checks); err != nil {
		t.Fatalf("decode: %v\n%s", err, stdout.String())
	}
	got := map[string]string{}
	for _, c := range checks {
		got[c.Name] = c.Status
	}
	for _, name := range []string{"Workspace", "Manifest", "Project", "Packages", "Tools", "Config", "Templates"} {
		if got[name] != "ok" {
			t.Errorf("check %s = %q, want ok (%+v)", name, got[name], checks)
		}
	}
}

func TestDoctorMissingWorkspace(t *testing.T) {
	prevWorkspace, prevJSON := workspaceDir, outputJSON
	defer func() { workspaceDir, outputJSON = prevWorkspace, prevJSON }()

	workspaceDir = filepath.Join(t.TempDir(), "missing")
	outputJSON = false

	cmd := newDoctorCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("doctor returned error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Workspace not found.") {
		t.Fatalf("expected workspace error, got %q", stdout.String())
	}
	if strings.Contains(stdout.String(), "Manifest") {
		t.Fatalf("expected doctor to stop after workspace check, got %q", stdout.String())
	}
}

func writeTestFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}
