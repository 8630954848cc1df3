package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"qwikshortcuts/internal/config"
)

func TestResolveUsesFlag(t *testing.T) {
	root := t.TempDir()
	wp, err := Resolve(root)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if wp.Root != root {
		t.Fatalf("got root %s, want %s", wp.Root, root)
	}
	if wp.ManifestFile != filepath.Join(root, "package.json") {
		t.Fatalf("unexpected manifest path %s", wp.ManifestFile)
	}
	if wp.RuntimeRoot != filepath.Join(root, ".qwik-shortcuts") {
		t.Fatalf("unexpected runtime root %s", wp.RuntimeRoot)
	}
	if wp.InstallRoot == "" {
		t.Fatal("expected install root from executable path")
	}
}

func TestApplyConfigRelative(t *testing.T) {
	root := t.TempDir()
	wp := newWorkspacePaths(root)

	cfg := config.Default()
	cfg.Components.Dir = "app/components"
	cfg.Templates.RuntimeRoot = "tpl"

	applied := ApplyConfig(wp, cfg)

	if want := filepath.Join(root, "app/components"); applied.ComponentsDir != want {
		t.Fatalf("expected components dir %s, got %s", want, applied.ComponentsDir)
	}
	if want := filepath.Join(root, "tpl"); applied.RuntimeRoot != want {
		t.Fatalf("expected runtime root %s, got %s", want, applied.RuntimeRoot)
	}
	if applied.InstallRoot != wp.InstallRoot {
		t.Fatalf("expected install root unchanged")
	}
}

func TestApplyConfigAbsolute(t *testing.T) {
	wp := newWorkspacePaths(t.TempDir())
	install := t.TempDir()

	cfg := config.Default()
	cfg.Templates.InstallRoot = install

	applied := ApplyConfig(wp, cfg)
	if applied.InstallRoot != install {
		t.Fatalf("expected install root %s, got %s", install, applied.InstallRoot)
	}
}

func TestComponentFile(t *testing.T) {
	got, err := ComponentFile("/work/src/components", "my-button", "tsx")
	if err != nil {
		t.Fatalf("ComponentFile: %v", err)
	}
	want := filepath.Join("/work", "src", "components", "my-button", "my-button.tsx")
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
	got, err = ComponentFile("/work/src/components", "x", ".jsx")
	if err != nil || got != filepath.Join("/work", "src", "components", "x", "x.jsx") {
		t.Fatalf("leading dot should be ignored, got %s %v", got, err)
	}
}

func TestComponentFileRejectsEscapes(t *testing.T) {
	for _, name := range []string{"", ".", "..", "a/b", "../x"} {
		if _, err := ComponentFile("/work/src/components", name, "tsx"); !errors.Is(err, ErrUnsafeComponentName) {
			t.Errorf("ComponentFile(%q) error = %v, want ErrUnsafeComponentName", name, err)
		}
	}
}

func TestEnsureMetaDirs(t *testing.T) {
	wp := newWorkspacePaths(t.TempDir())
	if err := wp.EnsureMetaDirs(); err != nil {
		t.Fatalf("EnsureMetaDirs: %v", err)
	}
	ok, err := DirExists(wp.TemplatesDir)
	if err != nil || !ok {
		t.Fatalf("expected templates dir, got %v %v", ok, err)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	if ok, _ := Exists(file); ok {
		t.Fatal("expected missing file")
	}
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if ok, _ := Exists(file); !ok {
		t.Fatal("expected file to exist")
	}
	if ok, _ := Exists(dir); !ok {
		t.Fatal("expected directory to exist")
	}
}
