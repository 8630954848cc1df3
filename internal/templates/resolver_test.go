package templates

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func file(body string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(body)}
}

func TestResolverFirstSuccessWins(t *testing.T) {
	install := fstest.MapFS{"templates/TSXComponent.txt": file("install")}
	runtime := fstest.MapFS{"templates/TSXComponent.txt": file("runtime")}

	r, err := NewResolver(nil, 0,
		DirFS("install", "/opt/qs", install),
		DirFS("runtime", "/work/.qwik-shortcuts", runtime),
	)
	if err != nil {
		t.Fatal(err)
	}

	m, err := r.Resolve("TSXComponent.txt")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if m.Strategy != "install" {
		t.Fatalf("got strategy %s, want install", m.Strategy)
	}
	if m.Path != filepath.Join("/opt/qs", "templates", "TSXComponent.txt") {
		t.Fatalf("unexpected path %s", m.Path)
	}
	data, err := m.Read()
	if err != nil || string(data) != "install" {
		t.Fatalf("Read = %q, %v", data, err)
	}
}

func TestResolverFallsThroughToWalk(t *testing.T) {
	runtime := fstest.MapFS{
		"nested/deeper/JSXComponent.txt": file("walked"),
	}
	r, err := NewResolver(nil, 0,
		DirFS("install", "/opt", fstest.MapFS{}),
		DirFS("runtime", "/rt", runtime),
		WalkFS("runtime-search", "/rt", runtime),
	)
	if err != nil {
		t.Fatal(err)
	}
	m, err := r.Resolve("JSXComponent.txt")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if m.Strategy != "runtime-search" {
		t.Fatalf("got strategy %s", m.Strategy)
	}
}

func TestResolverNotFound(t *testing.T) {
	r, err := NewResolver(nil, 0, DefaultStrategies(t.TempDir(), t.TempDir(), false)...)
	if err != nil {
		t.Fatal(err)
	}
	_, err = r.Resolve("TSXComponent.txt")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("got %v, want ErrTemplateNotFound", err)
	}
}

func TestResolverBuiltinFallback(t *testing.T) {
	r, err := NewResolver(nil, 0, DefaultStrategies("", "", true)...)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"TSXComponent.txt", "JSXComponent.txt"} {
		m, err := r.Resolve(name)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", name, err)
		}
		if m.Strategy != "builtin" {
			t.Fatalf("got strategy %s, want builtin", m.Strategy)
		}
	}
}

func TestWalkSkipsHiddenAndPrivate(t *testing.T) {
	fsys := fstest.MapFS{
		".cache/TSXComponent.txt":        file("hidden"),
		"_drafts/TSXComponent.txt":       file("private"),
		"a/deep/x/TSXComponent.txt":      file("first"),
		"b/TSXComponent.txt":             file("second"),
		"node_modules/TSXComponent.text": file("wrong suffix"),
	}
	m, ok := WalkFS("walk", "/root", fsys).Find("TSXComponent.txt")
	if !ok {
		t.Fatal("expected a match")
	}
	data, _ := m.Read()
	if string(data) != "first" {
		t.Fatalf("got %q, want depth-first match from a/", data)
	}
}

func TestWalkMatchesSuffix(t *testing.T) {
	fsys := fstest.MapFS{"src/MyTSXComponent.txt": file("suffix")}
	m, ok := WalkFS("walk", "/root", fsys).Find("TSXComponent.txt")
	if !ok {
		t.Fatal("expected suffix match")
	}
	if m.Path != filepath.Join("/root", "src", "MyTSXComponent.txt") {
		t.Fatalf("unexpected path %s", m.Path)
	}
}

func TestWalkDoesNotFollowSymlinkedDirectories(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	if err := os.WriteFile(filepath.Join(outside, "TSXComponent.txt"), []byte("outside"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(outside, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	if _, ok := Walk("walk", root).Find("TSXComponent.txt"); ok {
		t.Fatal("expected symlinked directory to be skipped")
	}
}

func TestWalkAcceptsSymlinkedFile(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(t.TempDir(), "real.txt")
	if err := os.WriteFile(target, []byte("linked file"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, filepath.Join(root, "TSXComponent.txt")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	m, ok := Walk("walk", root).Find("TSXComponent.txt")
	if !ok {
		t.Fatal("expected symlinked file to match")
	}
	data, err := m.Read()
	if err != nil || string(data) != "linked file" {
		t.Fatalf("Read = %q, %v", data, err)
	}
}

func TestResolverCacheDropsVanishedTemplate(t *testing.T) {
	runtime := t.TempDir()
	install := t.TempDir()
	first := filepath.Join(runtime, "templates", "TSXComponent.txt")
	if err := os.MkdirAll(filepath.Dir(first), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(first, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := NewResolver(nil, 4, DefaultStrategies(install, runtime, false)...)
	if err != nil {
		t.Fatal(err)
	}
	m, err := r.Resolve("TSXComponent.txt")
	if err != nil || m.Path != first {
		t.Fatalf("Resolve = %+v, %v", m, err)
	}

	if err := os.Remove(first); err != nil {
		t.Fatal(err)
	}
	second := filepath.Join(install, "lib", "TSXComponent.txt")
	if err := os.MkdirAll(filepath.Dir(second), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err = r.Resolve("TSXComponent.txt")
	if err != nil {
		t.Fatalf("Resolve after removal: %v", err)
	}
	if m.Path != second || m.Strategy != "install-search" {
		t.Fatalf("got %+v, want install-search match", m)
	}
}

func TestTraceReportsEveryStrategy(t *testing.T) {
	r, err := NewResolver(nil, 0, DefaultStrategies("", "", true)...)
	if err != nil {
		t.Fatal(err)
	}
	attempts := r.Trace("JSXComponent.txt")
	if len(attempts) != 5 {
		t.Fatalf("got %d attempts, want 5", len(attempts))
	}
	for _, a := range attempts[:4] {
		if a.Found {
			t.Fatalf("unexpected match for %s", a.Strategy)
		}
	}
	if !attempts[4].Found || attempts[4].Strategy != "builtin" {
		t.Fatalf("unexpected builtin attempt %+v", attempts[4])
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("tsx"); got != "TSXComponent.txt" {
		t.Fatalf("got %s", got)
	}
	if got := FileName(".jsx"); got != "JSXComponent.txt" {
		t.Fatalf("got %s", got)
	}
}
