package project

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `{"name": "site", "dependencies": {"astro": "5.0.0"}, "devDependencies": {"@qwik.dev/core": "2.0.0"}}`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Name != "site" {
		t.Fatalf("got name %q", m.Name)
	}
	if !m.HasDependency("astro") || m.HasDependency("@qwik.dev/core") {
		t.Fatalf("unexpected dependencies %+v", m.Dependencies)
	}
	if !m.HasDevDependency("@qwik.dev/core") || m.HasDevDependency("astro") {
		t.Fatalf("unexpected devDependencies %+v", m.DevDependencies)
	}
}

func TestLoadManifestErrors(t *testing.T) {
	if _, err := LoadManifest(filepath.Join(t.TempDir(), "package.json")); err == nil || !strings.Contains(err.Error(), "read manifest") {
		t.Fatalf("expected read error, got %v", err)
	}
	path := writeManifest(t, `{"dependencies": [`)
	if _, err := LoadManifest(path); err == nil || !strings.Contains(err.Error(), "parse manifest") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestManifestNilMaps(t *testing.T) {
	var m Manifest
	if m.HasDependency("x") || m.HasDevDependency("x") {
		t.Fatal("expected empty manifest to report nothing")
	}
}
