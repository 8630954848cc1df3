package project

import (
	"os"
	"path/filepath"
	"strings"
)

// PackageManager identifies the tool that manages a workspace.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	PNPM PackageManager = "pnpm"
	Bun  PackageManager = "bun"
)

// Marker ties a package manager to the lockfile that reveals it.
type Marker struct {
	Manager  PackageManager
	FileName string
}

// MarkerTable is ordered; earlier entries win when several lockfiles exist.
type MarkerTable []Marker

// DefaultMarkers is the detection order npm, yarn, pnpm, bun.
func DefaultMarkers() MarkerTable {
	return MarkerTable{
		{Manager: NPM, FileName: "package-lock.json"},
		{Manager: Yarn, FileName: "yarn.lock"},
		{Manager: PNPM, FileName: "pnpm-lock.yaml"},
		{Manager: Bun, FileName: "bun.lock"},
	}
}

// FileNames lists the marker file names in table order.
func (t MarkerTable) FileNames() []string {
	names := make([]string, len(t))
	for i, m := range t {
		names[i] = m.FileName
	}
	return names
}

// Contains reports whether name is one of the marker file names.
func (t MarkerTable) Contains(name string) bool {
	for _, m := range t {
		if m.FileName == name {
			return true
		}
	}
	return false
}

// String joins the marker file names with commas.
func (t MarkerTable) String() string {
	return strings.Join(t.FileNames(), ",")
}

// DetectPackageManager returns the first manager whose marker file exists
// directly under root. Only existence is checked.
func DetectPackageManager(root string, markers MarkerTable) (PackageManager, bool) {
	for _, m := range markers {
		info, err := os.Stat(filepath.Join(root, m.FileName))
		if err != nil || info.IsDir() {
			continue
		}
		return m.Manager, true
	}
	return "", false
}
