package templates

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed builtin/*.txt
var builtinFS embed.FS

// Match is a located template.
type Match struct {
	Strategy string
	Path     string

	fsys fs.FS
	name string
}

// Read returns the template contents.
func (m Match) Read() ([]byte, error) {
	return fs.ReadFile(m.fsys, m.name)
}

func (m Match) exists() bool {
	if m.fsys == nil {
		return false
	}
	info, err := fs.Stat(m.fsys, m.name)
	return err == nil && !info.IsDir()
}

// Strategy is one step of the template search. Find reports a definite
// found or not-found; I/O failures count as not found.
type Strategy interface {
	Name() string
	Find(fileName string) (Match, bool)
}

type dirStrategy struct {
	label string
	root  string
	fsys  fs.FS
}

// Dir looks for templates/<file> directly under root.
func Dir(label, root string) Strategy {
	if root == "" {
		return dirStrategy{label: label}
	}
	return DirFS(label, root, os.DirFS(root))
}

// DirFS is Dir over an arbitrary filesystem; root is used for display.
func DirFS(label, root string, fsys fs.FS) Strategy {
	return dirStrategy{label: label, root: root, fsys: fsys}
}

func (d dirStrategy) Name() string { return d.label }

func (d dirStrategy) Find(fileName string) (Match, bool) {
	if d.fsys == nil {
		return Match{}, false
	}
	name := path.Join("templates", fileName)
	info, err := fs.Stat(d.fsys, name)
	if err != nil || info.IsDir() {
		return Match{}, false
	}
	return Match{
		Strategy: d.label,
		Path:     filepath.Join(d.root, filepath.FromSlash(name)),
		fsys:     d.fsys,
		name:     name,
	}, true
}

type walkStrategy struct {
	label string
	root  string
	fsys  fs.FS
}

// Walk searches root depth-first for a file whose name ends with the
// template file name. Entries starting with "." or "_" are skipped and
// symlinked directories are not followed.
func Walk(label, root string) Strategy {
	if root == "" {
		return walkStrategy{label: label}
	}
	return WalkFS(label, root, os.DirFS(root))
}

// WalkFS is Walk over an arbitrary filesystem; root is used for display.
func WalkFS(label, root string, fsys fs.FS) Strategy {
	return walkStrategy{label: label, root: root, fsys: fsys}
}

func (w walkStrategy) Name() string { return w.label }

func (w walkStrategy) Find(fileName string) (Match, bool) {
	if w.fsys == nil {
		return Match{}, false
	}
	name, ok := searchFile(w.fsys, ".", fileName)
	if !ok {
		return Match{}, false
	}
	return Match{
		Strategy: w.label,
		Path:     filepath.Join(w.root, filepath.FromSlash(name)),
		fsys:     w.fsys,
		name:     name,
	}, true
}

func searchFile(fsys fs.FS, dir, fileName string) (string, bool) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}
		full := path.Join(dir, name)

		switch {
		case entry.IsDir():
			if found, ok := searchFile(fsys, full, fileName); ok {
				return found, true
			}
		case entry.Type()&fs.ModeSymlink != 0:
			if !strings.HasSuffix(name, fileName) {
				continue
			}
			info, err := fs.Stat(fsys, full)
			if err == nil && info.Mode().IsRegular() {
				return full, true
			}
		case strings.HasSuffix(name, fileName):
			return full, true
		}
	}
	return "", false
}

type builtinStrategy struct{}

// Builtin serves the templates compiled into the binary.
func Builtin() Strategy { return builtinStrategy{} }

func (builtinStrategy) Name() string { return "builtin" }

func (builtinStrategy) Find(fileName string) (Match, bool) {
	name := path.Join("builtin", fileName)
	if _, err := fs.Stat(builtinFS, name); err != nil {
		return Match{}, false
	}
	return Match{
		Strategy: "builtin",
		Path:     "builtin:" + fileName,
		fsys:     builtinFS,
		name:     name,
	}, true
}

// BuiltinFiles lists the embedded template file names.
func BuiltinFiles() []string {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// ReadBuiltin returns an embedded template by file name.
func ReadBuiltin(fileName string) ([]byte, error) {
	return fs.ReadFile(builtinFS, path.Join("builtin", fileName))
}

// DefaultStrategies builds the search order: the install root's templates
// directory, the runtime root's templates directory, a walk of the runtime
// root, a walk of the install root, and optionally the embedded templates.
func DefaultStrategies(installRoot, runtimeRoot string, builtin bool) []Strategy {
	strategies := []Strategy{
		Dir("install", installRoot),
		Dir("runtime", runtimeRoot),
		Walk("runtime-search", runtimeRoot),
		Walk("install-search", installRoot),
	}
	if builtin {
		strategies = append(strategies, Builtin())
	}
	return strategies
}
