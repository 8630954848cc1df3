package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"qwikshortcuts/internal/config"
)

// Canonical file and directory names inside a workspace.
const (
	ManifestName = "package.json"
	ConfigName   = ".qwik-shortcuts.yaml"
	EnvName      = ".env"
	MetaDirName  = ".qwik-shortcuts"
)

// WorkspacePaths captures canonical locations for a workspace.
type WorkspacePaths struct {
	Root          string
	ManifestFile  string
	ConfigFile    string
	EnvFile       string
	MetaDir       string
	TemplatesDir  string
	ComponentsDir string
	InstallRoot   string
	RuntimeRoot   string
}

// Resolve determines the workspace root using the optional --workspace flag
// or the current working directory when the flag is empty.
func Resolve(workspaceFlag string) (WorkspacePaths, error) {
	var (
		root string
		err  error
	)

	if workspaceFlag != "" {
		root, err = filepath.Abs(workspaceFlag)
	} else {
		root, err = os.Getwd()
	}
	if err != nil {
		return WorkspacePaths{}, fmt.Errorf("resolve workspace root: %w", err)
	}

	return newWorkspacePaths(root), nil
}

func newWorkspacePaths(root string) WorkspacePaths {
	metaDir := filepath.Join(root, MetaDirName)
	return WorkspacePaths{
		Root:          root,
		ManifestFile:  filepath.Join(root, ManifestName),
		ConfigFile:    filepath.Join(root, ConfigName),
		EnvFile:       filepath.Join(root, EnvName),
		MetaDir:       metaDir,
		TemplatesDir:  filepath.Join(metaDir, "templates"),
		ComponentsDir: filepath.Join(root, "src", "components"),
		InstallRoot:   installRoot(),
		RuntimeRoot:   metaDir,
	}
}

// installRoot is the directory holding the running executable.
func installRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// ApplyConfig overrides locations set in the configuration. Relative values
// are resolved against the workspace root.
func ApplyConfig(wp WorkspacePaths, cfg config.Config) WorkspacePaths {
	if dir := strings.TrimSpace(cfg.Components.Dir); dir != "" {
		wp.ComponentsDir = resolveWorkspacePath(wp.Root, dir)
	}
	if root := strings.TrimSpace(cfg.Templates.InstallRoot); root != "" {
		wp.InstallRoot = resolveWorkspacePath(wp.Root, root)
	}
	if root := strings.TrimSpace(cfg.Templates.RuntimeRoot); root != "" {
		wp.RuntimeRoot = resolveWorkspacePath(wp.Root, root)
	}
	return wp
}

// ErrUnsafeComponentName is returned for names that would not give the
// component its own directory under the components root.
var ErrUnsafeComponentName = errors.New("component name must be a single path element other than '.' or '..'")

// ComponentFile returns <dir>/<name>/<name>.<ext>. The result always stays
// inside dir.
func ComponentFile(dir, name, ext string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return "", fmt.Errorf("%w: %q", ErrUnsafeComponentName, name)
	}
	target := filepath.Join(dir, name, name+"."+strings.TrimPrefix(ext, "."))
	rel, err := filepath.Rel(dir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrUnsafeComponentName, name)
	}
	return target, nil
}

func resolveWorkspacePath(root, value string) string {
	if filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return filepath.Join(root, value)
}

// EnsureMetaDirs creates the hidden .qwik-shortcuts directory and its
// templates subdirectory.
func (p WorkspacePaths) EnsureMetaDirs() error {
	for _, dir := range []string{p.MetaDir, p.TemplatesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GlobalDir returns the user-level directory (~/.qwik-shortcuts).
// It creates the directory if it does not exist.
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("detect user home: %w", err)
	}
	dir := filepath.Join(home, MetaDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create global dir: %w", err)
	}
	return dir, nil
}

// GlobalLogsDir returns the global logs directory (~/.qwik-shortcuts/logs).
// It creates the directory if it does not exist.
func GlobalLogsDir() (string, error) {
	global, err := GlobalDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(global, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create global logs dir: %w", err)
	}
	return dir, nil
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// DirExists reports whether a path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// Exists reports whether anything exists at path.
func Exists(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
