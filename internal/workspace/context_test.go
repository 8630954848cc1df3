package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qwikshortcuts/internal/project"
)

const coreManifest = `{"devDependencies": {"@qwik.dev/router": "2.0.0"}}`

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestLoad(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		ctx := Load(filepath.Join(t.TempDir(), "nope"), nil)
		assert.False(t, ctx.Exists)
		assert.Equal(t, project.KindUnknown, ctx.Classification.Kind())
		assert.False(t, ctx.HasPackageManager)
	})

	t.Run("empty root", func(t *testing.T) {
		assert.False(t, Load("", nil).Exists)
	})

	t.Run("qwik workspace with pnpm", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "package.json"), coreManifest)
		writeFile(t, filepath.Join(root, "pnpm-lock.yaml"), "")

		ctx := Load(root, nil)
		assert.True(t, ctx.Exists)
		assert.Equal(t, project.KindCore, ctx.Classification.Kind())
		assert.True(t, ctx.HasPackageManager)
		assert.Equal(t, project.PNPM, ctx.PackageManager)
	})

	t.Run("broken manifest", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "package.json"), "{")

		ctx := Load(root, nil)
		assert.True(t, ctx.Exists)
		assert.Equal(t, project.KindUnknown, ctx.Classification.Kind())
		assert.NotEmpty(t, ctx.Classification.ManifestError)
	})
}

func TestWatched(t *testing.T) {
	ctx := Context{Markers: project.DefaultMarkers()}
	assert.True(t, ctx.Watched("/w/package.json"))
	assert.True(t, ctx.Watched("/w/bun.lock"))
	assert.False(t, ctx.Watched("/w/README.md"))
	assert.False(t, ctx.Watched("/w/src/package.json.bak"))
}
