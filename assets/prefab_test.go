package assets_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajwinter/amethyst/assets"
	"github.com/ajwinter/amethyst/core"
	"github.com/ajwinter/amethyst/ecs"
	"github.com/ajwinter/amethyst/renderer"
)

// sceneYaml has no texture references so the load stays off the GPU.
const sceneYaml = `entities:
  - name: camera
    transform:
      translation: [0.0, 0.0, 10.0]
    camera:
      width: 8.0
      height: 4.5

  - name: pane
    transform:
      translation: [0.5, 0.5, 1.0]
      scale: [3.0, 3.0, 1.0]
      rotation_z: 0.25
    transparent: true
`

func newSceneStorage() *ecs.Storage {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[core.Named](registry)
	ecs.RegisterComponent[core.Transform](registry)
	ecs.RegisterComponent[renderer.Camera](registry)
	ecs.RegisterComponent[renderer.SpriteRender](registry)
	ecs.RegisterComponent[renderer.Transparent](registry)
	return ecs.NewStorage(registry)
}

func writeAsset(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func waitForBatch(t *testing.T, progress *assets.ProgressCounter) assets.Completion {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if state := progress.Complete(); state != assets.CompletionLoading {
			return state
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("asset batch did not settle")
	return assets.CompletionLoading
}

func TestLoadPrefab(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "prefab/scene.yaml", sceneYaml)

	loader := assets.NewLoader(dir, zerolog.Nop())
	progress := &assets.ProgressCounter{}

	handle := loader.LoadPrefab("prefab/scene.yaml", progress)
	require.Equal(t, assets.CompletionComplete, waitForBatch(t, progress))

	prefab := handle.Prefab()
	require.NotNil(t, prefab)
	require.Len(t, prefab.Entities, 2)
	assert.Equal(t, "camera", prefab.Entities[0].Name)
	assert.True(t, prefab.Entities[1].Transparent)
}

func TestLoadPrefabMissingFile(t *testing.T) {
	loader := assets.NewLoader(t.TempDir(), zerolog.Nop())
	progress := &assets.ProgressCounter{}

	handle := loader.LoadPrefab("prefab/absent.yaml", progress)
	assert.Equal(t, assets.CompletionFailed, waitForBatch(t, progress))
	assert.Nil(t, handle.Prefab())
	assert.NotEmpty(t, progress.Errors())
}

func TestLoadPrefabMalformed(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "prefab/bad.yaml", "entities: }{")

	loader := assets.NewLoader(dir, zerolog.Nop())
	progress := &assets.ProgressCounter{}

	handle := loader.LoadPrefab("prefab/bad.yaml", progress)
	assert.Equal(t, assets.CompletionFailed, waitForBatch(t, progress))
	assert.Nil(t, handle.Prefab())
}

func TestPrefabInstantiate(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "prefab/scene.yaml", sceneYaml)

	loader := assets.NewLoader(dir, zerolog.Nop())
	progress := &assets.ProgressCounter{}

	handle := loader.LoadPrefab("prefab/scene.yaml", progress)
	require.Equal(t, assets.CompletionComplete, waitForBatch(t, progress))

	storage := newSceneStorage()
	ids := handle.Prefab().Instantiate(storage)
	require.Len(t, ids, 2)

	cameraId, ok := core.FindNamed(storage, "camera")
	require.True(t, ok)

	camera := ecs.ReadComponent[renderer.Camera](storage, cameraId)
	require.NotNil(t, camera)
	assert.Equal(t, 8.0, camera.Width)
	assert.Equal(t, 4.5, camera.Height)

	transform := ecs.ReadComponent[core.Transform](storage, cameraId)
	require.NotNil(t, transform)
	assert.Equal(t, 10.0, transform.Translation.Z())

	paneId, ok := core.FindNamed(storage, "pane")
	require.True(t, ok)

	pane := ecs.ReadComponent[core.Transform](storage, paneId)
	require.NotNil(t, pane)
	assert.Equal(t, 3.0, pane.Scale.X())
	assert.InDelta(t, 0.25, pane.RotationAngleZ(), 1e-12)
	assert.NotNil(t, ecs.ReadComponent[renderer.Transparent](storage, paneId))
}

func TestLoaderReadFile(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "notes.txt", "hello")

	loader := assets.NewLoader(dir, zerolog.Nop())
	assert.Equal(t, dir, loader.Root())

	data, err := loader.ReadFile("notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = loader.ReadFile("absent.txt")
	assert.Error(t, err)
}
