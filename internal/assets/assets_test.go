package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/NghiemLg/Blender-to-gazebo/internal/models"
)

func TestStageCopiesTextures(t *testing.T) {
	srcDir := t.TempDir()
	meshesDir := t.TempDir()

	texture := filepath.Join(srcDir, "brick.png")
	if err := os.WriteFile(texture, []byte("png bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	stager := NewStager(meshesDir, "LightmapBaked.png", nil)
	entries := stager.Stage([]models.SceneMesh{
		{Name: "Wall", Texture: texture},
		{Name: "Plain"},
	})

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	if !entries[0].HasDiffuse || entries[0].DiffuseFilename != "brick.png" {
		t.Errorf("textured mesh entry = %+v", entries[0])
	}
	if _, err := os.Stat(filepath.Join(meshesDir, "brick.png")); err != nil {
		t.Errorf("texture was not copied: %v", err)
	}

	if entries[1].HasDiffuse {
		t.Error("mesh without texture should not report a diffuse map")
	}
}

func TestStageMissingTextureDegrades(t *testing.T) {
	meshesDir := t.TempDir()
	stager := NewStager(meshesDir, "LightmapBaked.png", nil)

	entries := stager.Stage([]models.SceneMesh{
		{Name: "Wall", Texture: filepath.Join(t.TempDir(), "missing.png")},
	})

	if entries[0].HasDiffuse {
		t.Error("missing texture must degrade the mesh, not fail the run")
	}
	if entries[0].Name != "Wall" {
		t.Errorf("entry name = %q", entries[0].Name)
	}
}

func TestStageSharedTextureCopiedOnce(t *testing.T) {
	srcDir := t.TempDir()
	meshesDir := t.TempDir()

	texture := filepath.Join(srcDir, "shared.png")
	if err := os.WriteFile(texture, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	stager := NewStager(meshesDir, "LightmapBaked.png", nil)
	entries := stager.Stage([]models.SceneMesh{
		{Name: "A", Texture: texture},
		{Name: "B", Texture: texture},
	})

	for i, e := range entries {
		if !e.HasDiffuse || e.DiffuseFilename != "shared.png" {
			t.Errorf("entry %d = %+v", i, e)
		}
	}
}

func TestStageLightmapProbe(t *testing.T) {
	meshesDir := t.TempDir()

	stager := NewStager(meshesDir, "LightmapBaked.png", nil)
	entries := stager.Stage([]models.SceneMesh{{Name: "Floor"}})
	if entries[0].HasLightmap {
		t.Error("no lightmap staged, entry should not report one")
	}

	if err := os.WriteFile(filepath.Join(meshesDir, "LightmapBaked.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries = stager.Stage([]models.SceneMesh{{Name: "Floor"}})
	if !entries[0].HasLightmap {
		t.Error("staged lightmap should be reported on every mesh")
	}
}
