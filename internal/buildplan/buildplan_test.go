package buildplan

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NghiemLg/Blender-to-gazebo/internal/models"
)

func writeScene(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExportEndToEnd(t *testing.T) {
	sceneDir := t.TempDir()
	outDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(sceneDir, "brick.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	scenePath := writeScene(t, sceneDir, `
model:
  name: test_model
meshes:
  - name: OldTree
  - name: Wall
    texture: brick.png
  - name: Statue
    texture: missing.png
`)

	plan := NewPlanner().CreatePlan(scenePath, outDir)
	if err := plan.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	// Both documents and the meshes folder exist.
	sdfData, err := os.ReadFile(filepath.Join(outDir, "model.sdf"))
	if err != nil {
		t.Fatalf("model.sdf missing: %v", err)
	}
	manifestData, err := os.ReadFile(filepath.Join(outDir, "model.config"))
	if err != nil {
		t.Fatalf("model.config missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "meshes", "brick.png")); err != nil {
		t.Errorf("texture was not staged: %v", err)
	}

	var doc models.SDF
	if err := xml.Unmarshal(sdfData, &doc); err != nil {
		t.Fatalf("model.sdf does not parse: %v", err)
	}
	if doc.Model.Name != "test_model" {
		t.Errorf("model name = %q", doc.Model.Name)
	}
	// 3 visuals and 3 collisions: the missing texture degrades the
	// visual, it does not abort or lose the mesh.
	if len(doc.Model.Link.Children) != 6 {
		t.Errorf("got %d link children, want 6", len(doc.Model.Link.Children))
	}

	var manifest models.ModelConfig
	if err := xml.Unmarshal(manifestData, &manifest); err != nil {
		t.Fatalf("model.config does not parse: %v", err)
	}
	if manifest.SDF.Version != doc.Version {
		t.Errorf("manifest schema %q does not match document %q", manifest.SDF.Version, doc.Version)
	}
	if strings.TrimSpace(manifest.SDF.Filename) != "model.sdf" {
		t.Errorf("manifest filename = %q", manifest.SDF.Filename)
	}
}

func TestExportEmptyScene(t *testing.T) {
	outDir := t.TempDir()
	scenePath := writeScene(t, t.TempDir(), "model:\n  name: empty\n")

	if err := NewPlanner().CreatePlan(scenePath, outDir).Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "model.sdf"))
	if err != nil {
		t.Fatal(err)
	}

	var doc models.SDF
	if err := xml.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Model.Static != "true" || len(doc.Model.Link.Children) != 0 {
		t.Errorf("empty scene should yield a static model with an empty link, got %+v", doc.Model)
	}
}

func TestExportInvalidOutputLocation(t *testing.T) {
	scenePath := writeScene(t, t.TempDir(), "meshes:\n  - name: A\n")
	outDir := filepath.Join(t.TempDir(), "does-not-exist")

	err := NewPlanner().CreatePlan(scenePath, outDir).Execute()
	if err == nil {
		t.Fatal("expected an error for a missing output directory")
	}

	// Nothing may have been written.
	if _, statErr := os.Stat(outDir); statErr == nil {
		t.Error("output directory must not be created on failure")
	}
}

func TestExportOutputFromSceneFile(t *testing.T) {
	sceneDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(sceneDir, "out"), 0o755); err != nil {
		t.Fatal(err)
	}

	scenePath := writeScene(t, sceneDir, `
output: ./out
meshes:
  - name: Sidewalk
`)

	if err := NewPlanner().CreatePlan(scenePath, "").Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(sceneDir, "out", "model.sdf")); err != nil {
		t.Errorf("scene-relative output not honored: %v", err)
	}
}
