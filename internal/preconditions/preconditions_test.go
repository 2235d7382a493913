package preconditions

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateOutputDir(t *testing.T) {
	dir := t.TempDir()
	if err := ValidateOutputDir(dir); err != nil {
		t.Errorf("existing directory should validate: %v", err)
	}

	if err := ValidateOutputDir(filepath.Join(dir, "missing")); err == nil {
		t.Error("missing directory should fail")
	}

	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ValidateOutputDir(file); err == nil {
		t.Error("a regular file is not a valid output directory")
	}
}

func TestEnsureMeshesDir(t *testing.T) {
	dir := t.TempDir()

	meshesDir, err := EnsureMeshesDir(dir)
	if err != nil {
		t.Fatalf("EnsureMeshesDir() error: %v", err)
	}
	if meshesDir != filepath.Join(dir, "meshes") {
		t.Errorf("meshes dir = %q", meshesDir)
	}

	info, err := os.Stat(meshesDir)
	if err != nil || !info.IsDir() {
		t.Errorf("meshes dir was not created: %v", err)
	}

	// Idempotent for an already-populated assets folder.
	if _, err := EnsureMeshesDir(dir); err != nil {
		t.Errorf("second call should succeed: %v", err)
	}
}

func TestValidateSceneFile(t *testing.T) {
	dir := t.TempDir()

	scene := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(scene, []byte("meshes: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ValidateSceneFile(scene); err != nil {
		t.Errorf("valid scene file rejected: %v", err)
	}

	if err := ValidateSceneFile(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("missing file should fail")
	}
	if err := ValidateSceneFile(dir); err == nil {
		t.Error("directory should fail")
	}

	txt := filepath.Join(dir, "scene.txt")
	if err := os.WriteFile(txt, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ValidateSceneFile(txt); err == nil {
		t.Error("non-YAML extension should fail")
	}
}
