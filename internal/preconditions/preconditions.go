package preconditions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateOutputDir checks that the chosen output location exists and
// is a directory. This is a hard stop before anything is written.
func ValidateOutputDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s is not a valid output directory: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

// EnsureMeshesDir creates the meshes asset subfolder inside the output
// directory if it does not exist yet and returns its path.
func EnsureMeshesDir(outputDir string) (string, error) {
	meshesDir := filepath.Join(outputDir, "meshes")
	if err := os.MkdirAll(meshesDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", meshesDir, err)
	}
	return meshesDir, nil
}

// ValidateSceneFile checks that the scene description exists, is a
// regular file and looks like YAML.
func ValidateSceneFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access scene file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a scene file", path)
	}
	if !isYAMLFile(path) {
		return fmt.Errorf("%s is not a scene file (must end in .yaml or .yml)", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot read scene file %s: %w", path, err)
	}
	file.Close()

	return nil
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
