package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NghiemLg/Blender-to-gazebo/internal/models"
	"github.com/NghiemLg/Blender-to-gazebo/internal/sdf"
	"gopkg.in/yaml.v3"
)

// Loader handles loading and validating YAML scene descriptions
type Loader struct{}

// NewLoader creates a new scene loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a scene description file. Relative texture
// paths and a relative output directory resolve against the file's
// own directory, so a scene can be exported from anywhere.
func (l *Loader) Load(configPath string) (*models.SceneConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var scene models.SceneConfig
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	l.applyDefaults(&scene)

	if err := l.Validate(&scene); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}

	absConfigDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scene directory: %w", err)
	}

	for i := range scene.Meshes {
		m := &scene.Meshes[i]
		if m.Texture != "" && !filepath.IsAbs(m.Texture) {
			m.Texture = filepath.Join(absConfigDir, m.Texture)
		}
	}
	if scene.Output != "" && !filepath.IsAbs(scene.Output) {
		scene.Output = filepath.Join(absConfigDir, scene.Output)
	}

	return &scene, nil
}

// applyDefaults fills in the legacy bundle defaults for anything the
// scene leaves unset.
func (l *Loader) applyDefaults(scene *models.SceneConfig) {
	if scene.Model.Name == "" {
		scene.Model.Name = sdf.DefaultModelName
	}
	if scene.Assets.MeshFile == "" {
		scene.Assets.MeshFile = sdf.DefaultMeshFile
	}
	if scene.Assets.Lightmap == "" {
		scene.Assets.Lightmap = sdf.DefaultLightmap
	}
}

// Validate checks if the scene description is valid. An empty mesh
// list is allowed and yields an empty link.
func (l *Loader) Validate(scene *models.SceneConfig) error {
	if strings.ContainsAny(scene.Assets.MeshFile, `/\`) {
		return fmt.Errorf("mesh_file %q must be a plain filename inside %s", scene.Assets.MeshFile, sdf.MeshPrefix)
	}
	if strings.ContainsAny(scene.Assets.Lightmap, `/\`) {
		return fmt.Errorf("lightmap %q must be a plain filename inside %s", scene.Assets.Lightmap, sdf.MeshPrefix)
	}

	for i, m := range scene.Meshes {
		if m.Name == "" {
			return fmt.Errorf("mesh %d: name is required", i)
		}
	}

	return nil
}
