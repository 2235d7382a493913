// Package assets stages textures and the baked lightmap into the
// bundle's meshes/ folder and reports what each mesh ended up with.
package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/NghiemLg/Blender-to-gazebo/internal/models"
	"go.uber.org/zap"
)

// Stager copies per-mesh diffuse textures into the meshes/ folder and
// probes for the fixed-name baked lightmap. Staging faults are
// non-fatal: the mesh degrades to a textureless visual and the run
// continues.
type Stager struct {
	meshesDir string
	lightmap  string
	log       *zap.Logger
}

// NewStager creates a stager for the given meshes directory and
// lightmap filename.
func NewStager(meshesDir, lightmap string, log *zap.Logger) *Stager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Stager{meshesDir: meshesDir, lightmap: lightmap, log: log}
}

// Stage processes the scene's meshes in order and returns the mesh
// entries the document builder consumes. A texture shared by several
// meshes is copied once.
func (s *Stager) Stage(meshes []models.SceneMesh) []models.MeshEntry {
	hasLightmap := s.lightmapPresent()
	copied := make(map[string]bool)

	entries := make([]models.MeshEntry, 0, len(meshes))
	for _, m := range meshes {
		entry := models.MeshEntry{Name: m.Name, HasLightmap: hasLightmap}

		if m.Texture != "" {
			base := filepath.Base(m.Texture)
			if done, seen := copied[m.Texture]; seen {
				entry.HasDiffuse = done
				entry.DiffuseFilename = base
				if !done {
					entry.DiffuseFilename = ""
				}
			} else if err := copyFile(m.Texture, filepath.Join(s.meshesDir, base)); err != nil {
				s.log.Warn("texture staging failed, mesh stays untextured",
					zap.String("mesh", m.Name),
					zap.String("texture", m.Texture),
					zap.Error(err))
				copied[m.Texture] = false
			} else {
				s.log.Info("staged texture",
					zap.String("mesh", m.Name),
					zap.String("file", base))
				entry.HasDiffuse = true
				entry.DiffuseFilename = base
				copied[m.Texture] = true
			}
		}

		entries = append(entries, entry)
	}

	return entries
}

// lightmapPresent probes the meshes folder for the baked lightmap.
func (s *Stager) lightmapPresent() bool {
	path := filepath.Join(s.meshesDir, s.lightmap)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		s.log.Info("no baked lightmap found, shadows stay at their defaults",
			zap.String("path", path))
		return false
	}
	return true
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	return out.Close()
}
