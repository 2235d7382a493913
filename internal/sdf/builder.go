package sdf

import (
	"strconv"

	"github.com/NghiemLg/Blender-to-gazebo/internal/material"
	"github.com/NghiemLg/Blender-to-gazebo/internal/models"
	"go.uber.org/zap"
)

// Builder assembles the scene description document for one export
// run: a single static model with one link holding visual/collision
// descriptor pairs in mesh order.
type Builder struct {
	modelName   string
	meshURI     string
	lightmapURI string
	log         *zap.Logger
}

// NewBuilder creates a builder for the given model. meshFile and
// lightmapFile are basenames inside the meshes/ asset folder.
func NewBuilder(modelName, meshFile, lightmapFile string, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		modelName:   modelName,
		meshURI:     MeshPrefix + meshFile,
		lightmapURI: MeshPrefix + lightmapFile,
		log:         log,
	}
}

// Build transforms the mesh list into a complete document tree. It is
// a pure transform: running it twice on the same list yields
// structurally identical documents. An empty list yields one static
// model with one empty link.
func (b *Builder) Build(meshes []models.MeshEntry) *models.SDF {
	link := models.Link{Name: LinkName}
	used := make(map[string]struct{})

	for _, mesh := range meshes {
		visual := b.buildVisual(mesh)
		link.Children = append(link.Children, visual)

		// The collision must sit immediately after its visual.
		if collision, ok := b.Synthesize(visual, used); ok {
			link.Children = append(link.Children, collision)
		}
	}

	return &models.SDF{
		Version: SchemaVersion,
		Model: models.Model{
			Name:   b.modelName,
			Static: "true",
			Link:   link,
		},
	}
}

// buildVisual creates the renderable descriptor for one mesh. The
// mesh's own name serves as both the visual identifier and the
// submesh reference; legacy documents never sanitized it, so neither
// do we, but a name that would not survive sanitization is flagged.
func (b *Builder) buildVisual(mesh models.MeshEntry) models.Visual {
	if Sanitize(mesh.Name) != mesh.Name {
		b.log.Warn("visual name is not a clean identifier, keeping as-is",
			zap.String("mesh", mesh.Name))
	}

	visual := models.Visual{
		Name: mesh.Name,
		Geometry: &models.Geometry{
			Mesh: models.MeshRef{
				URI:     b.meshURI,
				Submesh: models.Submesh{Name: mesh.Name},
			},
		},
	}

	if mesh.HasDiffuse {
		visual.Material = &models.Material{
			Diffuse:  DiffuseColor,
			Specular: SpecularColor,
			PBR: &models.PBR{
				Metal: models.Metal{
					AlbedoMap: MeshPrefix + mesh.DiffuseFilename,
				},
			},
		}
	}

	if mesh.HasLightmap {
		if visual.Material == nil {
			// Minimal material so the light map has somewhere to live.
			visual.Material = &models.Material{PBR: &models.PBR{}}
		}
		if visual.Material.PBR == nil {
			visual.Material.PBR = &models.PBR{}
		}
		visual.Material.PBR.Metal.LightMap = &models.LightMap{
			UVSet: LightmapUVSet,
			URI:   b.lightmapURI,
		}
		off := false
		visual.CastShadows = &off
	}

	return visual
}

// Synthesize produces the collision descriptor for a visual, or
// nothing when the sanitized identifier is already taken (dedupe
// guard) or the visual lacks a geometry reference. The caller-owned
// used set is mutated on success only.
func (b *Builder) Synthesize(visual models.Visual, used map[string]struct{}) (models.Collision, bool) {
	name := Sanitize("col_" + visual.Name)

	if _, taken := used[name]; taken {
		b.log.Warn("collision identifier already in use, visual stays uncollided",
			zap.String("mesh", visual.Name),
			zap.String("collision", name))
		return models.Collision{}, false
	}

	if visual.Geometry == nil {
		b.log.Warn("visual has no geometry reference, skipping collision",
			zap.String("mesh", visual.Name))
		return models.Collision{}, false
	}

	// Classification works on the unsanitized display name.
	category := material.Classify(visual.Name)
	preset := material.PresetFor(category)

	geometry := *visual.Geometry
	collision := models.Collision{
		Name:     name,
		Geometry: &geometry,
		Surface:  buildSurface(preset),
	}

	used[name] = struct{}{}
	return collision, true
}

func buildSurface(preset material.Preset) models.Surface {
	friction := models.FrictionODE{
		Mu:  formatFloat(preset.Mu),
		Mu2: formatFloat(preset.Mu2),
	}
	if preset.HasSlip {
		friction.Slip1 = formatFloat(preset.Slip1)
		friction.Slip2 = formatFloat(preset.Slip2)
	}

	return models.Surface{
		Friction: models.Friction{ODE: friction},
		Bounce: models.Bounce{
			RestitutionCoefficient: formatFloat(preset.Restitution),
			Threshold:              formatFloat(material.BounceThreshold),
		},
		Contact: models.Contact{ODE: models.ContactODE{
			Kp: formatFloat(material.ContactKp),
			Kd: formatFloat(material.ContactKd),
		}},
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
