package sdf

// Bundle layout and document constants. The filenames and the meshes/
// prefix are fixed parts of the Gazebo model directory contract; the
// defaults can be overridden per scene.
const (
	SchemaVersion    = "1.8"
	SDFFilename      = "model.sdf"
	ManifestFilename = "model.config"
	ManifestVersion  = "1.0"
	AuthorName       = "Generated by blender SDF tools"
	MeshPrefix       = "meshes/"
	LinkName         = "testlink"

	DefaultModelName = "my_model"
	DefaultMeshFile  = "model.dae"
	DefaultLightmap  = "LightmapBaked.png"
)

// Fixed visual material constants: full-bright diffuse, no specular.
const (
	DiffuseColor  = "1 1 1 1"
	SpecularColor = "0 0 0 1"
	LightmapUVSet = "1"
)
