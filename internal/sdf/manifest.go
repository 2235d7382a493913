package sdf

import "github.com/NghiemLg/Blender-to-gazebo/internal/models"

// NewManifest builds the companion manifest document. The schema
// version must match the scene document and the filename must point at
// it; author and manifest version are fixed.
func NewManifest(modelName, schemaVersion, sdfFilename string) *models.ModelConfig {
	return &models.ModelConfig{
		Name:    modelName,
		Version: ManifestVersion,
		SDF: models.SDFRef{
			Version:  schemaVersion,
			Filename: sdfFilename,
		},
		Author: models.Author{Name: AuthorName},
	}
}
