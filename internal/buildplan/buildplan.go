package buildplan

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/NghiemLg/Blender-to-gazebo/internal/assets"
	"github.com/NghiemLg/Blender-to-gazebo/internal/config"
	"github.com/NghiemLg/Blender-to-gazebo/internal/logger"
	"github.com/NghiemLg/Blender-to-gazebo/internal/models"
	"github.com/NghiemLg/Blender-to-gazebo/internal/preconditions"
	"github.com/NghiemLg/Blender-to-gazebo/internal/sdf"
	"github.com/NghiemLg/Blender-to-gazebo/internal/ui"
)

// Step is a single step in an export plan
type Step interface {
	Name() string
	Execute(ctx *Context) error
}

// Context holds shared data between export steps. Each plan owns its
// own context, so independent export runs never share state.
type Context struct {
	ScenePath string
	OutputDir string // CLI override; empty means scene file or cwd

	Scene     *models.SceneConfig
	MeshesDir string
	Meshes    []models.MeshEntry
	Document  *models.SDF

	SDFPath      string
	ManifestPath string
}

// Plan contains all steps needed to turn a scene description into a
// model bundle
type Plan struct {
	Steps []Step
	ctx   *Context
}

// Planner creates export plans
type Planner struct{}

// NewPlanner creates a new export planner
func NewPlanner() *Planner {
	return &Planner{}
}

// CreatePlan builds the standard export pipeline for one scene file.
// outputDir overrides the scene's own output setting when non-empty.
func (p *Planner) CreatePlan(scenePath, outputDir string) *Plan {
	return &Plan{
		ctx: &Context{ScenePath: scenePath, OutputDir: outputDir},
		Steps: []Step{
			&ValidateSceneFileStep{},
			&LoadSceneStep{},
			&PrepareOutputStep{},
			&StageAssetsStep{},
			&BuildDocumentStep{},
			&WriteDocumentsStep{},
		},
	}
}

// Execute runs all steps in the plan
func (p *Plan) Execute() error {
	if ui.IsVerbose() {
		ui.PrintTitle("Export Plan Execution")
		ui.PrintInfo(fmt.Sprintf("Total steps: %d", len(p.Steps)))
		ui.PrintSeparator()
	}

	for i, step := range p.Steps {
		if ui.IsVerbose() {
			ui.PrintHeader(fmt.Sprintf("Step %d/%d: %s", i+1, len(p.Steps), step.Name()))
		}
		if err := step.Execute(p.ctx); err != nil {
			return err
		}
	}

	ui.PrintSeparator()
	ui.PrintSuccess("Export completed successfully!")
	if p.ctx.SDFPath != "" {
		relPath, err := filepath.Rel(".", p.ctx.SDFPath)
		if err != nil {
			relPath = p.ctx.SDFPath
		}
		ui.PrintKeyValue("Scene document", relPath)
	}
	return nil
}

// ValidateSceneFileStep checks the scene description exists and looks
// like YAML
type ValidateSceneFileStep struct{}

func (s *ValidateSceneFileStep) Name() string {
	return "Validate scene file"
}

func (s *ValidateSceneFileStep) Execute(ctx *Context) error {
	return preconditions.ValidateSceneFile(ctx.ScenePath)
}

// LoadSceneStep loads and validates the scene description
type LoadSceneStep struct{}

func (s *LoadSceneStep) Name() string {
	return "Load scene description"
}

func (s *LoadSceneStep) Execute(ctx *Context) error {
	loader := config.NewLoader()
	scene, err := loader.Load(ctx.ScenePath)
	if err != nil {
		return fmt.Errorf("failed to load scene: %w", err)
	}
	ctx.Scene = scene

	if ctx.OutputDir == "" {
		ctx.OutputDir = scene.Output
	}
	if ctx.OutputDir == "" {
		ctx.OutputDir = "."
	}

	ui.PrintSuccess(fmt.Sprintf("Loaded scene with %d mesh(es)", len(scene.Meshes)))
	if ui.IsVerbose() {
		for _, m := range scene.Meshes {
			textureInfo := ""
			if m.Texture != "" {
				textureInfo = fmt.Sprintf(" [texture %s]", filepath.Base(m.Texture))
			}
			ui.PrintItem(m.Name + textureInfo)
		}
	}
	return nil
}

// PrepareOutputStep validates the output directory and ensures the
// meshes asset subfolder exists. Fails before anything is written.
type PrepareOutputStep struct{}

func (s *PrepareOutputStep) Name() string {
	return "Prepare output directory"
}

func (s *PrepareOutputStep) Execute(ctx *Context) error {
	if err := preconditions.ValidateOutputDir(ctx.OutputDir); err != nil {
		return err
	}

	meshesDir, err := preconditions.EnsureMeshesDir(ctx.OutputDir)
	if err != nil {
		return err
	}
	ctx.MeshesDir = meshesDir
	ctx.SDFPath = filepath.Join(ctx.OutputDir, sdf.SDFFilename)
	ctx.ManifestPath = filepath.Join(ctx.OutputDir, sdf.ManifestFilename)

	if ui.IsVerbose() {
		ui.PrintSuccess("Output directory ready: " + ctx.OutputDir)
	}
	return nil
}

// StageAssetsStep copies textures into meshes/ and probes for the
// baked lightmap. Staging faults degrade meshes, they do not abort.
type StageAssetsStep struct{}

func (s *StageAssetsStep) Name() string {
	return "Stage assets"
}

func (s *StageAssetsStep) Execute(ctx *Context) error {
	stager := assets.NewStager(ctx.MeshesDir, ctx.Scene.Assets.Lightmap, logger.Log)
	ctx.Meshes = stager.Stage(ctx.Scene.Meshes)

	staged := 0
	for _, m := range ctx.Meshes {
		if m.HasDiffuse {
			staged++
		}
	}
	ui.PrintSuccess(fmt.Sprintf("Staged %d texture(s)", staged))
	return nil
}

// BuildDocumentStep runs the document synthesis engine
type BuildDocumentStep struct{}

func (s *BuildDocumentStep) Name() string {
	return "Build scene document"
}

func (s *BuildDocumentStep) Execute(ctx *Context) error {
	builder := sdf.NewBuilder(
		ctx.Scene.Model.Name,
		ctx.Scene.Assets.MeshFile,
		ctx.Scene.Assets.Lightmap,
		logger.Log,
	)
	ctx.Document = builder.Build(ctx.Meshes)

	collisions := 0
	for _, child := range ctx.Document.Model.Link.Children {
		if _, ok := child.(models.Collision); ok {
			collisions++
		}
	}
	ui.PrintSuccess(fmt.Sprintf("Built document: %d visual(s), %d collision(s)",
		len(ctx.Meshes), collisions))
	return nil
}

// WriteDocumentsStep serializes both output documents. A failure on
// one document does not stop the other's write from being attempted.
type WriteDocumentsStep struct{}

func (s *WriteDocumentsStep) Name() string {
	return "Write documents"
}

func (s *WriteDocumentsStep) Execute(ctx *Context) error {
	writer := sdf.NewWriter()

	var sdfErr, manifestErr error

	if sdfErr = writer.WriteFile(ctx.SDFPath, ctx.Document); sdfErr != nil {
		ui.PrintError("Scene document write failed: " + sdfErr.Error())
	} else {
		ui.PrintItem(sdf.SDFFilename)
	}

	manifest := sdf.NewManifest(ctx.Scene.Model.Name, ctx.Document.Version, sdf.SDFFilename)
	if manifestErr = writer.WriteFile(ctx.ManifestPath, manifest); manifestErr != nil {
		ui.PrintError("Manifest write failed: " + manifestErr.Error())
	} else {
		ui.PrintItem(sdf.ManifestFilename)
	}

	return errors.Join(sdfErr, manifestErr)
}
