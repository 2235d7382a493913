package cmd

import (
	"fmt"
	"os"

	"github.com/NghiemLg/Blender-to-gazebo/internal/buildplan"
	"github.com/NghiemLg/Blender-to-gazebo/internal/inspect"
	"github.com/NghiemLg/Blender-to-gazebo/internal/logger"
	"github.com/NghiemLg/Blender-to-gazebo/internal/ui"
	"github.com/NghiemLg/Blender-to-gazebo/version"
	"github.com/alecthomas/kong"
)

type CLI struct {
	Export     *ExportCmd     `cmd:"" help:"Export a scene description to a Gazebo model bundle (model.sdf + model.config)"`
	Inspect    *InspectCmd    `cmd:"" help:"Inspect a generated model.sdf and show its contents"`
	Completion *CompletionCmd `cmd:"" help:"Generate shell completion scripts"`
	Version    *VersionCmd    `cmd:"" help:"Show version information"`
}

type ExportCmd struct {
	Scene    string `arg:"" help:"Scene description YAML file"`
	Output   string `help:"Output model directory (default: the scene's output setting, else the current directory)" short:"o"`
	Verbose  bool   `help:"Verbose step output" short:"v"`
	LogLevel string `help:"Log level: debug, info, warn, error" name:"log-level" default:"info"`
	LogFile  string `help:"Also write logs to this file (size-rotated)" name:"log-file"`
}

// Help adds additional help text with examples
func (c *ExportCmd) Help() string {
	return renderExportHelp()
}

func (c *ExportCmd) Run() error {
	logger.Init(c.LogLevel, c.LogFile)
	defer logger.Log.Sync()

	planner := buildplan.NewPlanner()
	plan := planner.CreatePlan(c.Scene, c.Output)
	return plan.Execute()
}

type InspectCmd struct {
	File string `arg:"" help:"Scene document (model.sdf) to inspect"`
	Raw  bool   `help:"Print the syntax-highlighted XML instead of the summary"`
}

func (c *InspectCmd) Run() error {
	inspector := inspect.NewInspector()
	return inspector.Inspect(c.File, c.Raw)
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	info := version.Get()
	fmt.Println(info.String())
	return nil
}

// Parse parses command line arguments and executes the appropriate
// command
func Parse() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("blender2gazebo"),
		kong.Description("Scene description to Gazebo SDF model bundle exporter"),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}
