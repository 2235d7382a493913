package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderExportHelp renders the help text for the export command with
// lipgloss styling
func renderExportHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginTop(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10"))

	commandStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("14"))

	commentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Italic(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Examples"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Export into the current directory"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("blender2gazebo export scene.yaml"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Export into a model directory"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("blender2gazebo export scene.yaml -o ~/.gazebo/models/my_model"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Verbose run with a log file"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("blender2gazebo export scene.yaml -v --log-file export.log"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Scene file keys:"))
	b.WriteString("\n")

	keys := []struct {
		key  string
		desc string
	}{
		{"model.name", "Model name (default: my_model)"},
		{"assets.mesh_file", "Mesh container filename inside meshes/ (default: model.dae)"},
		{"assets.lightmap", "Baked lightmap filename probed in meshes/ (default: LightmapBaked.png)"},
		{"meshes[].name", "Submesh name, becomes the visual identifier"},
		{"meshes[].texture", "Optional diffuse texture, copied into meshes/"},
		{"output", "Default output directory, overridden by -o"},
	}

	maxWidth := 0
	for _, k := range keys {
		if len(k.key) > maxWidth {
			maxWidth = len(k.key)
		}
	}

	for _, k := range keys {
		padding := strings.Repeat(" ", maxWidth-len(k.key)+2)
		b.WriteString("  " + keyStyle.Render(k.key) + padding + commentStyle.Render(k.desc))
		b.WriteString("\n")
	}

	return b.String()
}
