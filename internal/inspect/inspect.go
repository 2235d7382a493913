package inspect

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/NghiemLg/Blender-to-gazebo/internal/models"
	"github.com/NghiemLg/Blender-to-gazebo/internal/ui"
	"github.com/alecthomas/chroma/v2/quick"
)

// Inspector provides functionality to inspect generated scene
// documents
type Inspector struct{}

// NewInspector creates a new Inspector
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect reads and displays the contents of a scene document. With
// raw set, the XML itself is printed with syntax highlighting instead
// of the summary view.
func (i *Inspector) Inspect(filename string, raw bool) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", filename, err)
	}

	if raw {
		return quick.Highlight(os.Stdout, string(data), "xml", "terminal256", "monokai")
	}

	doc, err := parseSDF(data)
	if err != nil {
		return fmt.Errorf("error reading scene document: %w", err)
	}

	ui.PrintHeader(fmt.Sprintf("Inspecting: %s", filename))
	ui.PrintStep(fmt.Sprintf("Schema version: %s", doc.Version))
	ui.PrintStep(fmt.Sprintf("Model: %s (static: %s)", doc.Model.Name, doc.Model.Static))

	ui.PrintHeader(fmt.Sprintf("Link: %s", doc.Model.Link.Name))
	NewPrinter().PrintLink(&doc.Model.Link)

	return nil
}

// ReadSDF reads a scene document from disk
func ReadSDF(filename string) (*models.SDF, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", filename, err)
	}
	return parseSDF(data)
}

func parseSDF(data []byte) (*models.SDF, error) {
	var doc models.SDF
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing XML: %w", err)
	}
	return &doc, nil
}
