package inspect

import (
	"fmt"
	"strconv"

	"github.com/NghiemLg/Blender-to-gazebo/internal/material"
	"github.com/NghiemLg/Blender-to-gazebo/internal/models"
	"github.com/NghiemLg/Blender-to-gazebo/internal/ui"
)

// Printer renders the link hierarchy of a scene document
type Printer struct{}

// NewPrinter creates a new Printer
func NewPrinter() *Printer {
	return &Printer{}
}

// PrintLink prints the visual/collision pairs of a link in document
// order
func (p *Printer) PrintLink(link *models.Link) {
	if len(link.Children) == 0 {
		ui.PrintStep("Empty link")
		return
	}

	visuals, collisions := 0, 0
	for _, child := range link.Children {
		switch c := child.(type) {
		case models.Visual:
			visuals++
			ui.PrintStep(fmt.Sprintf("• %s%s", c.Name, visualInfo(c)))
		case models.Collision:
			collisions++
			ui.PrintItem(fmt.Sprintf("%s%s", c.Name, collisionInfo(c)))
		}
	}

	ui.PrintStep(fmt.Sprintf("%d visual(s), %d collision(s)", visuals, collisions))
	if collisions < visuals {
		ui.PrintWarning(fmt.Sprintf("%d visual(s) have no collision", visuals-collisions))
	}
}

func visualInfo(v models.Visual) string {
	info := ""
	if v.Material != nil && v.Material.PBR != nil {
		if v.Material.PBR.Metal.AlbedoMap != "" {
			info += " [textured]"
		}
		if v.Material.PBR.Metal.LightMap != nil {
			info += " [lightmapped]"
		}
	}
	if v.CastShadows != nil && !*v.CastShadows {
		info += " [no shadows]"
	}
	return info
}

func collisionInfo(c models.Collision) string {
	ode := c.Surface.Friction.ODE
	info := fmt.Sprintf(" mu=%s restitution=%s", ode.Mu, c.Surface.Bounce.RestitutionCoefficient)
	if ode.Slip1 != "" {
		info += fmt.Sprintf(" slip=%s/%s", ode.Slip1, ode.Slip2)
	}

	if cat, ok := matchCategory(c); ok {
		info += fmt.Sprintf(" (%s)", cat)
	}
	return info
}

// matchCategory recovers the material category from the surface
// values, when they match a known preset.
func matchCategory(c models.Collision) (material.Category, bool) {
	ode := c.Surface.Friction.ODE

	mu, err1 := strconv.ParseFloat(ode.Mu, 64)
	mu2, err2 := strconv.ParseFloat(ode.Mu2, 64)
	restitution, err3 := strconv.ParseFloat(c.Surface.Bounce.RestitutionCoefficient, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return material.Default, false
	}

	return material.MatchPreset(mu, mu2, restitution)
}
