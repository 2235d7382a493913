package models

import (
	"encoding/xml"
	"fmt"
)

// SDF represents a Gazebo scene description document
type SDF struct {
	XMLName xml.Name `xml:"sdf"`
	Version string   `xml:"version,attr"`
	Model   Model    `xml:"model"`
}

type Model struct {
	Name   string `xml:"name,attr"`
	Static string `xml:"static"`
	Link   Link   `xml:"link"`
}

// Link holds the visual/collision descriptors of a model in document
// order. A collision synthesized for a visual sits immediately after
// it, so children must stay a single ordered list rather than two
// grouped slices.
type Link struct {
	Name     string
	Children []any // Visual or Collision values
}

// MarshalXML writes the children in construction order.
func (l Link) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name.Local = "link"
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "name"}, Value: l.Name}}

	if err := e.EncodeToken(start); err != nil {
		return err
	}

	for _, child := range l.Children {
		switch c := child.(type) {
		case Visual:
			if err := e.EncodeElement(c, xml.StartElement{Name: xml.Name{Local: "visual"}}); err != nil {
				return err
			}
		case Collision:
			if err := e.EncodeElement(c, xml.StartElement{Name: xml.Name{Local: "collision"}}); err != nil {
				return err
			}
		default:
			return fmt.Errorf("link %q: unsupported child type %T", l.Name, child)
		}
	}

	return e.EncodeToken(start.End())
}

// UnmarshalXML restores the children in document order.
func (l *Link) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if attr.Name.Local == "name" {
			l.Name = attr.Value
		}
	}

	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "visual":
				var v Visual
				if err := d.DecodeElement(&v, &t); err != nil {
					return err
				}
				l.Children = append(l.Children, v)
			case "collision":
				var c Collision
				if err := d.DecodeElement(&c, &t); err != nil {
					return err
				}
				l.Children = append(l.Children, c)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// Visual is the renderable-appearance entry for one mesh
type Visual struct {
	Name        string    `xml:"name,attr"`
	Geometry    *Geometry `xml:"geometry"`
	Material    *Material `xml:"material"`
	CastShadows *bool     `xml:"cast_shadows"`
}

// Collision is the physics-interaction entry paired with a visual
type Collision struct {
	Name     string    `xml:"name,attr"`
	Geometry *Geometry `xml:"geometry"`
	Surface  Surface   `xml:"surface"`
}

type Geometry struct {
	Mesh MeshRef `xml:"mesh"`
}

type MeshRef struct {
	URI     string  `xml:"uri"`
	Submesh Submesh `xml:"submesh"`
}

type Submesh struct {
	Name string `xml:"name"`
}

type Material struct {
	Diffuse  string `xml:"diffuse,omitempty"`
	Specular string `xml:"specular,omitempty"`
	PBR      *PBR   `xml:"pbr"`
}

type PBR struct {
	Metal Metal `xml:"metal"`
}

type Metal struct {
	AlbedoMap string    `xml:"albedo_map,omitempty"`
	LightMap  *LightMap `xml:"light_map"`
}

type LightMap struct {
	UVSet string `xml:"uv_set,attr"`
	URI   string `xml:",chardata"`
}

// Surface carries the friction/bounce/contact parameters of a
// collision. Values are pre-formatted text so the document renders
// exactly what the builder decided.
type Surface struct {
	Friction Friction `xml:"friction"`
	Bounce   Bounce   `xml:"bounce"`
	Contact  Contact  `xml:"contact"`
}

type Friction struct {
	ODE FrictionODE `xml:"ode"`
}

type FrictionODE struct {
	Mu    string `xml:"mu"`
	Mu2   string `xml:"mu2"`
	Slip1 string `xml:"slip1,omitempty"`
	Slip2 string `xml:"slip2,omitempty"`
}

type Bounce struct {
	RestitutionCoefficient string `xml:"restitution_coefficient"`
	Threshold              string `xml:"threshold"`
}

type Contact struct {
	ODE ContactODE `xml:"ode"`
}

type ContactODE struct {
	Kp string `xml:"kp"`
	Kd string `xml:"kd"`
}

// ModelConfig is the companion manifest document (model.config)
type ModelConfig struct {
	XMLName xml.Name `xml:"model"`
	Name    string   `xml:"name"`
	Version string   `xml:"version"`
	SDF     SDFRef   `xml:"sdf"`
	Author  Author   `xml:"author"`
}

type SDFRef struct {
	Version  string `xml:"version,attr"`
	Filename string `xml:",chardata"`
}

type Author struct {
	Name string `xml:"name"`
}

// MeshEntry is one mesh as reported by the host scene exporter after
// asset staging: the display name doubles as the submesh name inside
// the mesh container file.
type MeshEntry struct {
	Name            string
	HasDiffuse      bool
	DiffuseFilename string
	HasLightmap     bool
}

// SceneConfig is the YAML scene description consumed by the export
// command
type SceneConfig struct {
	Model  SceneModel  `yaml:"model"`
	Assets SceneAssets `yaml:"assets"`
	Meshes []SceneMesh `yaml:"meshes"`
	Output string      `yaml:"output"`
}

type SceneModel struct {
	Name string `yaml:"name"`
}

type SceneAssets struct {
	MeshFile string `yaml:"mesh_file"`
	Lightmap string `yaml:"lightmap"`
}

type SceneMesh struct {
	Name    string `yaml:"name"`
	Texture string `yaml:"texture"`
}
