// Package material maps mesh names to physical-material categories and
// their collision surface presets.
package material

import "strings"

// Category is a heuristic physical-material bucket
type Category int

const (
	Default Category = iota
	Wood
	Glass
	Concrete
)

func (c Category) String() string {
	switch c {
	case Wood:
		return "wood"
	case Glass:
		return "glass"
	case Concrete:
		return "concrete"
	default:
		return "default"
	}
}

// keywordTable is checked top to bottom; the first category with a
// matching keyword wins, no matter how many later sets also match.
// Keywords are bilingual (English + unaccented Vietnamese) because the
// scenes this tool grew up with name meshes in both.
var keywordTable = []struct {
	category Category
	keywords []string
}{
	{Wood, []string{
		"tree", "forest", "trunk", "branch", "wood", "bark", "plant",
		"cay", "go", "rung", "than_cay", "canh_cay", "vo_cay", "thuc_vat",
	}},
	{Glass, []string{
		"glass", "window", "glazing",
		"kinh", "cua_kinh", "kieng", "cua_so",
	}},
	{Concrete, []string{
		"road", "street", "sidewalk", "parking", "asphalt", "concrete", "pavement",
		"duong", "via_he", "be_tong", "nhua_duong", "bai_do_xe",
	}},
}

// Classify maps a mesh display name to its material category. The name
// is lower-cased and spaces become underscores before the substring
// checks. Total: anything unmatched is Default.
func Classify(name string) Category {
	normalized := strings.ReplaceAll(strings.ToLower(name), " ", "_")

	for _, row := range keywordTable {
		for _, keyword := range row.keywords {
			if strings.Contains(normalized, keyword) {
				return row.category
			}
		}
	}

	return Default
}

// Preset holds the per-category friction and restitution parameters.
// Slip1/Slip2 only apply when HasSlip is set.
type Preset struct {
	Mu          float64
	Mu2         float64
	Restitution float64
	Slip1       float64
	Slip2       float64
	HasSlip     bool
}

// Contact stiffness, damping and the bounce activation threshold are
// identical for every category and never vary by classification.
const (
	ContactKp       = 1e6
	ContactKd       = 1.0
	BounceThreshold = 100.0
)

var presets = map[Category]Preset{
	Wood:     {Mu: 0.5, Mu2: 0.5, Restitution: 0.20},
	Concrete: {Mu: 1.0, Mu2: 1.0, Restitution: 0.05},
	Glass:    {Mu: 0.4, Mu2: 0.4, Restitution: 0.03, Slip1: 0.02, Slip2: 0.02, HasSlip: true},
	Default:  {Mu: 0.8, Mu2: 0.8, Restitution: 0.05},
}

// PresetFor returns the surface preset for a category. Total: unknown
// categories fall back to the Default preset.
func PresetFor(c Category) Preset {
	if p, ok := presets[c]; ok {
		return p
	}
	return presets[Default]
}

// MatchPreset finds the category whose preset has the given friction
// and restitution values. Used by inspect to label collisions in
// existing documents.
func MatchPreset(mu, mu2, restitution float64) (Category, bool) {
	for _, c := range []Category{Wood, Glass, Concrete, Default} {
		p := presets[c]
		if p.Mu == mu && p.Mu2 == mu2 && p.Restitution == restitution {
			return c, true
		}
	}
	return Default, false
}
