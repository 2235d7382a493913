package material

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Category
	}{
		{"english tree", "OldTree", Wood},
		{"english forest", "Forest_Floor", Wood},
		{"vietnamese glass door", "CuaKinh_01", Glass},
		{"english window", "ShopWindow", Glass},
		{"english sidewalk", "Sidewalk", Concrete},
		{"english parking", "Parking_Lot_3", Concrete},
		{"vietnamese road", "duong_chinh", Concrete},
		{"no keyword", "Fountain", Default},
		{"empty name", "", Default},
		{"spaces normalized", "Than Cay 02", Wood},
		{"case insensitive", "GLASS_PANEL", Glass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.expected {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

// Priority order is fixed: wood outranks glass outranks concrete, no
// matter how many sets match.
func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Category
	}{
		{"wood beats glass", "TreeGlass", Wood},
		{"wood beats concrete", "WoodenRoad", Wood},
		{"glass beats concrete", "GlassSidewalk", Glass},
		// "street" contains "tree", so the wood set claims it first.
		// Legacy behavior, kept on purpose.
		{"street is wood", "Street_01", Wood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.expected {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPresetFor(t *testing.T) {
	tests := []struct {
		category    Category
		mu          float64
		restitution float64
		hasSlip     bool
	}{
		{Wood, 0.5, 0.20, false},
		{Concrete, 1.0, 0.05, false},
		{Glass, 0.4, 0.03, true},
		{Default, 0.8, 0.05, false},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			p := PresetFor(tt.category)
			if p.Mu != tt.mu || p.Mu2 != tt.mu {
				t.Errorf("mu/mu2 = %v/%v, want %v", p.Mu, p.Mu2, tt.mu)
			}
			if p.Restitution != tt.restitution {
				t.Errorf("restitution = %v, want %v", p.Restitution, tt.restitution)
			}
			if p.HasSlip != tt.hasSlip {
				t.Errorf("HasSlip = %v, want %v", p.HasSlip, tt.hasSlip)
			}
			if tt.hasSlip && (p.Slip1 != 0.02 || p.Slip2 != 0.02) {
				t.Errorf("slip1/slip2 = %v/%v, want 0.02/0.02", p.Slip1, p.Slip2)
			}
		})
	}
}

func TestPresetForUnknownCategory(t *testing.T) {
	p := PresetFor(Category(99))
	if p != presets[Default] {
		t.Errorf("unknown category should fall back to default preset, got %+v", p)
	}
}

func TestMatchPreset(t *testing.T) {
	for _, c := range []Category{Wood, Glass, Concrete, Default} {
		p := PresetFor(c)
		got, ok := MatchPreset(p.Mu, p.Mu2, p.Restitution)
		if !ok || got != c {
			t.Errorf("MatchPreset(%v preset) = %v, %v", c, got, ok)
		}
	}

	if _, ok := MatchPreset(0.123, 0.456, 0.789); ok {
		t.Error("MatchPreset should not match arbitrary values")
	}
}
