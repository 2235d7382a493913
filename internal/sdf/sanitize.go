package sdf

import "strings"

// Sanitize maps an arbitrary mesh name to a valid structural
// identifier: every maximal run of characters outside [0-9A-Za-z_]
// collapses to a single underscore, and a "n_" prefix guards results
// that are empty or start with a digit. Total over all inputs.
func Sanitize(raw string) string {
	var b strings.Builder
	inRun := false

	for _, r := range raw {
		if isIdentRune(r) {
			b.WriteRune(r)
			inRun = false
		} else if !inRun {
			b.WriteByte('_')
			inRun = true
		}
	}

	s := b.String()
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		s = "n_" + s
	}
	return s
}

func isIdentRune(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}
