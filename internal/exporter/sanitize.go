package exporter

import "strings"

// SanitizeName makes a body or model name safe to use as a file name:
// path separators and other non-portable characters become underscores.
// CAD names routinely contain spaces, colons, and slashes ("Bracket (1)",
// "Assembly:Arm/Left").
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "unnamed"
	}
	return b.String()
}
