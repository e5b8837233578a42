package css

import "strings"

// Declaration is a single "property: value" pair.
type Declaration struct {
	Property string
	Value    string
}

// ParseDeclarations splits text into declarations separated by semicolons or
// newlines. Properties are lower-cased; duplicates are kept in order so the last
// one wins when applied. Block comments are stripped.
func ParseDeclarations(text string) []Declaration {
	text = stripComments(text)

	var decls []Declaration
	for _, line := range strings.FieldsFunc(text, func(r rune) bool { return r == ';' || r == '\n' }) {
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		property := strings.ToLower(strings.TrimSpace(line[:idx]))
		if property == "" {
			continue
		}
		decls = append(decls, Declaration{
			Property: property,
			Value:    strings.TrimSpace(line[idx+1:]),
		})
	}
	return decls
}

func stripComments(text string) string {
	for {
		start := strings.Index(text, "/*")
		if start < 0 {
			return text
		}
		end := strings.Index(text[start+2:], "*/")
		if end < 0 {
			return text[:start]
		}
		text = text[:start] + text[start+2+end+2:]
	}
}
