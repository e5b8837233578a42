package styled

import "sort"

// PropShape maps prop names to whether the caller must supply them. It documents
// the props a factory accepts; nothing enforces it at render time.
type PropShape map[string]bool

// Clone returns a copy of the shape.
func (s PropShape) Clone() PropShape {
	out := make(PropShape, len(s))
	for key, required := range s {
		out[key] = required
	}
	return out
}

// Merge returns a new shape with other layered over s.
func (s PropShape) Merge(other PropShape) PropShape {
	out := s.Clone()
	for key, required := range other {
		out[key] = required
	}
	return out
}

// Optional returns a new shape where keys are present and not required.
func (s PropShape) Optional(keys ...string) PropShape {
	out := s.Clone()
	for _, key := range keys {
		out[key] = false
	}
	return out
}

// RequiredKeys lists required props in sorted order.
func (s PropShape) RequiredKeys() []string {
	return s.keys(true)
}

// OptionalKeys lists optional props in sorted order.
func (s PropShape) OptionalKeys() []string {
	return s.keys(false)
}

func (s PropShape) keys(required bool) []string {
	out := make([]string, 0, len(s))
	for key, r := range s {
		if r == required {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}
