package styled

import "reflect"

// Target identifies what a factory styles: a primitive Tag or a richer component
// handle such as another styled component.
type Target interface {
	TargetName() string
}

// Tag is a primitive host element name, for example "text" or "box".
type Tag string

// TargetName implements Target.
func (t Tag) TargetName() string { return string(t) }

// String implements fmt.Stringer.
func (t Tag) String() string { return string(t) }

// PropShaper is implemented by targets that can describe the props they accept.
type PropShaper interface {
	PropShape() PropShape
}

// IsValidTarget reports whether target is usable for a factory. Nil interfaces,
// empty tags and typed nil handles are rejected.
func IsValidTarget(target Target) bool {
	if target == nil {
		return false
	}
	if tag, ok := target.(Tag); ok {
		return tag != ""
	}
	return !isNilHandle(target)
}

// IsTag reports whether target is a primitive tag.
func IsTag(target Target) bool {
	_, ok := target.(Tag)
	return ok
}

func isNilHandle(value any) bool {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
