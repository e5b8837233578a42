package styled

// ForwardPropFunc decides whether prop is passed through to target when a styled
// component renders another component.
type ForwardPropFunc func(prop string, target Target) bool

// Options configures a factory. The core only carries and merges these fields;
// their meaning belongs to the component constructor.
//
// For WithConfig a field counts as present when it is non-zero. Attrs is present
// whenever it is non-nil, so an empty non-nil slice clears the list. Every key in
// Meta is present on its own.
type Options struct {
	Attrs             []AttrsProvider
	DisplayName       string
	ComponentID       string
	ShouldForwardProp ForwardPropFunc
	Props             PropShape
	Meta              map[string]any
}

// Clone returns a copy that shares no slices or maps with o.
func (o Options) Clone() Options {
	out := o
	if o.Attrs != nil {
		out.Attrs = make([]AttrsProvider, len(o.Attrs))
		copy(out.Attrs, o.Attrs)
	}
	if o.Props != nil {
		out.Props = o.Props.Clone()
	}
	if o.Meta != nil {
		out.Meta = make(map[string]any, len(o.Meta))
		for key, value := range o.Meta {
			out.Meta[key] = value
		}
	}
	return out
}

// mergeOptions overlays config on base. Present keys in config replace the
// corresponding keys in base wholesale; absent keys keep the base value.
func mergeOptions(base, config Options) Options {
	out := base.Clone()
	config = config.Clone()

	if config.Attrs != nil {
		out.Attrs = config.Attrs
	}
	if config.DisplayName != "" {
		out.DisplayName = config.DisplayName
	}
	if config.ComponentID != "" {
		out.ComponentID = config.ComponentID
	}
	if config.ShouldForwardProp != nil {
		out.ShouldForwardProp = config.ShouldForwardProp
	}
	if config.Props != nil {
		out.Props = config.Props
	}
	if len(config.Meta) > 0 {
		if out.Meta == nil {
			out.Meta = make(map[string]any, len(config.Meta))
		}
		for key, value := range config.Meta {
			out.Meta[key] = value
		}
	}
	return out
}
