package sheet

// Sheet declares a set of themed styled components.
type Sheet struct {
	Version    string      `yaml:"version" toml:"version" validate:"required,semver"`
	Name       string      `yaml:"name" toml:"name" validate:"required"`
	Theme      string      `yaml:"theme,omitempty" toml:"theme" validate:"theme_name"`
	Components []Component `yaml:"components" toml:"components" validate:"required,min=1,dive"`
}

// Component declares one factory derivation and the call that builds it.
type Component struct {
	Name           string      `yaml:"name" toml:"name" validate:"required,component_name"`
	Target         string      `yaml:"target" toml:"target" validate:"required"`
	DisplayName    string      `yaml:"display_name,omitempty" toml:"display_name"`
	Attrs          []AttrsSpec `yaml:"attrs,omitempty" toml:"attrs" validate:"dive"`
	Config         *ConfigSpec `yaml:"config,omitempty" toml:"config"`
	Styles         string      `yaml:"styles,omitempty" toml:"styles"`
	Interpolations []any       `yaml:"interpolations,omitempty" toml:"interpolations"`
	Preview        PreviewSpec `yaml:"preview,omitempty" toml:"preview"`
}

// AttrsSpec is a static attrs provider. As names an override target: a tag or
// an earlier component.
type AttrsSpec struct {
	Props map[string]any `yaml:"props,omitempty" toml:"props"`
	As    string         `yaml:"as,omitempty" toml:"as"`
}

// ConfigSpec is applied with WithConfig after the attrs. A non-nil Attrs list
// replaces the attrs declared so far; an empty list clears them.
type ConfigSpec struct {
	DisplayName string          `yaml:"display_name,omitempty" toml:"display_name"`
	ComponentID string          `yaml:"component_id,omitempty" toml:"component_id" validate:"omitempty,component_name"`
	Meta        map[string]any  `yaml:"meta,omitempty" toml:"meta"`
	Props       map[string]bool `yaml:"props,omitempty" toml:"props"`
	Attrs       []AttrsSpec     `yaml:"attrs,omitempty" toml:"attrs" validate:"dive"`
	Forward     []string        `yaml:"forward,omitempty" toml:"forward"`
}

// PreviewSpec holds the props and children used when rendering a sample.
type PreviewSpec struct {
	Props    map[string]any `yaml:"props,omitempty" toml:"props"`
	Children []string       `yaml:"children,omitempty" toml:"children"`
}

// ComponentNames lists component names in declaration order.
func (s *Sheet) ComponentNames() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.Components))
	for _, component := range s.Components {
		names = append(names, component.Name)
	}
	return names
}
