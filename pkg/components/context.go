package components

// Constraints defines sizing constraints for layout calculations.
type Constraints struct {
	MinWidth int
	MaxWidth int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{
		MinWidth: 0,
		MaxWidth: -1, // -1 means unlimited
	}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{
		MinWidth: 0,
		MaxWidth: maxWidth,
	}
}

// HasMaxWidth returns true if there's an upper width bound.
func (c Constraints) HasMaxWidth() bool {
	return c.MaxWidth >= 0
}

// RenderContext provides layout information and theme to components during rendering.
// Themes travel with the context so several themes can render side by side.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
}

// DefaultContext returns a render context with the default theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}
