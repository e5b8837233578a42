package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/styled/pkg/css"
	stylederrors "github.com/alexisbeaulieu97/styled/pkg/errors"
	"github.com/alexisbeaulieu97/styled/pkg/styled"
)

// Renderer is implemented by targets a styled component can delegate to.
type Renderer interface {
	RenderWithContext(ctx RenderContext, props styled.Props, children ...string) string
}

// StyledComponent is the handle produced by Construct. It is immutable and safe
// to render from several goroutines.
type StyledComponent struct {
	target      styled.Target
	attrs       []styled.AttrsProvider
	rules       css.Rules
	options     styled.Options
	shape       styled.PropShape
	displayName string
	componentID string
	foldedIDs   []string
}

var (
	_ styled.Constructor[*StyledComponent] = Construct
	_ styled.Target                        = (*StyledComponent)(nil)
	_ styled.PropShaper                    = (*StyledComponent)(nil)
	_ Renderer                             = (*StyledComponent)(nil)
)

// Construct builds a StyledComponent. When target is itself a StyledComponent the
// two are folded: the base attrs and rules come first and the base's render
// target is kept.
func Construct(target styled.Target, options styled.Options, rules css.Rules) (*StyledComponent, error) {
	for _, chunk := range rules {
		if chunk.IsText() || chunk.Func != nil || isSupportedValue(chunk.Value) {
			continue
		}
		return nil, stylederrors.NewValidationError("interpolation",
			fmt.Sprintf("unsupported value of type %T", chunk.Value), nil)
	}

	c := &StyledComponent{
		target:  target,
		attrs:   options.Attrs,
		rules:   rules,
		options: options,
	}

	if base, ok := target.(*StyledComponent); ok && base != nil {
		c.target = base.target
		c.attrs = append(append([]styled.AttrsProvider{}, base.attrs...), options.Attrs...)
		c.rules = base.rules.Concat(rules)
		c.foldedIDs = append(append([]string{}, base.foldedIDs...), base.componentID)
		c.options.ShouldForwardProp = chainForward(base.options.ShouldForwardProp, options.ShouldForwardProp)
	}

	c.shape = styled.ShapeFor(target, options)

	c.displayName = options.DisplayName
	if c.displayName == "" {
		c.displayName = defaultDisplayName(target)
	}
	c.componentID = options.ComponentID
	if c.componentID == "" {
		c.componentID = generateComponentID(c.displayName)
	}
	return c, nil
}

func defaultDisplayName(target styled.Target) string {
	if tag, ok := target.(styled.Tag); ok {
		return "styled." + string(tag)
	}
	return "Styled(" + target.TargetName() + ")"
}

func chainForward(first, second styled.ForwardPropFunc) styled.ForwardPropFunc {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}
	return func(prop string, target styled.Target) bool {
		return first(prop, target) && second(prop, target)
	}
}

// TargetName implements styled.Target.
func (c *StyledComponent) TargetName() string { return c.displayName }

// PropShape implements styled.PropShaper.
func (c *StyledComponent) PropShape() styled.PropShape { return c.shape.Clone() }

// DisplayName returns the component's display name.
func (c *StyledComponent) DisplayName() string { return c.displayName }

// ComponentID returns the component's ID.
func (c *StyledComponent) ComponentID() string { return c.componentID }

// FoldedIDs lists the IDs of the components this one was folded from, outermost last.
func (c *StyledComponent) FoldedIDs() []string {
	return append([]string(nil), c.foldedIDs...)
}

// Target returns the render target after folding.
func (c *StyledComponent) Target() styled.Target { return c.target }

// AttrsCount returns the number of attrs providers applied at render.
func (c *StyledComponent) AttrsCount() int { return len(c.attrs) }

// Rules returns the folded style rules.
func (c *StyledComponent) Rules() css.Rules {
	return append(css.Rules(nil), c.rules...)
}

// Meta returns an implementation-defined option value.
func (c *StyledComponent) Meta(key string) (any, bool) {
	value, ok := c.options.Meta[key]
	return value, ok
}

// Render renders with DefaultContext.
func (c *StyledComponent) Render(props styled.Props, children ...string) string {
	return c.RenderWithContext(DefaultContext(), props, children...)
}

// RenderWithContext renders the component. Attrs providers run in order on top
// of props, the resulting "as" prop picks the render target, and the rules are
// evaluated against the resolved props.
func (c *StyledComponent) RenderWithContext(ctx RenderContext, props styled.Props, children ...string) string {
	theme := ctx.Theme.Normalize()
	resolved, as := c.resolveProps(theme, props)
	if c.foldedFrom(as) {
		as = c.target
	}

	base := lipgloss.NewStyle()
	if tag, ok := as.(styled.Tag); ok {
		base = TagStyle(tag, theme)
	}
	style := applyRules(base, c.rules.Evaluate(resolved), theme)
	if ctx.Constraints.HasMaxWidth() {
		style = style.MaxWidth(ctx.Constraints.MaxWidth)
	}

	if renderer, ok := as.(Renderer); ok && styled.IsValidTarget(as) {
		inner := renderer.RenderWithContext(ctx, c.forwardProps(resolved, as), children...)
		return style.Render(inner)
	}
	return style.Render(content(as, resolved, children))
}

// foldedFrom reports whether target is c itself or a component c was folded
// from. Its rules and attrs are already part of c, so it is rendered in place.
func (c *StyledComponent) foldedFrom(target styled.Target) bool {
	other, ok := target.(*StyledComponent)
	if !ok || other == nil {
		return false
	}
	if other == c {
		return true
	}
	for _, id := range c.foldedIDs {
		if id == other.componentID {
			return true
		}
	}
	return false
}

func (c *StyledComponent) resolveProps(theme Theme, props styled.Props) (styled.Props, styled.Target) {
	resolved := props.Clone()
	if resolved == nil {
		resolved = styled.Props{}
	}
	if _, ok := resolved["theme"]; !ok {
		resolved["theme"] = theme
	}

	for _, provider := range c.attrs {
		if styled.IsFalsyProvider(provider) {
			continue
		}
		attrs := provider.Attrs(resolved.Clone())
		for key, value := range attrs.Props {
			resolved[key] = value
		}
		if styled.IsValidTarget(attrs.As) {
			resolved["as"] = attrs.As
		}
	}

	return resolved, asTarget(resolved["as"], c.target)
}

func asTarget(value any, fallback styled.Target) styled.Target {
	switch v := value.(type) {
	case styled.Target:
		if styled.IsValidTarget(v) {
			return v
		}
	case string:
		if v != "" {
			return styled.Tag(v)
		}
	}
	return fallback
}

func (c *StyledComponent) forwardProps(props styled.Props, target styled.Target) styled.Props {
	out := make(styled.Props, len(props))
	for key, value := range props {
		if key == "as" || key == "theme" {
			continue
		}
		if c.options.ShouldForwardProp != nil && !c.options.ShouldForwardProp(key, target) {
			continue
		}
		out[key] = value
	}
	return out
}

func content(target styled.Target, props styled.Props, children []string) string {
	if len(children) == 0 {
		switch v := props["children"].(type) {
		case string:
			children = []string{v}
		case []string:
			children = v
		case fmt.Stringer:
			children = []string{v.String()}
		}
	}
	if tag, ok := target.(styled.Tag); ok && isBlock(tag) {
		return strings.Join(children, "\n")
	}
	return strings.Join(children, " ")
}
