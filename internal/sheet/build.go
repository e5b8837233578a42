package sheet

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/styled/internal/logger"
	"github.com/alexisbeaulieu97/styled/pkg/components"
	"github.com/alexisbeaulieu97/styled/pkg/css"
	stylederrors "github.com/alexisbeaulieu97/styled/pkg/errors"
	"github.com/alexisbeaulieu97/styled/pkg/styled"
)

// Entry is one built component of a sheet.
type Entry struct {
	Name      string
	Factory   styled.Factory[*components.StyledComponent]
	Component *components.StyledComponent
	Preview   PreviewSpec
}

// RenderPreview renders the entry with its preview props and children.
func (e Entry) RenderPreview(ctx components.RenderContext) string {
	props := styled.Props{}
	for key, value := range e.Preview.Props {
		props[key] = value
	}
	return e.Component.RenderWithContext(ctx, props, e.Preview.Children...)
}

// Catalog holds every component of a sheet, in declaration order.
type Catalog struct {
	Name    string
	Theme   components.Theme
	Entries []Entry
	index   map[string]int
}

// Lookup returns the entry with the given component name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	i, ok := c.index[name]
	if !ok {
		return Entry{}, false
	}
	return c.Entries[i], true
}

// Context returns a render context using the sheet's theme.
func (c *Catalog) Context() components.RenderContext {
	return components.DefaultContext().WithTheme(c.Theme)
}

// Build derives a factory for every component in order and calls it. Targets
// and overrides resolve to tags or to components built earlier in the sheet.
func Build(s *Sheet, log *logger.Logger) (*Catalog, error) {
	if s == nil {
		return nil, stylederrors.NewValidationError("sheet", "sheet is nil", nil)
	}

	theme, ok := components.ThemeByName(s.Theme)
	if !ok {
		return nil, stylederrors.NewValidationError("theme", fmt.Sprintf("unknown theme %q", s.Theme), nil)
	}

	b := &builder{
		log:   log.WithFields(map[string]any{"sheet": s.Name}),
		built: make(map[string]*components.StyledComponent, len(s.Components)),
	}
	catalog := &Catalog{
		Name:    s.Name,
		Theme:   theme,
		Entries: make([]Entry, 0, len(s.Components)),
		index:   make(map[string]int, len(s.Components)),
	}

	for _, spec := range s.Components {
		entry, err := b.build(spec)
		if err != nil {
			return nil, stylederrors.NewBuildError(spec.Name, err)
		}
		b.built[spec.Name] = entry.Component
		catalog.index[spec.Name] = len(catalog.Entries)
		catalog.Entries = append(catalog.Entries, entry)
	}

	return catalog, nil
}

type builder struct {
	log   *logger.Logger
	built map[string]*components.StyledComponent
}

func (b *builder) build(spec Component) (Entry, error) {
	log := b.log.WithComponent(spec.Name)

	target, err := b.resolve(spec.Target)
	if err != nil {
		return Entry{}, err
	}

	factory, err := components.Styled(target)
	if err != nil {
		return Entry{}, err
	}

	for _, attrs := range spec.Attrs {
		provider, err := b.provider(attrs)
		if err != nil {
			return Entry{}, err
		}
		factory = factory.Attrs(provider)
		log.Debugf("attrs appended, target now %s", factory.Target().TargetName())
	}

	displayName := spec.DisplayName
	if displayName == "" {
		displayName = spec.Name
	}
	factory = factory.WithConfig(styled.Options{DisplayName: displayName})

	if spec.Config != nil {
		options, err := b.options(*spec.Config)
		if err != nil {
			return Entry{}, err
		}
		factory = factory.WithConfig(options)
		log.Debug("config merged")
	}

	component, err := factory.Call(spec.Styles, interpolations(spec.Interpolations)...)
	if err != nil {
		return Entry{}, err
	}

	if log.DebugEnabled() {
		log.WithFields(map[string]any{
			"target":       factory.Target().TargetName(),
			"component_id": component.ComponentID(),
			"attrs":        component.AttrsCount(),
		}).Debug("component built")
	}

	return Entry{
		Name:      spec.Name,
		Factory:   factory,
		Component: component,
		Preview:   spec.Preview,
	}, nil
}

// resolve maps a reference to a tag or a built component, tags first. An empty reference
// is passed through as an empty tag so the factory reports it.
func (b *builder) resolve(ref string) (styled.Target, error) {
	if ref == "" || isKnownTag(ref) {
		return styled.Tag(ref), nil
	}
	if component, ok := b.built[ref]; ok {
		return component, nil
	}
	return nil, stylederrors.NewValidationError("target", fmt.Sprintf("unknown target %q", ref), nil)
}

func (b *builder) provider(spec AttrsSpec) (styled.AttrsProvider, error) {
	provider := styled.StaticAttrs{Props: copyProps(spec.Props)}
	if spec.As != "" {
		target, err := b.resolve(spec.As)
		if err != nil {
			return nil, err
		}
		provider.As = target
	}
	return provider, nil
}

func (b *builder) options(spec ConfigSpec) (styled.Options, error) {
	options := styled.Options{
		DisplayName: spec.DisplayName,
		ComponentID: spec.ComponentID,
		Meta:        spec.Meta,
	}
	if spec.Props != nil {
		options.Props = styled.PropShape(spec.Props)
	}
	if spec.Attrs != nil {
		options.Attrs = make([]styled.AttrsProvider, 0, len(spec.Attrs))
		for _, attrs := range spec.Attrs {
			provider, err := b.provider(attrs)
			if err != nil {
				return styled.Options{}, err
			}
			options.Attrs = append(options.Attrs, provider)
		}
	}
	if spec.Forward != nil {
		options.ShouldForwardProp = forwardOnly(spec.Forward)
	}
	return options, nil
}

func forwardOnly(props []string) styled.ForwardPropFunc {
	allowed := make(map[string]struct{}, len(props))
	for _, prop := range props {
		allowed[prop] = struct{}{}
	}
	return func(prop string, _ styled.Target) bool {
		_, ok := allowed[prop]
		return ok
	}
}

// interpolations converts decoded values. A string of the form "$name" is read
// from the render props instead of being inserted literally.
func interpolations(values []any) []any {
	out := make([]any, 0, len(values))
	for _, value := range values {
		if s, ok := value.(string); ok && len(s) > 1 && strings.HasPrefix(s, "$") {
			out = append(out, propLookup(s[1:]))
			continue
		}
		out = append(out, value)
	}
	return out
}

func propLookup(name string) css.Func {
	return func(props css.Props) any {
		return props[name]
	}
}

func copyProps(props map[string]any) styled.Props {
	if props == nil {
		return nil
	}
	out := make(styled.Props, len(props))
	for key, value := range props {
		out[key] = value
	}
	return out
}
