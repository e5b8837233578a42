package styled

import (
	"sort"

	"github.com/alexisbeaulieu97/styled/pkg/css"
)

// Props is the set of props a component renders with.
type Props = css.Props

// Attrs is what an attrs provider backfills: partial props plus an optional
// override target. As is the reserved override key; a nil As means plain props.
type Attrs struct {
	Props Props
	As    Target
}

// AttrsProvider backfills props at render time. Providers run in the order they
// were added and later providers win over earlier ones.
type AttrsProvider interface {
	Attrs(props Props) Attrs
}

// TargetDeclarer is implemented by providers that declare their override target
// ahead of render, so a derived factory can adopt it.
type TargetDeclarer interface {
	DeclaredTarget() Target
}

// PropContributor is implemented by providers whose backfilled prop keys are
// known ahead of render.
type PropContributor interface {
	ContributedProps() []string
}

// StaticAttrs is a provider with a fixed result.
type StaticAttrs Attrs

// Attrs implements AttrsProvider. The returned props are a copy.
func (s StaticAttrs) Attrs(Props) Attrs {
	out := Attrs{As: s.As}
	if s.Props != nil {
		out.Props = s.Props.Clone()
	}
	return out
}

// DeclaredTarget implements TargetDeclarer.
func (s StaticAttrs) DeclaredTarget() Target { return s.As }

// ContributedProps implements PropContributor.
func (s StaticAttrs) ContributedProps() []string {
	keys := make([]string, 0, len(s.Props))
	for key := range s.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// AttrsFunc computes attrs from the props merged so far.
type AttrsFunc func(props Props) Attrs

// Attrs implements AttrsProvider.
func (f AttrsFunc) Attrs(props Props) Attrs { return f(props) }

// DeclareTarget wraps provider so that it declares target up front. At render
// time the declared target is used unless the provider returns its own As.
func DeclareTarget(target Target, provider AttrsProvider) AttrsProvider {
	return declaredProvider{target: target, provider: provider}
}

type declaredProvider struct {
	target   Target
	provider AttrsProvider
}

func (d declaredProvider) Attrs(props Props) Attrs {
	var out Attrs
	if !isFalsyProvider(d.provider) {
		out = d.provider.Attrs(props)
	}
	if out.As == nil {
		out.As = d.target
	}
	return out
}

func (d declaredProvider) DeclaredTarget() Target { return d.target }

func (d declaredProvider) ContributedProps() []string {
	if contributor, ok := d.provider.(PropContributor); ok {
		return contributor.ContributedProps()
	}
	return nil
}

// appendAttrs returns a fresh list holding existing followed by provider, with
// falsy entries removed. Repeated providers are kept.
func appendAttrs(existing []AttrsProvider, provider AttrsProvider) []AttrsProvider {
	out := make([]AttrsProvider, 0, len(existing)+1)
	for _, p := range existing {
		if !isFalsyProvider(p) {
			out = append(out, p)
		}
	}
	if !isFalsyProvider(provider) {
		out = append(out, provider)
	}
	return out
}

// IsFalsyProvider reports whether provider is a nil interface or a typed nil.
func IsFalsyProvider(provider AttrsProvider) bool {
	return isFalsyProvider(provider)
}

func isFalsyProvider(provider AttrsProvider) bool {
	if provider == nil {
		return true
	}
	return isNilHandle(provider)
}
