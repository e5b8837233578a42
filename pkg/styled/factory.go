package styled

import (
	"github.com/alexisbeaulieu97/styled/pkg/css"
	stylederrors "github.com/alexisbeaulieu97/styled/pkg/errors"
)

// Constructor turns a target, its options and a compiled style into a component
// handle. The handle is returned to callers unchanged.
type Constructor[H any] func(target Target, options Options, rules css.Rules) (H, error)

// StyleBuilder compiles a style template and its interpolations.
type StyleBuilder func(template string, interpolations ...any) css.Rules

// Factory builds styled components for one target. It is an immutable value:
// Attrs and WithConfig return new factories and never touch the receiver. The
// zero Factory is not usable; create one with New.
type Factory[H any] struct {
	target      Target
	constructor Constructor[H]
	build       StyleBuilder
	options     Options
}

// New creates a factory for target using css.Compile as the style builder. It
// fails with a ConfigurationError when target is nil, an empty tag or a nil handle.
func New[H any](constructor Constructor[H], target Target, options Options) (Factory[H], error) {
	return NewWithBuilder(css.Compile, constructor, target, options)
}

// NewWithBuilder is New with an explicit style builder.
func NewWithBuilder[H any](builder StyleBuilder, constructor Constructor[H], target Target, options Options) (Factory[H], error) {
	if !IsValidTarget(target) {
		return Factory[H]{}, stylederrors.NewConfigurationError(target)
	}
	return Factory[H]{
		target:      target,
		constructor: constructor,
		build:       builder,
		options:     options.Clone(),
	}, nil
}

// Call compiles template with interpolations and hands the result, together with
// the factory's target and options, to the constructor. Each call compiles and
// constructs afresh.
func (f Factory[H]) Call(template string, interpolations ...any) (H, error) {
	rules := f.build(template, interpolations...)
	return f.constructor(f.target, f.options.Clone(), rules)
}

// Attrs returns a factory whose attrs list is the receiver's followed by
// provider. Falsy providers are dropped. When provider declares a component
// handle as its target, the new factory is built against that handle.
func (f Factory[H]) Attrs(provider AttrsProvider) Factory[H] {
	options := f.options.Clone()
	options.Attrs = appendAttrs(f.options.Attrs, provider)

	return Factory[H]{
		target:      resolveTarget(f.target, provider),
		constructor: f.constructor,
		build:       f.build,
		options:     options,
	}
}

// WithConfig returns a factory whose options are the receiver's overlaid with
// config. Present keys replace, including Attrs, which is not appended.
func (f Factory[H]) WithConfig(config Options) Factory[H] {
	return Factory[H]{
		target:      f.target,
		constructor: f.constructor,
		build:       f.build,
		options:     mergeOptions(f.options, config),
	}
}

// Target returns the target components are built against.
func (f Factory[H]) Target() Target {
	return f.target
}

// Options returns a copy of the factory's options.
func (f Factory[H]) Options() Options {
	return f.options.Clone()
}

// PropShape describes the props components from this factory accept.
func (f Factory[H]) PropShape() PropShape {
	return ShapeFor(f.target, f.options)
}
