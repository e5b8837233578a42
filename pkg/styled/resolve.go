package styled

// resolveTarget picks the target for a factory derived through Attrs. A provider
// that declares a valid component handle replaces current; declared tags and
// falsy declarations are ignored.
func resolveTarget(current Target, provider AttrsProvider) Target {
	declarer, ok := provider.(TargetDeclarer)
	if !ok || isFalsyProvider(provider) {
		return current
	}
	declared := declarer.DeclaredTarget()
	if !IsValidTarget(declared) || IsTag(declared) {
		return current
	}
	return declared
}

// ShapeFor describes the props accepted by a component with the given target
// and options: the target's own shape, then the declared Props, then every key
// backfilled by a provider marked optional. Constructors use it so their
// handles report the same shape as the factory that built them.
func ShapeFor(target Target, options Options) PropShape {
	shape := PropShape{}
	if shaper, ok := target.(PropShaper); ok && IsValidTarget(target) {
		shape = shape.Merge(shaper.PropShape())
	}
	shape = shape.Merge(options.Props)
	for _, provider := range options.Attrs {
		if contributor, ok := provider.(PropContributor); ok && !isFalsyProvider(provider) {
			shape = shape.Optional(contributor.ContributedProps()...)
		}
	}
	return shape
}
