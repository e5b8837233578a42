// Package styled builds styled-component factories.
//
// A Factory pairs a Target with a Constructor and a set of Options. Calling it
// compiles a style template and asks the constructor for a component:
//
//	button, err := styled.New(components.Construct, styled.Tag("button"), styled.Options{})
//	if err != nil {
//		return err
//	}
//	primary, err := button.
//		Attrs(styled.StaticAttrs{Props: styled.Props{"role": "primary"}}).
//		WithConfig(styled.Options{DisplayName: "PrimaryButton"}).
//		Call("padding: 0 {}; background: primary;", 2)
//
// # Derivation
//
// Attrs appends a provider to the attrs list, dropping falsy providers and keeping
// duplicates. WithConfig overlays options key by key; a present Attrs list in the
// config replaces the existing one instead of appending. Both return new factories,
// so a factory can be shared and derived from freely, including across goroutines.
//
// # Override targets
//
// A provider may declare an override target through its As field (StaticAttrs) or
// through DeclareTarget. When the declared target is a component handle rather
// than a Tag, the derived factory is built against that handle and reports its
// PropShape. Props backfilled by static providers are reported as optional since
// the caller no longer has to supply them. PropShape is informational only.
//
// # Errors
//
// New is the only operation that fails: a nil target, an empty Tag or a nil handle
// yields an *errors.ConfigurationError from package pkg/errors. Errors returned by
// the constructor are passed through Call untouched.
package styled
