// Package components renders styled-component factories to the terminal.
//
// # Overview
//
// Construct is the constructor behind every factory in this package. It turns a
// target, the factory options and the compiled style rules into a
// StyledComponent, which renders to a string with lipgloss:
//
//	Primary := components.Button.
//		Attrs(styled.StaticAttrs{Props: styled.Props{"children": "OK"}})
//
//	button, err := Primary.Call("background: {}; bold: true;", "success")
//	if err != nil {
//		return err
//	}
//	fmt.Println(button.Render(nil))
//
// # Theme System
//
// Themes are immutable and travel in the RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	output := button.RenderWithContext(ctx, styled.Props{"children": "Save"})
//
// The resolved theme is also available to style functions under the "theme" prop.
//
// # Declarations
//
// Style templates hold "property: value;" declarations. Supported properties:
//   - padding, margin: one to four integers
//   - color, foreground, background, border-color: palette slot ("primary",
//     "danger.muted", "surface.on") or literal colour ("#ff8800", "205")
//   - border: none, normal, rounded, thick or double
//   - bold, italic, underline, faint, strikethrough: booleans
//   - width, height, max-width: integers
//   - align: left, center or right
//   - typography: base, title, subtitle, body, code or emphasis
//
// Unknown properties are ignored. StyleFunc values such as Background or Border
// can be interpolated directly and are applied where they appear.
//
// # Composition
//
// Styling a StyledComponent folds it: the base attrs and rules run first and the
// base's tag is kept. Rendering "as" another StyledComponent delegates to it and
// wraps its output, forwarding the props ShouldForwardProp accepts.
package components
