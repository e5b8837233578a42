package components

import "github.com/charmbracelet/lipgloss"

// StyleFunc applies a styling transformation to a lipgloss.Style using data from
// a Theme. StyleFuncs may be passed as interpolations; they are applied at the
// position they appear in the template.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		if fn != nil {
			base = fn(base, theme)
		}
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	copied := make([]StyleFunc, len(funcs))
	copy(copied, funcs)
	return CompositeStrategy{funcs: copied}
}

// Compose folds several StyleFuncs into one, for use as a single interpolation.
func Compose(funcs ...StyleFunc) StyleFunc {
	strategy := NewCompositeStrategy(funcs...)
	return strategy.Apply
}

// Background applies a semantic background colour and matching foreground for optimal contrast.
//
// Example:
//
//	Box.Call("padding: 1; {}", Background(PalettePrimary))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := theme.Palette.Colours(slot)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := theme.Palette.Colours(slot)
		return base.Foreground(cs.Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if variant == BorderVariantNone {
			return base.UnsetBorderStyle()
		}
		return base.Border(BorderForVariant(variant))
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(SpacingValue(theme, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := SpacingValue(theme, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := SpacingValue(theme, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(SpacingValue(theme, size))
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
