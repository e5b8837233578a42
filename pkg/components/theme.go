package components

import (
	"maps"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet is the group of colours a palette slot provides. Base is the fill,
// OnBase the text drawn over it, Muted a quieter variant and Contrast an accent.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// PaletteSlot names a semantic colour slot. Slots are usable directly as
// declaration values ("background: primary;").
type PaletteSlot string

const (
	PalettePrimary   PaletteSlot = "primary"
	PaletteSecondary PaletteSlot = "secondary"
	PaletteSurface   PaletteSlot = "surface"
	PaletteSuccess   PaletteSlot = "success"
	PaletteWarning   PaletteSlot = "warning"
	PaletteDanger    PaletteSlot = "danger"
	PaletteInfo      PaletteSlot = "info"
	PaletteNeutral   PaletteSlot = "neutral"
)

var slotAliases = map[string]PaletteSlot{
	"error": PaletteDanger,
	"muted": PaletteNeutral,
}

// PaletteSlotByName looks up a slot by name or alias ("error" is danger).
func PaletteSlotByName(name string) (PaletteSlot, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if slot, ok := slotAliases[name]; ok {
		return slot, true
	}
	slot := PaletteSlot(name)
	_, ok := defaultSwatches[slot]
	return slot, ok
}

// Palette maps slots to colours. It is shared between theme copies and must
// not be modified after construction.
type Palette map[PaletteSlot]ColourSet

// Colours returns the colours of slot, falling back to the neutral slot.
func (p Palette) Colours(slot PaletteSlot) ColourSet {
	if cs, ok := p[slot]; ok {
		return cs
	}
	return p[PaletteNeutral]
}

// swatch holds light and dark hex values for base, on-base, muted and contrast.
type swatch [4][2]string

func (s swatch) colours() ColourSet {
	ac := func(i int) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: s[i][0], Dark: s[i][1]}
	}
	return ColourSet{Base: ac(0), OnBase: ac(1), Muted: ac(2), Contrast: ac(3)}
}

var defaultSwatches = map[PaletteSlot]swatch{
	PalettePrimary:   {{"#2563eb", "#7aa2f7"}, {"#ffffff", "#1a1b26"}, {"#1e40af", "#3d59a1"}, {"#f59e0b", "#e0af68"}},
	PaletteSecondary: {{"#9333ea", "#bb9af7"}, {"#ffffff", "#1a1b26"}, {"#6b21a8", "#7a5fb0"}, {"#db2777", "#f7768e"}},
	PaletteSurface:   {{"#fafafa", "#1f2335"}, {"#18181b", "#c0caf5"}, {"#e4e4e7", "#292e42"}, {"#2563eb", "#7aa2f7"}},
	PaletteSuccess:   {{"#16a34a", "#9ece6a"}, {"#f0fdf4", "#1a1b26"}, {"#15803d", "#73a942"}, {"#ffffff", "#ffffff"}},
	PaletteWarning:   {{"#d97706", "#e0af68"}, {"#1c1917", "#1a1b26"}, {"#b45309", "#b58a4c"}, {"#18181b", "#18181b"}},
	PaletteDanger:    {{"#dc2626", "#f7768e"}, {"#fef2f2", "#1a1b26"}, {"#991b1b", "#c0556b"}, {"#ffffff", "#ffffff"}},
	PaletteInfo:      {{"#0891b2", "#7dcfff"}, {"#ecfeff", "#1a1b26"}, {"#155e75", "#4fa3c7"}, {"#ffffff", "#ffffff"}},
	PaletteNeutral:   {{"#71717a", "#a9b1d6"}, {"#fafafa", "#1a1b26"}, {"#52525b", "#565f89"}, {"#ffffff", "#ffffff"}},
}

var darkSwatches = map[PaletteSlot]swatch{
	PaletteSurface: {{"#1a1b26", "#16161e"}, {"#c0caf5", "#c0caf5"}, {"#24283b", "#1f2335"}, {"#7aa2f7", "#7aa2f7"}},
	PaletteNeutral: {{"#565f89", "#414868"}, {"#c0caf5", "#a9b1d6"}, {"#3b4261", "#292e42"}, {"#ffffff", "#ffffff"}},
}

func buildPalette(layers ...map[PaletteSlot]swatch) Palette {
	palette := Palette{}
	for _, layer := range layers {
		for slot, s := range layer {
			palette[slot] = s.colours()
		}
	}
	return palette
}

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

var borderVariants = []struct {
	name   string
	border lipgloss.Border
}{
	BorderVariantNone:    {"none", lipgloss.Border{}},
	BorderVariantNormal:  {"normal", lipgloss.NormalBorder()},
	BorderVariantThick:   {"thick", lipgloss.ThickBorder()},
	BorderVariantRounded: {"rounded", lipgloss.RoundedBorder()},
	BorderVariantDouble:  {"double", lipgloss.DoubleBorder()},
}

// BorderVariantByName looks up a border variant such as "rounded".
func BorderVariantByName(name string) (BorderVariant, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, v := range borderVariants {
		if v.name == name {
			return BorderVariant(i), true
		}
	}
	return BorderVariantNone, false
}

// BorderForVariant returns the lipgloss border drawn for variant.
func BorderForVariant(variant BorderVariant) lipgloss.Border {
	if variant < 0 || int(variant) >= len(borderVariants) {
		return lipgloss.Border{}
	}
	return borderVariants[variant].border
}

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

// SpacingScale gives the cell count of every SpacingSize.
type SpacingScale [SpacingSizeExtraLarge + 1]int

var defaultSpacing = SpacingScale{0, 1, 1, 2, 3, 4}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantCode
	TypographyVariantEmphasis
)

var typographyVariantsByName = map[string]TypographyVariant{
	"base":     TypographyVariantBase,
	"title":    TypographyVariantTitle,
	"subtitle": TypographyVariantSubtitle,
	"body":     TypographyVariantBody,
	"code":     TypographyVariantCode,
	"emphasis": TypographyVariantEmphasis,
}

// TypographyVariantByName looks up a typography preset such as "title".
func TypographyVariantByName(name string) (TypographyVariant, bool) {
	variant, ok := typographyVariantsByName[strings.ToLower(strings.TrimSpace(name))]
	return variant, ok
}

func typographyFor(p Palette) map[TypographyVariant]lipgloss.Style {
	base := lipgloss.NewStyle().Foreground(p.Colours(PaletteSurface).OnBase)
	return map[TypographyVariant]lipgloss.Style{
		TypographyVariantBase:     base,
		TypographyVariantBody:     base,
		TypographyVariantTitle:    base.Bold(true).Foreground(p.Colours(PalettePrimary).Base),
		TypographyVariantSubtitle: base.Faint(true).Foreground(p.Colours(PaletteSecondary).Muted),
		TypographyVariantCode: base.
			Foreground(p.Colours(PaletteSecondary).Base).
			Background(p.Colours(PaletteSurface).Muted).
			Padding(0, 1),
		TypographyVariantEmphasis: base.Bold(true),
	}
}

// Theme is the set of tokens a render resolves declarations and tag styles
// against. Themes are values; the maps they hold are never modified.
type Theme struct {
	Name       string
	Palette    Palette
	Spacing    SpacingScale
	Typography map[TypographyVariant]lipgloss.Style
}

// Normalize fills the parts of t left unset with the default tokens.
func (t Theme) Normalize() Theme {
	if len(t.Palette) == 0 {
		t.Palette = buildPalette(defaultSwatches)
	}
	if t.Spacing == (SpacingScale{}) {
		t.Spacing = defaultSpacing
	}
	if len(t.Typography) == 0 {
		t.Typography = typographyFor(t.Palette)
	}
	return t
}

// WithPalette returns a copy of t using palette, with typography derived from it.
func (t Theme) WithPalette(palette Palette) Theme {
	t.Palette = maps.Clone(palette)
	t.Typography = typographyFor(t.Palette)
	return t
}

// DefaultTheme returns the default theme for components
func DefaultTheme() Theme {
	return Theme{Name: "default"}.Normalize()
}

// DarkTheme swaps the surface and neutral slots for darker swatches.
func DarkTheme() Theme {
	theme := Theme{Name: "dark"}
	return theme.WithPalette(buildPalette(defaultSwatches, darkSwatches)).Normalize()
}

// LightTheme returns a light theme variant
func LightTheme() Theme {
	return Theme{Name: "light"}.Normalize()
}

// ThemeByName returns a built-in theme. Empty names select the default theme.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultTheme(), true
	case "dark":
		return DarkTheme(), true
	case "light":
		return LightTheme(), true
	default:
		return Theme{}, false
	}
}

// SpacingValue returns the number of cells for size, using medium for sizes
// outside the scale.
func SpacingValue(theme Theme, size SpacingSize) int {
	if size < 0 || int(size) >= len(theme.Spacing) {
		size = SpacingSizeMedium
	}
	return theme.Spacing[size]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	if style, ok := theme.Typography[variant]; ok {
		return style
	}
	return theme.Typography[TypographyVariantBase]
}
