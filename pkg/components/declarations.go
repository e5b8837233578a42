package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/styled/pkg/css"
)

// applyRules evaluates rules in order. Text is parsed into declarations; style
// functions, strategies and lipgloss styles found between text chunks are
// applied at their position.
func applyRules(style lipgloss.Style, rules css.Rules, theme Theme) lipgloss.Style {
	var pending strings.Builder
	flush := func() {
		for _, decl := range css.ParseDeclarations(pending.String()) {
			style = applyDeclaration(style, decl, theme)
		}
		pending.Reset()
	}

	for _, chunk := range rules {
		if chunk.IsText() {
			pending.WriteString(chunk.Text)
			continue
		}
		flush()
		style = applyValue(style, chunk.Value, theme)
	}
	flush()
	return style
}

func applyValue(style lipgloss.Style, value any, theme Theme) lipgloss.Style {
	switch v := value.(type) {
	case StyleFunc:
		if v != nil {
			return v(style, theme)
		}
	case func(lipgloss.Style, Theme) lipgloss.Style:
		if v != nil {
			return v(style, theme)
		}
	case StyleStrategy:
		return v.Apply(style, theme)
	case lipgloss.Style:
		return style.Inherit(v)
	}
	return style
}

func isSupportedValue(value any) bool {
	switch value.(type) {
	case StyleFunc, func(lipgloss.Style, Theme) lipgloss.Style, StyleStrategy, lipgloss.Style:
		return true
	default:
		return false
	}
}

func applyDeclaration(style lipgloss.Style, decl css.Declaration, theme Theme) lipgloss.Style {
	value := decl.Value
	switch decl.Property {
	case "padding":
		if sides, ok := parseSides(value); ok {
			return style.Padding(sides...)
		}
	case "margin":
		if sides, ok := parseSides(value); ok {
			return style.Margin(sides...)
		}
	case "color", "foreground":
		if color, ok := resolveColor(value, theme); ok {
			return style.Foreground(color)
		}
	case "background", "background-color":
		if color, ok := resolveColor(value, theme); ok {
			return style.Background(color)
		}
	case "border", "border-style":
		if variant, ok := BorderVariantByName(value); ok {
			return Border(variant)(style, theme)
		}
	case "border-color":
		if color, ok := resolveColor(value, theme); ok {
			return style.BorderForeground(color)
		}
	case "bold", "font-weight":
		if b, ok := parseFlag(value, "bold"); ok {
			return style.Bold(b)
		}
	case "italic", "font-style":
		if b, ok := parseFlag(value, "italic"); ok {
			return style.Italic(b)
		}
	case "underline", "text-decoration":
		if b, ok := parseFlag(value, "underline"); ok {
			return style.Underline(b)
		}
	case "strikethrough":
		if b, ok := parseFlag(value, "line-through"); ok {
			return style.Strikethrough(b)
		}
	case "faint":
		if b, ok := parseFlag(value, "faint"); ok {
			return style.Faint(b)
		}
	case "width":
		if n, err := strconv.Atoi(value); err == nil {
			return style.Width(n)
		}
	case "height":
		if n, err := strconv.Atoi(value); err == nil {
			return style.Height(n)
		}
	case "max-width":
		if n, err := strconv.Atoi(value); err == nil {
			return style.MaxWidth(n)
		}
	case "align", "text-align":
		if pos, ok := parsePosition(value); ok {
			return style.Align(pos)
		}
	case "typography", "font":
		if variant, ok := TypographyVariantByName(value); ok {
			return Typography(variant)(style, theme)
		}
	}
	return style
}

func parseSides(value string) ([]int, bool) {
	fields := strings.Fields(value)
	if len(fields) == 0 || len(fields) > 4 {
		return nil, false
	}
	sides := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return nil, false
		}
		sides = append(sides, n)
	}
	return sides, true
}

// parseFlag accepts booleans plus the keyword used by the matching CSS property,
// so "font-weight: bold" and "bold: true" are equivalent.
func parseFlag(value, keyword string) (bool, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case keyword:
		return true, true
	case "none", "normal":
		return false, true
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, false
	}
	return b, true
}

func parsePosition(value string) (lipgloss.Position, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "left", "start":
		return lipgloss.Left, true
	case "center":
		return lipgloss.Center, true
	case "right", "end":
		return lipgloss.Right, true
	default:
		return lipgloss.Left, false
	}
}

// resolveColor accepts a palette slot ("primary", "danger.muted", "surface.on")
// or a literal lipgloss colour ("#ff8800", "205").
func resolveColor(value string, theme Theme) (lipgloss.TerminalColor, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, false
	}

	name, tone, _ := strings.Cut(value, ".")
	if slot, ok := PaletteSlotByName(name); ok {
		cs := theme.Palette.Colours(slot)
		switch strings.ToLower(tone) {
		case "", "base":
			return cs.Base, true
		case "on", "onbase", "on-base":
			return cs.OnBase, true
		case "muted":
			return cs.Muted, true
		case "contrast":
			return cs.Contrast, true
		default:
			return nil, false
		}
	}

	if strings.HasPrefix(value, "#") {
		return lipgloss.Color(value), true
	}
	if _, err := strconv.Atoi(value); err == nil {
		return lipgloss.Color(value), true
	}
	return nil, false
}
