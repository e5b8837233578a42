package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/styled/pkg/styled"
)

// Primitive tags understood by the renderer. Any other non-empty tag renders
// with an empty base style.
const (
	TagText   styled.Tag = "text"
	TagBox    styled.Tag = "box"
	TagButton styled.Tag = "button"
	TagBadge  styled.Tag = "badge"
	TagHeader styled.Tag = "header"
	TagCard   styled.Tag = "card"
	TagPanel  styled.Tag = "panel"
	TagCode   styled.Tag = "code"
)

var tagStyles = map[styled.Tag][]StyleFunc{
	TagButton: {Background(PalettePrimary), PaddingX(SpacingSizeSmall)},
	TagBadge:  {Background(PaletteNeutral), PaddingX(SpacingSizeSmall)},
	TagHeader: {Typography(TypographyVariantTitle)},
	TagCard:   {Border(BorderVariantRounded), Padding(SpacingSizeSmall)},
	TagPanel:  {Border(BorderVariantNormal), PaddingX(SpacingSizeSmall)},
	TagCode:   {Typography(TypographyVariantCode)},
}

var blockTags = map[styled.Tag]bool{
	TagBox:   true,
	TagCard:  true,
	TagPanel: true,
}

// KnownTags lists the tags with a base style or block layout.
func KnownTags() []styled.Tag {
	return []styled.Tag{TagText, TagBox, TagButton, TagBadge, TagHeader, TagCard, TagPanel, TagCode}
}

// TagStyle returns the base style a tag renders with under theme.
func TagStyle(tag styled.Tag, theme Theme) lipgloss.Style {
	return NewCompositeStrategy(tagStyles[tag]...).Apply(lipgloss.NewStyle(), theme)
}

func isBlock(tag styled.Tag) bool {
	return blockTags[tag]
}

// Styled returns a root factory producing StyledComponents for target.
func Styled(target styled.Target) (styled.Factory[*StyledComponent], error) {
	return styled.New[*StyledComponent](Construct, target, styled.Options{})
}

// MustStyled is like Styled but panics if target is falsy.
func MustStyled(target styled.Target) styled.Factory[*StyledComponent] {
	f, err := Styled(target)
	if err != nil {
		panic(err)
	}
	return f
}

// Factories for the primitive tags.
var (
	Text   = MustStyled(TagText)
	Box    = MustStyled(TagBox)
	Button = MustStyled(TagButton)
	Badge  = MustStyled(TagBadge)
	Header = MustStyled(TagHeader)
	Card   = MustStyled(TagCard)
	Panel  = MustStyled(TagPanel)
)
