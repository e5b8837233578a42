package components

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/styled/pkg/css"
	stylederrors "github.com/alexisbeaulieu97/styled/pkg/errors"
	"github.com/alexisbeaulieu97/styled/pkg/styled"
)

type recordingTarget struct {
	got styled.Props
}

func (r *recordingTarget) TargetName() string { return "Recorder" }

func (r *recordingTarget) RenderWithContext(_ RenderContext, props styled.Props, _ ...string) string {
	r.got = props
	return "inner"
}

func mustCall(t *testing.T, f styled.Factory[*StyledComponent], template string, interpolations ...any) *StyledComponent {
	t.Helper()
	c, err := f.Call(template, interpolations...)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func TestConstructAssignsDefaults(t *testing.T) {
	t.Parallel()

	c := mustCall(t, Box, "")

	assert.Equal(t, "styled.box", c.DisplayName())
	assert.Equal(t, "styled.box", c.TargetName())
	assert.Regexp(t, regexp.MustCompile(`^styled-box-[0-9a-f]{8}$`), c.ComponentID())
	assert.Equal(t, TagBox, c.Target())
	assert.Empty(t, c.FoldedIDs())
}

func TestConstructGeneratesDistinctIDs(t *testing.T) {
	t.Parallel()

	first := mustCall(t, Text, "")
	second := mustCall(t, Text, "")

	assert.NotEqual(t, first.ComponentID(), second.ComponentID())
}

func TestConstructHonoursConfiguredNames(t *testing.T) {
	t.Parallel()

	c := mustCall(t, Text.WithConfig(styled.Options{
		DisplayName: "Title",
		ComponentID: "title-1",
		Meta:        map[string]any{"group": "headings"},
	}), "")

	assert.Equal(t, "Title", c.DisplayName())
	assert.Equal(t, "title-1", c.ComponentID())
	group, ok := c.Meta("group")
	require.True(t, ok)
	assert.Equal(t, "headings", group)
}

func TestConstructFoldsStyledTargets(t *testing.T) {
	t.Parallel()

	base := mustCall(t, Text.Attrs(styled.StaticAttrs{Props: styled.Props{"children": "base"}}), "padding: 0 1;")
	derived := mustCall(t, MustStyled(base), "bold: true;")

	assert.Equal(t, TagText, derived.Target())
	assert.Equal(t, []string{base.ComponentID()}, derived.FoldedIDs())
	assert.Equal(t, "padding: 0 1;bold: true;", derived.Rules().Text())
	assert.Equal(t, 1, derived.AttrsCount())
	assert.Equal(t, "Styled(styled.text)", derived.DisplayName())
	assert.Equal(t, " base ", derived.Render(nil))
}

func TestConstructRejectsUnsupportedInterpolations(t *testing.T) {
	t.Parallel()

	_, err := Text.Call("{}", struct{ Name string }{Name: "x"})

	var validationErr *stylederrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "interpolation", validationErr.Field)
}

func TestMustStyledPanicsOnFalsyTarget(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustStyled(styled.Tag("")) })
}

func TestRenderAppliesDeclarations(t *testing.T) {
	t.Parallel()

	c := mustCall(t, Text, "padding: 0 2;")
	assert.Equal(t, "  hi  ", c.Render(nil, "hi"))
}

func TestRenderLaterDeclarationWins(t *testing.T) {
	t.Parallel()

	c := mustCall(t, Text, "padding: 0 3; padding: 0 1;")
	assert.Equal(t, " x ", c.Render(nil, "x"))
}

func TestRenderResolvesDeferredInterpolations(t *testing.T) {
	t.Parallel()

	c := mustCall(t, Text, "padding: 0 {};", func(p css.Props) any { return p["pad"] })

	assert.Equal(t, " x ", c.Render(styled.Props{"pad": 1, "children": "x"}))
	assert.Equal(t, "x", c.Render(styled.Props{"children": "x"}))
}

func TestRenderAppliesStyleFuncInterpolations(t *testing.T) {
	t.Parallel()

	c := mustCall(t, Box, "{}", Border(BorderVariantRounded))
	out := c.Render(nil, "x")

	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "x")
}

func TestRenderAttrsLaterProvidersWin(t *testing.T) {
	t.Parallel()

	f := Text.
		Attrs(styled.StaticAttrs{Props: styled.Props{"children": "a"}}).
		Attrs(styled.StaticAttrs{Props: styled.Props{"children": "b"}})
	c := mustCall(t, f, "")

	assert.Equal(t, "b", c.Render(styled.Props{"children": "caller"}))
}

func TestRenderAttrsFuncSeesMergedProps(t *testing.T) {
	t.Parallel()

	f := Text.
		Attrs(styled.StaticAttrs{Props: styled.Props{"label": "Save"}}).
		Attrs(styled.AttrsFunc(func(p styled.Props) styled.Attrs {
			label, _ := p["label"].(string)
			_, hasTheme := p["theme"].(Theme)
			if !hasTheme {
				label = "no theme"
			}
			return styled.Attrs{Props: styled.Props{"children": label + "!"}}
		}))
	c := mustCall(t, f, "")

	assert.Equal(t, "Save!", c.Render(nil))
}

func TestRenderAsPropSelectsTag(t *testing.T) {
	t.Parallel()

	c := mustCall(t, Text, "")

	assert.Equal(t, "x", c.Render(nil, "x"))
	assert.Contains(t, c.Render(styled.Props{"as": "card"}, "x"), "╭")
	assert.Contains(t, c.Render(styled.Props{"as": TagPanel}, "x"), "┌")
}

func TestRenderDelegatesWithForwardedProps(t *testing.T) {
	t.Parallel()

	recorder := &recordingTarget{}
	f := Box.WithConfig(styled.Options{
		ShouldForwardProp: func(prop string, _ styled.Target) bool { return prop != "secret" },
	})
	c := mustCall(t, f, "")

	out := c.Render(styled.Props{"as": recorder, "secret": 1, "label": "x"})

	assert.Equal(t, "inner", out)
	assert.Equal(t, styled.Props{"label": "x"}, recorder.got)
}

func TestRenderDelegatesThroughAttrsFunc(t *testing.T) {
	t.Parallel()

	recorder := &recordingTarget{}
	f := Text.Attrs(styled.AttrsFunc(func(styled.Props) styled.Attrs {
		return styled.Attrs{Props: styled.Props{"tone": "muted"}, As: recorder}
	}))
	c := mustCall(t, f, "")

	assert.Equal(t, TagText, c.Target())
	assert.Equal(t, "inner", c.Render(nil))
	assert.Equal(t, styled.Props{"tone": "muted"}, recorder.got)
}

func TestRenderOverrideTargetStylesOnce(t *testing.T) {
	t.Parallel()

	base := mustCall(t, Text, "padding: 0 3;")
	static := mustCall(t, Text.Attrs(styled.StaticAttrs{As: base}), "")
	declared := mustCall(t, Text.Attrs(styled.DeclareTarget(base, styled.AttrsFunc(func(styled.Props) styled.Attrs {
		return styled.Attrs{}
	}))), "")

	want := base.Render(nil, "x")
	assert.Equal(t, "   x   ", want)
	assert.Equal(t, want, static.Render(nil, "x"))
	assert.Equal(t, want, declared.Render(nil, "x"))
}

func TestRenderOverrideTargetDoesNotNestBorders(t *testing.T) {
	t.Parallel()

	card := mustCall(t, Card, "padding: 0 1;")
	linked := mustCall(t, Text.Attrs(styled.StaticAttrs{As: card}), "")

	out := linked.Render(nil, "x")
	assert.Equal(t, card.Render(nil, "x"), out)
	assert.Equal(t, 1, strings.Count(out, "╭"))
}

func TestRenderAsFoldedBaseRendersInPlace(t *testing.T) {
	t.Parallel()

	base := mustCall(t, Text, "padding: 0 1;")
	derived := mustCall(t, MustStyled(base), "bold: true;")

	assert.Equal(t, derived.Render(nil, "x"), derived.Render(styled.Props{"as": base}, "x"))
	assert.Equal(t, derived.Render(nil, "x"), derived.Render(styled.Props{"as": derived}, "x"))
	assert.Equal(t, " x ", derived.Render(nil, "x"))
}

func TestRenderRespectsMaxWidth(t *testing.T) {
	t.Parallel()

	c := mustCall(t, Text, "")
	ctx := DefaultContext().WithConstraints(WithMaxWidth(3))

	assert.Equal(t, "abc", c.RenderWithContext(ctx, nil, "abcdef"))
}

func TestRenderJoinsChildrenByLayout(t *testing.T) {
	t.Parallel()

	text := mustCall(t, Text, "")
	box := mustCall(t, Box, "")

	assert.Equal(t, "a b", text.Render(nil, "a", "b"))
	assert.Equal(t, "a\nb", box.Render(nil, "a", "b"))
}

func TestStyledComponentPropShape(t *testing.T) {
	t.Parallel()

	f := Text.
		WithConfig(styled.Options{Props: styled.PropShape{"label": true}}).
		Attrs(styled.StaticAttrs{Props: styled.Props{"tone": "muted"}})
	c := mustCall(t, f, "")

	shape := c.PropShape()
	assert.Equal(t, f.PropShape(), shape)
	assert.Equal(t, []string{"label"}, shape.RequiredKeys())
	assert.Equal(t, []string{"tone"}, shape.OptionalKeys())

	derived := mustCall(t, MustStyled(c), "")
	assert.Equal(t, []string{"label"}, derived.PropShape().RequiredKeys())
}

func TestEscapeName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"styled.box":   "styled-box",
		"Styled(Link)": "Styled-Link",
		"  ":           "sc",
		"card_2":       "card_2",
	}
	for input, want := range tests {
		assert.Equal(t, want, escapeName(input), input)
	}
}
