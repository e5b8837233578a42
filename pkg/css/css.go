// Package css compiles style templates and their interpolations into Rules.
//
// A template is plain declaration text with "{}" placeholders:
//
//	rules := css.Compile("padding: {}; color: {};", 1, func(p css.Props) any {
//		if p["danger"] == true {
//			return "danger"
//		}
//		return "primary"
//	})
//
// Static interpolations are spliced into the text at compile time. Functions of
// the render props are kept as deferred chunks and resolved by Evaluate. Values the
// package does not understand are carried through as opaque chunks so renderers
// can interpret them (for example lipgloss style modifiers).
package css

import (
	"fmt"
	"strconv"
	"strings"
)

// Placeholder marks where the next interpolation is spliced into a template.
const Placeholder = "{}"

// Props is the set of props a component renders with.
type Props map[string]any

// Clone returns a shallow copy of the props. A nil receiver yields an empty map.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for key, value := range p {
		out[key] = value
	}
	return out
}

// Func is an interpolation resolved against the render props.
type Func func(props Props) any

// Chunk is one compiled piece of a style. Exactly one of Text, Func or Value is set.
type Chunk struct {
	Text  string
	Func  Func
	Value any
}

// IsText reports whether the chunk is literal declaration text.
func (c Chunk) IsText() bool {
	return c.Func == nil && c.Value == nil
}

// Rules is a compiled style description.
type Rules []Chunk

// Compile splits template at each placeholder and interleaves the interpolations
// positionally. Surplus interpolations are appended after the template; missing
// ones leave their placeholder empty.
func Compile(template string, interpolations ...any) Rules {
	parts := strings.Split(template, Placeholder)
	placeholders := len(parts) - 1

	var rules Rules
	for i, part := range parts {
		rules = rules.appendText(part)
		if i < placeholders && i < len(interpolations) {
			rules = rules.flatten(interpolations[i])
		}
	}
	for i := placeholders; i < len(interpolations); i++ {
		rules = rules.flatten(interpolations[i])
	}
	return rules
}

// IsStatic reports whether the rules contain no deferred functions.
func (r Rules) IsStatic() bool {
	for _, chunk := range r {
		if chunk.Func != nil {
			return false
		}
	}
	return true
}

// Concat returns a new Rules holding r followed by other.
func (r Rules) Concat(other Rules) Rules {
	out := make(Rules, 0, len(r)+len(other))
	out = append(out, r...)
	for _, chunk := range other {
		out = out.appendChunk(chunk)
	}
	return out
}

// Evaluate resolves every deferred function against props. The result only holds
// text and opaque chunks.
func (r Rules) Evaluate(props Props) Rules {
	var out Rules
	for _, chunk := range r {
		if chunk.Func == nil {
			out = out.appendChunk(chunk)
			continue
		}
		resolved := Rules(nil).flatten(chunk.Func(props)).Evaluate(props)
		for _, c := range resolved {
			out = out.appendChunk(c)
		}
	}
	return out
}

// Text returns the concatenated literal text, skipping deferred and opaque chunks.
func (r Rules) Text() string {
	var b strings.Builder
	for _, chunk := range r {
		if chunk.IsText() {
			b.WriteString(chunk.Text)
		}
	}
	return b.String()
}

// String implements fmt.Stringer.
func (r Rules) String() string {
	return r.Text()
}

func (r Rules) appendText(text string) Rules {
	if text == "" {
		return r
	}
	if n := len(r); n > 0 && r[n-1].IsText() {
		out := make(Rules, n, n+1)
		copy(out, r)
		out[n-1].Text += text
		return out
	}
	return append(r, Chunk{Text: text})
}

func (r Rules) appendChunk(chunk Chunk) Rules {
	if chunk.IsText() {
		return r.appendText(chunk.Text)
	}
	return append(r, chunk)
}

func (r Rules) flatten(value any) Rules {
	switch v := value.(type) {
	case nil:
		return r
	case bool:
		if !v {
			return r
		}
		return r.appendText("true")
	case string:
		return r.appendText(v)
	case Rules:
		for _, chunk := range v {
			r = r.appendChunk(chunk)
		}
		return r
	case []any:
		for _, item := range v {
			r = r.flatten(item)
		}
		return r
	case Func:
		if v == nil {
			return r
		}
		return append(r, Chunk{Func: v})
	case func(Props) any:
		if v == nil {
			return r
		}
		return append(r, Chunk{Func: v})
	case func(Props) string:
		if v == nil {
			return r
		}
		return append(r, Chunk{Func: func(p Props) any { return v(p) }})
	case int:
		return r.appendText(strconv.Itoa(v))
	case int64:
		return r.appendText(strconv.FormatInt(v, 10))
	case float64:
		return r.appendText(strconv.FormatFloat(v, 'f', -1, 64))
	case fmt.Stringer:
		return r.appendText(v.String())
	default:
		return append(r, Chunk{Value: v})
	}
}
