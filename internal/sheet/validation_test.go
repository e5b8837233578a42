package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stylederrors "github.com/alexisbeaulieu97/styled/pkg/errors"
)

func TestValidateSheet(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		field    string
		message  string
	}{
		{
			name:     "bad version",
			contents: "version: beta\nname: x\ncomponents:\n  - {name: A, target: text}\n",
			field:    "version",
		},
		{
			name:     "missing components",
			contents: "version: 1.0.0\nname: x\n",
			field:    "components",
		},
		{
			name:     "bad component name",
			contents: "version: 1.0.0\nname: x\ncomponents:\n  - {name: 1abc, target: text}\n",
			field:    "components[0].name",
		},
		{
			name:     "unknown theme",
			contents: "version: 1.0.0\nname: x\ntheme: neon\ncomponents:\n  - {name: A, target: text}\n",
			field:    "theme",
		},
		{
			name:     "duplicate component",
			contents: "version: 1.0.0\nname: x\ncomponents:\n  - {name: A, target: text}\n  - {name: A, target: box}\n",
			field:    "components[1].name",
			message:  "duplicate component name",
		},
		{
			name:     "forward reference",
			contents: "version: 1.0.0\nname: x\ncomponents:\n  - {name: A, target: B}\n  - {name: B, target: box}\n",
			field:    "components[0].target",
			message:  "forward reference",
		},
		{
			name:     "self reference",
			contents: "version: 1.0.0\nname: x\ncomponents:\n  - {name: A, target: A}\n",
			field:    "components[0].target",
			message:  "forward reference",
		},
		{
			name:     "unknown target",
			contents: "version: 1.0.0\nname: x\ncomponents:\n  - {name: A, target: widget}\n",
			field:    "components[0].target",
			message:  "unknown target",
		},
		{
			name:     "unknown override",
			contents: "version: 1.0.0\nname: x\ncomponents:\n  - name: A\n    target: text\n    attrs:\n      - {as: widget}\n",
			field:    "components[0].attrs[0].as",
			message:  "unknown target",
		},
		{
			name:     "component named like a tag",
			contents: "version: 1.0.0\nname: x\ncomponents:\n  - {name: A, target: card}\n  - {name: card, target: text}\n",
			field:    "components[1].name",
			message:  "built-in tag",
		},
		{
			name:     "unknown config override",
			contents: "version: 1.0.0\nname: x\ncomponents:\n  - name: A\n    target: text\n    config:\n      attrs:\n        - {as: B}\n  - {name: B, target: text}\n",
			field:    "components[0].config.attrs[0].as",
			message:  "forward reference",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse("sheet.yaml", FormatYAML, []byte(tc.contents))

			var validationErr *stylederrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
			if tc.message != "" {
				assert.Contains(t, validationErr.Message, tc.message)
			}
		})
	}
}

func TestValidateSheetAcceptsEarlierReferences(t *testing.T) {
	t.Parallel()

	s := &Sheet{
		Version: "0.1.0",
		Name:    "ok",
		Components: []Component{
			{Name: "Base", Target: "text"},
			{Name: "Derived", Target: "Base", Attrs: []AttrsSpec{{As: "Base"}, {As: "card"}}},
		},
	}

	require.NoError(t, ValidateSheet(s))
}

func TestValidateSheetNil(t *testing.T) {
	t.Parallel()

	var validationErr *stylederrors.ValidationError
	require.ErrorAs(t, ValidateSheet(nil), &validationErr)
}

func TestGetValidatorIsShared(t *testing.T) {
	t.Parallel()

	assert.Same(t, GetValidator(), GetValidator())
}
