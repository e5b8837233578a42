package gallery

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/styled/internal/sheet"
	"github.com/alexisbeaulieu97/styled/pkg/components"
)

// FromCatalog turns every built component into a gallery entry rendering its
// preview under the sheet's theme.
func FromCatalog(catalog *sheet.Catalog) []Entry {
	if catalog == nil {
		return nil
	}

	entries := make([]Entry, 0, len(catalog.Entries))
	for _, item := range catalog.Entries {
		item := item
		entries = append(entries, Entry{
			Name:    item.Name,
			Details: describe(item),
			Render: func(width int) string {
				ctx := catalog.Context()
				if width > 0 {
					ctx = ctx.WithConstraints(components.WithMaxWidth(width))
				}
				return item.RenderPreview(ctx)
			},
		})
	}
	return entries
}

func describe(item sheet.Entry) string {
	parts := []string{
		fmt.Sprintf("target %s", item.Factory.Target().TargetName()),
		item.Component.ComponentID(),
	}
	if n := item.Component.AttrsCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d attrs", n))
	}
	return strings.Join(parts, " · ")
}
