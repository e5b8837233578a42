package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/styled/internal/sheet"
	"github.com/alexisbeaulieu97/styled/pkg/components"
)

type renderOptions struct {
	width int
}

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <sheet> [component...]",
		Short: "Render component previews from a sheet",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts, args[0], args[1:])
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "Maximum render width (defaults to the terminal width)")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions, path string, names []string) error {
	log, err := flags.logger(cmd)
	if err != nil {
		return newCommandError("render", "configuring logging", err, "Check the --verbose and --log-json flags.")
	}

	catalog, err := loadCatalog("render", path, log)
	if err != nil {
		return err
	}

	entries, err := selectEntries(catalog, names)
	if err != nil {
		return newCommandError("render", "selecting components", err, fmt.Sprintf("Run 'styled check %s' to list components.", path))
	}

	width := opts.width
	if width <= 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}
	ctx := catalog.Context()
	if width > 0 {
		ctx = ctx.WithConstraints(components.WithMaxWidth(width))
	}

	out := cmd.OutOrStdout()
	for i, entry := range entries {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, headingStyle.Render(entry.Name))
		fmt.Fprintln(out, entry.RenderPreview(ctx))
	}
	return nil
}

func selectEntries(catalog *sheet.Catalog, names []string) ([]sheet.Entry, error) {
	if len(names) == 0 {
		return catalog.Entries, nil
	}
	entries := make([]sheet.Entry, 0, len(names))
	for _, name := range names {
		entry, ok := catalog.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("component %q not found in sheet %q", name, catalog.Name)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
