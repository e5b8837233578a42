package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/styled/internal/sheet"
	"github.com/alexisbeaulieu97/styled/pkg/components"
	"github.com/alexisbeaulieu97/styled/pkg/diff"
)

type diffOptions struct {
	width    int
	exitCode bool
}

var errSheetsDiffer = errors.New("rendered components differ")

var (
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func newDiffCmd(flags *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <before-sheet> <after-sheet>",
		Short: "Compare the rendered previews of two sheets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, flags, opts, args[0], args[1])
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "Maximum render width")
	cmd.Flags().BoolVar(&opts.exitCode, "exit-code", false, "Fail when any component renders differently")

	return cmd
}

func runDiff(cmd *cobra.Command, flags *rootFlags, opts *diffOptions, beforePath, afterPath string) error {
	log, err := flags.logger(cmd)
	if err != nil {
		return newCommandError("diff", "configuring logging", err, "Check the --verbose and --log-json flags.")
	}

	before, err := loadCatalog("diff", beforePath, log)
	if err != nil {
		return err
	}
	after, err := loadCatalog("diff", afterPath, log)
	if err != nil {
		return err
	}

	beforeNames, beforeRenders := renderAll(before, opts.width)
	afterNames, afterRenders := renderAll(after, opts.width)
	changes := diff.Compare(beforeNames, beforeRenders, afterNames, afterRenders)

	out := cmd.OutOrStdout()
	for _, change := range changes {
		fmt.Fprintf(out, "%s %s\n", statusLabel(change.Status), change.Name)
		if change.Diff != "" {
			fmt.Fprint(out, change.Diff)
		}
	}

	if opts.exitCode && diff.HasChanges(changes) {
		return newCommandError("diff", fmt.Sprintf("comparing %s with %s", beforePath, afterPath), errSheetsDiffer, "Review the changes above.")
	}
	return nil
}

func renderAll(catalog *sheet.Catalog, width int) ([]string, map[string]string) {
	ctx := catalog.Context()
	if width > 0 {
		ctx = ctx.WithConstraints(components.WithMaxWidth(width))
	}

	names := make([]string, 0, len(catalog.Entries))
	renders := make(map[string]string, len(catalog.Entries))
	for _, entry := range catalog.Entries {
		names = append(names, entry.Name)
		renders[entry.Name] = entry.RenderPreview(ctx)
	}
	return names, renders
}

func statusLabel(status diff.Status) string {
	label := fmt.Sprintf("[%s]", status)
	switch status {
	case diff.StatusAdded:
		return addedStyle.Render(label)
	case diff.StatusRemoved:
		return removedStyle.Render(label)
	case diff.StatusChanged:
		return changedStyle.Render(label)
	default:
		return label
	}
}
