package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/styled/internal/logger"
	"github.com/alexisbeaulieu97/styled/internal/sheet"
	"github.com/alexisbeaulieu97/styled/internal/tui/gallery"
)

type galleryOptions struct {
	watch bool
}

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	opts := &galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery <sheet>",
		Short: "Browse the components of a sheet interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload the gallery when the sheet changes")

	return cmd
}

func runGallery(cmd *cobra.Command, flags *rootFlags, opts *galleryOptions, path string) error {
	log, err := flags.logger(cmd)
	if err != nil {
		return newCommandError("open gallery", "configuring logging", err, "Check the --verbose and --log-json flags.")
	}

	catalog, err := loadCatalog("open gallery", path, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	model := gallery.NewModel(catalog.Name, gallery.FromCatalog(catalog))
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.watch {
		watcher, err := gallery.NewWatcher(path, log)
		if err != nil {
			return newCommandError("open gallery", "watching "+path, err, "Run without --watch or check file permissions.")
		}
		go func() {
			_ = watcher.Run(ctx, reloadCatalog(path, log), program.Send)
		}()
	}

	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return newCommandError("open gallery", "running the interface", err, "Make sure the command runs in an interactive terminal.")
	}
	return nil
}

func reloadCatalog(path string, log *logger.Logger) gallery.Loader {
	return func() ([]gallery.Entry, error) {
		s, err := sheet.Load(path)
		if err != nil {
			return nil, err
		}
		catalog, err := sheet.Build(s, log)
		if err != nil {
			return nil, err
		}
		return gallery.FromCatalog(catalog), nil
	}
}
