package main

import (
	"github.com/alexisbeaulieu97/styled/internal/logger"
	"github.com/alexisbeaulieu97/styled/internal/sheet"
)

func loadCatalog(operation, path string, log *logger.Logger) (*sheet.Catalog, error) {
	s, err := sheet.Load(path)
	if err != nil {
		return nil, newCommandError(operation, "loading sheet "+path, err, "Check that the sheet exists and is valid YAML or TOML.")
	}
	log.WithFields(map[string]any{"sheet": path, "components": len(s.Components)}).Debug("sheet loaded")

	catalog, err := sheet.Build(s, log)
	if err != nil {
		return nil, newCommandError(operation, "building sheet "+path, err, "Fix the component named in the error and try again.")
	}
	return catalog, nil
}
