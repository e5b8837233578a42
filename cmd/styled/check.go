package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/styled/internal/sheet"
)

type checkOptions struct {
	jsonOutput bool
}

type componentReport struct {
	Name          string   `json:"name"`
	Target        string   `json:"target"`
	DisplayName   string   `json:"display_name"`
	ComponentID   string   `json:"component_id"`
	Attrs         int      `json:"attrs"`
	RequiredProps []string `json:"required_props"`
	OptionalProps []string `json:"optional_props"`
}

type sheetReport struct {
	Name       string            `json:"name"`
	Theme      string            `json:"theme"`
	Components []componentReport `json:"components"`
}

func newCheckCmd(flags *rootFlags) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <sheet>",
		Short: "Validate a sheet and describe the components it builds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the report as JSON")

	return cmd
}

func runCheck(cmd *cobra.Command, flags *rootFlags, opts *checkOptions, path string) error {
	log, err := flags.logger(cmd)
	if err != nil {
		return newCommandError("check", "configuring logging", err, "Check the --verbose and --log-json flags.")
	}

	catalog, err := loadCatalog("check", path, log)
	if err != nil {
		return err
	}

	report := buildReport(catalog)
	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	renderReport(cmd, report)
	return nil
}

func buildReport(catalog *sheet.Catalog) sheetReport {
	report := sheetReport{
		Name:       catalog.Name,
		Theme:      catalog.Theme.Name,
		Components: make([]componentReport, 0, len(catalog.Entries)),
	}
	for _, entry := range catalog.Entries {
		shape := entry.Component.PropShape()
		report.Components = append(report.Components, componentReport{
			Name:          entry.Name,
			Target:        entry.Factory.Target().TargetName(),
			DisplayName:   entry.Component.DisplayName(),
			ComponentID:   entry.Component.ComponentID(),
			Attrs:         entry.Component.AttrsCount(),
			RequiredProps: shape.RequiredKeys(),
			OptionalProps: shape.OptionalKeys(),
		})
	}
	return report
}

func renderReport(cmd *cobra.Command, report sheetReport) {
	out := cmd.OutOrStdout()
	mark := "OK"
	if supportsUnicode(out) {
		mark = "✓"
	}

	fmt.Fprintf(out, "%s %s (theme %s, %d components)\n", mark, report.Name, report.Theme, len(report.Components))
	for _, c := range report.Components {
		fmt.Fprintf(out, "\n%s\n", c.Name)
		fmt.Fprintf(out, "  target:       %s\n", c.Target)
		fmt.Fprintf(out, "  display name: %s\n", c.DisplayName)
		fmt.Fprintf(out, "  component id: %s\n", c.ComponentID)
		fmt.Fprintf(out, "  attrs:        %d\n", c.Attrs)
		fmt.Fprintf(out, "  props:        %s\n", formatProps(c.RequiredProps, c.OptionalProps))
	}
}

func formatProps(required, optional []string) string {
	parts := make([]string, 0, len(required)+len(optional))
	parts = append(parts, required...)
	for _, name := range optional {
		parts = append(parts, name+"?")
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, ", ")
}
