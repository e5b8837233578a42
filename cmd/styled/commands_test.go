package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSheet = `version: 1.0.0
name: demo
theme: dark
components:
  - name: Label
    target: text
    styles: "padding: 0 {};"
    interpolations: [1]
    preview:
      children: [hello]
  - name: Action
    target: Label
    display_name: Call to action
    attrs:
      - props: {children: Go}
    config:
      props: {onPress: true}
    styles: "bold: true;"
`

func writeTestSheet(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func execute(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-03"

	output, _, err := execute("version")
	require.NoError(t, err)
	require.Contains(t, output, "styled 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-03")
}

func TestRenderCommandRendersAllComponents(t *testing.T) {
	path := writeTestSheet(t, testSheet)

	output, _, err := execute("render", path)
	require.NoError(t, err)
	require.Equal(t, "Label\n hello \n\nAction\n Go \n", output)
}

func TestRenderCommandSelectsComponents(t *testing.T) {
	path := writeTestSheet(t, testSheet)

	output, _, err := execute("render", path, "Action")
	require.NoError(t, err)
	require.Equal(t, "Action\n Go \n", output)
}

func TestRenderCommandHonoursWidth(t *testing.T) {
	path := writeTestSheet(t, testSheet)

	output, _, err := execute("render", path, "Label", "--width", "3")
	require.NoError(t, err)
	require.Equal(t, "Label\n he\n", output)
}

func TestRenderCommandUnknownComponent(t *testing.T) {
	path := writeTestSheet(t, testSheet)

	_, _, err := execute("render", path, "Missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), `component "Missing" not found`)
	require.Contains(t, err.Error(), "styled check")
}

func TestCheckCommandReport(t *testing.T) {
	path := writeTestSheet(t, testSheet)

	output, _, err := execute("check", path)
	require.NoError(t, err)
	require.Contains(t, output, "demo (theme dark, 2 components)")
	require.Contains(t, output, "display name: Call to action")
	require.Contains(t, output, "target:       Label")
	require.Contains(t, output, "props:        onPress, children?")
}

func TestCheckCommandJSON(t *testing.T) {
	path := writeTestSheet(t, testSheet)

	output, _, err := execute("check", path, "--json")
	require.NoError(t, err)

	var report sheetReport
	require.NoError(t, json.Unmarshal([]byte(output), &report))
	require.Equal(t, "demo", report.Name)
	require.Len(t, report.Components, 2)

	action := report.Components[1]
	require.Equal(t, "Action", action.Name)
	require.Equal(t, "Label", action.Target)
	require.Equal(t, 1, action.Attrs)
	require.Equal(t, []string{"onPress"}, action.RequiredProps)
	require.Equal(t, []string{"children"}, action.OptionalProps)
	require.Regexp(t, `^Call-to-action-[0-9a-f]{8}$`, action.ComponentID)
}

func TestCheckCommandReportsValidationErrors(t *testing.T) {
	path := writeTestSheet(t, "version: 1.0.0\nname: bad\ncomponents:\n  - {name: A, target: B}\n  - {name: B, target: text}\n")

	_, _, err := execute("check", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to check: loading sheet")
	require.Contains(t, err.Error(), "forward reference")
	require.Contains(t, err.Error(), "Suggestion:")
}

func TestCheckCommandMissingSheet(t *testing.T) {
	_, _, err := execute("check", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse error")
}

func TestVerboseLogsGoToStderr(t *testing.T) {
	path := writeTestSheet(t, testSheet)

	stdout, stderr, err := execute("check", path, "--verbose", "--log-json")
	require.NoError(t, err)
	require.NotContains(t, stdout, "component built")
	require.Contains(t, stderr, "component built")
	require.Contains(t, stderr, `"level":"debug"`)
}

func TestGalleryCommandFailsOnInvalidSheet(t *testing.T) {
	_, _, err := execute("gallery", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to open gallery")
}

func TestFormatProps(t *testing.T) {
	require.Equal(t, "(none)", formatProps(nil, nil))
	require.Equal(t, "a, b?", formatProps([]string{"a"}, []string{"b"}))
}

func TestDiffCommand(t *testing.T) {
	before := writeTestSheet(t, testSheet)
	after := filepath.Join(t.TempDir(), "after.yaml")
	changed := strings.Replace(testSheet, "{children: Go}", "{children: Stop}", 1)
	require.NoError(t, os.WriteFile(after, []byte(changed), 0o600))

	output, _, err := execute("diff", before, after)
	require.NoError(t, err)
	require.Contains(t, output, "[unchanged] Label\n")
	require.Contains(t, output, "[changed] Action\n")
	require.Contains(t, output, "- Go \n")
	require.Contains(t, output, "+ Stop \n")

	_, _, err = execute("diff", before, after, "--exit-code")
	require.ErrorIs(t, err, errSheetsDiffer)

	_, _, err = execute("diff", before, before, "--exit-code")
	require.NoError(t, err)
}
