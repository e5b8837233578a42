package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	stylederrors "github.com/alexisbeaulieu97/styled/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Format identifies a sheet encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the encoding from the file extension.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	default:
		return "", false
	}
}

// Load reads a sheet from disk, decodes it by extension and validates it.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stylederrors.NewParseError(path, 0, err)
	}

	format, ok := FormatForPath(path)
	if !ok {
		return nil, stylederrors.NewParseError(path, 0, fmt.Errorf("unsupported sheet extension %q", filepath.Ext(path)))
	}

	return Parse(path, format, data)
}

// Parse decodes data in the given format and validates the result. Path is only
// used in error messages.
func Parse(path string, format Format, data []byte) (*Sheet, error) {
	var s Sheet
	switch format {
	case FormatYAML:
		if err := decodeYAML(data, &s); err != nil {
			return nil, stylederrors.NewParseError(path, extractLine(err), err)
		}
	case FormatTOML:
		line, err := decodeTOML(data, &s)
		if err != nil {
			return nil, stylederrors.NewParseError(path, line, err)
		}
	default:
		return nil, stylederrors.NewParseError(path, 0, fmt.Errorf("unsupported sheet format %q", format))
	}

	if err := ValidateSheet(&s); err != nil {
		return nil, err
	}

	return &s, nil
}

func decodeYAML(data []byte, s *Sheet) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(s); err != nil {
		return err
	}
	return nil
}

func decodeTOML(data []byte, s *Sheet) (int, error) {
	meta, err := toml.Decode(string(data), s)
	if err != nil {
		var parseErr toml.ParseError
		if errors.As(err, &parseErr) {
			return parseErr.Position.Line, err
		}
		return 0, err
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return 0, fmt.Errorf("unknown fields: %s", strings.Join(keys, ", "))
	}
	return 0, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
