package profile

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a profile file format.
type Format uint8

const (
	// FormatTOML is TOML via pelletier/go-toml.
	FormatTOML Format = iota
	// FormatYAML is YAML via yaml.v3.
	FormatYAML
	// FormatJSON is JSON via encoding/json.
	FormatJSON
)

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FormatForPath derives the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads and validates a profile from a file system.
func Load(fsys fs.FS, path string) (*Profile, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	return decode(path, data, format)
}

// LoadFile reads and validates a profile from the OS file system.
func LoadFile(path string) (*Profile, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	return decode(path, data, format)
}

// LoadReader reads and validates a profile from a reader in an explicit
// format.
func LoadReader(r io.Reader, format Format) (*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	return decode("<reader>", data, format)
}

// decode parses data in the given format and validates the result.
func decode(source string, data []byte, format Format) (*Profile, error) {
	var p Profile
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &p)
	case FormatYAML:
		err = yaml.Unmarshal(data, &p)
	case FormatJSON:
		err = json.Unmarshal(data, &p)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, &ParseError{Path: source, Err: err}
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validating profile %s: %w", source, err)
	}
	return &p, nil
}
