package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileFormat is the encoding of a configuration file.
type FileFormat string

const (
	FileYAML FileFormat = "yaml"
	FileTOML FileFormat = "toml"
)

// FileFormatFor returns the encoding implied by a config file name.
// Anything that is not .toml is read as YAML.
func FileFormatFor(path string) FileFormat {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FileTOML
	}
	return FileYAML
}

// Decode parses a configuration in the given encoding.
func Decode(data []byte, format FileFormat) (*Config, error) {
	switch format {
	case FileTOML:
		return FromTOML(data)
	case FileYAML:
		return FromYAML(data)
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
}

// Encode serializes the configuration in the given encoding.
func (c *Config) Encode(format FileFormat) ([]byte, error) {
	switch format {
	case FileTOML:
		return c.ToTOML()
	case FileYAML:
		return c.ToYAML()
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
}
