package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdoc/pkg/config"
)

// envVarPrefix is the prefix for all gomdoc environment variables.
const envVarPrefix = "GOMDOC_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"NAME":                {field: "name", typ: envTypeString},
	"SORT":                {field: "sort", typ: envTypeBool},
	"EXTENSIONS":          {field: "extensions", typ: envTypeString},
	"MARKDOWN_EXTENSIONS": {field: "markdown_extensions", typ: envTypeString},
	"IMAGE_EXTENSIONS":    {field: "image_extensions", typ: envTypeString},
	"MAX_DEPTH":           {field: "max_depth", typ: envTypeInt},
	"IGNORE":              {field: "ignore", typ: envTypeSlice},
	"OUTPUT":              {field: "output", typ: envTypeString},
	"FORMAT":              {field: "format", typ: envTypeString},
	"LOCAL_CSS":           {field: "local_css", typ: envTypeBool},
	"NO_INDEX":            {field: "no_index", typ: envTypeBool},
	"VERBOSE":             {field: "verbose", typ: envTypeInt},
	"REPORT_FORMAT":       {field: "report_format", typ: envTypeString},
	"JOBS":                {field: "jobs", typ: envTypeInt},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOMDOC_ (e.g., GOMDOC_OUTPUT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		parts := parseSliceValue(value)
		return setSliceField(cfg, mapping.field, parts)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "name":
		cfg.Name = value
	case "extensions":
		cfg.Extensions = value
	case "markdown_extensions":
		cfg.MarkdownExtensions = value
	case "image_extensions":
		cfg.ImageExtensions = value
	case "output":
		cfg.Output = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "report_format":
		cfg.ReportFormat = config.ReportFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "sort":
		cfg.Sort = config.Bool(value)
	case "local_css":
		cfg.LocalCSS = value
	case "no_index":
		cfg.NoIndex = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "max_depth":
		cfg.MaxDepth = value
	case "verbose":
		cfg.Verbose = config.Int(value)
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GOMDOC_NAME":                "Project name used for the Markdown output file",
		"GOMDOC_SORT":                "Sort objects alphabetically: true or false",
		"GOMDOC_EXTENSIONS":          "Source file extensions, e.g. .c.h.py",
		"GOMDOC_MARKDOWN_EXTENSIONS": "Markdown file extensions, e.g. .md.markdown",
		"GOMDOC_IMAGE_EXTENSIONS":    "Image file extensions, e.g. .png.jpg",
		"GOMDOC_MAX_DEPTH":           "Folder levels to walk below each input",
		"GOMDOC_IGNORE":              "Comma-separated list of ignore patterns",
		"GOMDOC_OUTPUT":              "Output folder",
		"GOMDOC_FORMAT":              "Output format: html or markdown",
		"GOMDOC_LOCAL_CSS":           "Link a local w3.css: true or false",
		"GOMDOC_NO_INDEX":            "Skip index.html: true or false",
		"GOMDOC_VERBOSE":             "Verbosity: 0, 1 or 2",
		"GOMDOC_REPORT_FORMAT":       "Report format: text or json",
		"GOMDOC_JOBS":                "Number of parallel page writers (0 = auto)",
	}
}
