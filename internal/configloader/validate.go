package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/gomdoc/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "max_depth").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown fields).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: html, markdown", cfg.Format),
		})
	}

	if cfg.ReportFormat != "" && !cfg.ReportFormat.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "report_format",
			Value:   cfg.ReportFormat,
			Message: fmt.Sprintf("invalid report format %q; must be one of: text, json", cfg.ReportFormat),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	if cfg.MaxDepth < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "max_depth",
			Value:   cfg.MaxDepth,
			Message: "max_depth must be >= 1",
		})
	}

	if cfg.Verbose != nil && (*cfg.Verbose < 0 || *cfg.Verbose > config.MaxVerbose) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "verbose",
			Value:   *cfg.Verbose,
			Message: fmt.Sprintf("verbose must be between 0 and %d", config.MaxVerbose),
		})
	}

	validateExtensions(cfg, result)
	validateIgnorePatterns(cfg, result)

	return result
}

// validateExtensions warns when one extension is claimed by more than one list.
// The first list wins during discovery.
func validateExtensions(cfg *config.Config, result *ValidationResult) {
	lists := []struct {
		field string
		value string
	}{
		{"extensions", cfg.Extensions},
		{"markdown_extensions", cfg.MarkdownExtensions},
		{"image_extensions", cfg.ImageExtensions},
	}

	owner := make(map[string]string)
	for _, list := range lists {
		for _, ext := range config.SplitExtensions(list.value) {
			if prev, ok := owner[ext]; ok && prev != list.field {
				result.Warnings = append(result.Warnings, ValidationError{
					Field:   list.field,
					Value:   ext,
					Message: fmt.Sprintf("extension %q is already listed in %s", ext, prev),
				})
				continue
			}
			owner[ext] = list.field
		}
	}
}

// validateIgnorePatterns checks that ignore patterns compile.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if _, err := glob.Compile(filepath.ToSlash(pattern), '/'); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
