// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInputs     = "inputs"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldFormat     = "format"
	FieldWorkingDir = "working_dir"
	FieldJobs       = "jobs"

	// Document fields.
	FieldTitle     = "title"
	FieldObjects   = "objects"
	FieldModules   = "modules"
	FieldClasses   = "classes"
	FieldDocuments = "documents"
	FieldImages    = "images"
	FieldPages     = "pages"
	FieldWarnings  = "warnings"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
